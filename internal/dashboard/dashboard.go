// Package dashboard lays out the bar graphs and drives their updates
// from a metrics source.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JakubMiodunka/resource-monitor/internal/display"
	"github.com/JakubMiodunka/resource-monitor/internal/graph"
	"github.com/JakubMiodunka/resource-monitor/internal/metrics"
)

// Frame and graph coordinates. Both sections are 64 columns wide; the
// advanced section sits directly below the basic one and grows by 3
// rows per graph row.
const (
	frameRight = 63

	basicTop    = 0
	basicBottom = 4

	advancedTop = 5

	graphRowHeight = 3
	leftGraphCol   = 1
	rightGraphCol  = 32
)

// Dashboard owns the rendered graphs and refreshes them from a metrics
// source. Everything runs on one control flow: the blocking CPU sample
// paces the loop, so there is no separate timer.
type Dashboard struct {
	surface  display.Surface
	source   metrics.Source
	interval time.Duration
	logger   *slog.Logger

	cpu *graph.BarGraph
	ram *graph.BarGraph

	// cores holds the per-core graphs in row-major left-to-right
	// order, or nil when advanced mode is off.
	cores []*graph.BarGraph
}

// New draws the basic section and, when advanced is set, the per-core
// section below it. Initial graphs all show 0%.
func New(surface display.Surface, source metrics.Source, interval time.Duration, advanced bool, logger *slog.Logger) (*Dashboard, error) {
	d := &Dashboard{
		surface:  surface,
		source:   source,
		interval: interval,
		logger:   logger,
	}

	if err := d.initBasic(); err != nil {
		return nil, fmt.Errorf("failed to lay out basic section: %w", err)
	}

	if advanced {
		if err := d.initAdvanced(); err != nil {
			return nil, fmt.Errorf("failed to lay out advanced section: %w", err)
		}
	}

	return d, nil
}

func (d *Dashboard) initBasic() error {
	if err := d.surface.DrawFrame(basicTop, 0, basicBottom, frameRight); err != nil {
		return err
	}
	if err := d.surface.DrawText(basicTop, 2, " Basic "); err != nil {
		return err
	}

	var err error
	if d.cpu, err = graph.New(d.surface, basicTop+1, 3, "CPU"); err != nil {
		return err
	}
	if d.ram, err = graph.New(d.surface, basicTop+1, 34, "RAM"); err != nil {
		return err
	}
	return nil
}

func (d *Dashboard) initAdvanced() error {
	cores, err := d.source.CoreCount()
	if err != nil {
		return fmt.Errorf("failed to read core count: %w", err)
	}
	if cores < 1 {
		return fmt.Errorf("invalid core count %d", cores)
	}

	// Two graphs per row, rounded up so an odd count gets a final row
	// with only the left slot.
	rows := (cores + 1) / 2

	if err := d.surface.DrawFrame(advancedTop, 0, advancedTop+1+graphRowHeight*rows, frameRight); err != nil {
		return err
	}
	if err := d.surface.DrawText(advancedTop, 2, " Advanced "); err != nil {
		return err
	}

	coreID := 1
	for row := 0; row < rows; row++ {
		rowY := advancedTop + 1 + graphRowHeight*row

		left, err := graph.New(d.surface, rowY, leftGraphCol, fmt.Sprintf("CPU%-2d", coreID))
		if err != nil {
			return err
		}
		d.cores = append(d.cores, left)
		coreID++

		if coreID > cores {
			break
		}

		right, err := graph.New(d.surface, rowY, rightGraphCol, fmt.Sprintf("CPU%-2d", coreID))
		if err != nil {
			return err
		}
		d.cores = append(d.cores, right)
		coreID++
	}

	d.logger.Info("advanced section initialized", "cores", cores, "rows", rows)
	return nil
}

// Refresh runs one sampling cycle and pushes the readings to the
// graphs. The CPU samples block for the sampling interval each.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if err := d.refreshBasic(ctx); err != nil {
		return err
	}

	if d.cores != nil {
		if err := d.refreshAdvanced(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dashboard) refreshBasic(ctx context.Context) error {
	cpuUsage, err := d.source.AggregatePercent(ctx, d.interval)
	if err != nil {
		return fmt.Errorf("failed to sample CPU: %w", err)
	}
	if err := d.cpu.Update(cpuUsage); err != nil {
		return err
	}

	memStats, err := d.source.Memory()
	if err != nil {
		return fmt.Errorf("failed to sample memory: %w", err)
	}
	return d.ram.Update(memStats.UsedPercent())
}

func (d *Dashboard) refreshAdvanced(ctx context.Context) error {
	perCore, err := d.source.PerCorePercent(ctx, d.interval)
	if err != nil {
		return fmt.Errorf("failed to sample per-core CPU: %w", err)
	}

	if len(perCore) != len(d.cores) {
		return fmt.Errorf("per-core sample count %d does not match graph count %d", len(perCore), len(d.cores))
	}

	for i, g := range d.cores {
		if err := g.Update(perCore[i]); err != nil {
			return err
		}
	}
	return nil
}

// Run refreshes the dashboard until ctx is cancelled. Cancellation is
// the expected termination path and returns nil; any sampling or
// drawing error halts the loop and propagates.
func (d *Dashboard) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			d.logger.Info("dashboard stopped")
			return nil
		}

		if err := d.Refresh(ctx); err != nil {
			// A cancelled context can surface through the blocking
			// CPU sample; that is still a clean stop.
			if ctx.Err() != nil {
				d.logger.Info("dashboard stopped")
				return nil
			}
			return err
		}
	}
}
