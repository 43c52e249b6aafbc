package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JakubMiodunka/resource-monitor/internal/display"
	"github.com/JakubMiodunka/resource-monitor/internal/metrics"
)

type fakeSource struct {
	aggregate float64
	perCore   []float64
	memory    metrics.MemoryStats
	cores     int
}

func (f *fakeSource) AggregatePercent(ctx context.Context, interval time.Duration) (float64, error) {
	return f.aggregate, nil
}

func (f *fakeSource) PerCorePercent(ctx context.Context, interval time.Duration) ([]float64, error) {
	return f.perCore, nil
}

func (f *fakeSource) Memory() (metrics.MemoryStats, error) {
	return f.memory, nil
}

func (f *fakeSource) CoreCount() (int, error) {
	return f.cores, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDashboard(t *testing.T, src *fakeSource, advanced bool) (*display.Grid, *Dashboard) {
	t.Helper()

	grid := display.NewGrid(30, 64)
	d, err := New(grid, src, 0, advanced, testLogger())
	if err != nil {
		t.Fatalf("failed to create dashboard: %v", err)
	}
	return grid, d
}

func TestNew_BasicLayout(t *testing.T) {
	grid, d := newTestDashboard(t, &fakeSource{cores: 2}, false)

	corners := []struct {
		row, col int
		want     rune
	}{
		{0, 0, '┌'},
		{0, 63, '┐'},
		{4, 0, '└'},
		{4, 63, '┘'},
	}
	for _, c := range corners {
		if got := grid.Cell(c.row, c.col); got != c.want {
			t.Errorf("frame corner (%d,%d): expected %q, got %q", c.row, c.col, c.want, got)
		}
	}

	if got := grid.Region(0, 2, 7); got != " Basic " {
		t.Errorf("expected section title, got %q", got)
	}

	if got := grid.Region(2, 3, 5); got != "CPU |" {
		t.Errorf("expected CPU graph at column 3, got %q", got)
	}
	if got := grid.Region(2, 34, 5); got != "RAM |" {
		t.Errorf("expected RAM graph at column 34, got %q", got)
	}

	if d.cores != nil {
		t.Errorf("expected no per-core graphs in basic mode, got %d", len(d.cores))
	}
}

func TestNew_AdvancedLayoutEightCores(t *testing.T) {
	grid, d := newTestDashboard(t, &fakeSource{cores: 8}, true)

	if len(d.cores) != 8 {
		t.Fatalf("expected 8 per-core graphs, got %d", len(d.cores))
	}

	if got := grid.Region(5, 2, 10); got != " Advanced " {
		t.Errorf("expected section title, got %q", got)
	}

	// 4 rows of 2 graphs; frame runs from row 5 to row 18.
	if got := grid.Cell(18, 0); got != '└' {
		t.Errorf("expected frame bottom at row 18, got %q", got)
	}

	for row := 0; row < 4; row++ {
		barRow := 7 + 3*row

		wantLeft := fmt.Sprintf("CPU%-2d |", 2*row+1)
		if got := grid.Region(barRow, 1, len(wantLeft)); got != wantLeft {
			t.Errorf("row %d: expected left graph %q, got %q", row, wantLeft, got)
		}

		wantRight := fmt.Sprintf("CPU%-2d |", 2*row+2)
		if got := grid.Region(barRow, 32, len(wantRight)); got != wantRight {
			t.Errorf("row %d: expected right graph %q, got %q", row, wantRight, got)
		}
	}
}

func TestNew_AdvancedLayoutOddCores(t *testing.T) {
	grid, d := newTestDashboard(t, &fakeSource{cores: 5}, true)

	if len(d.cores) != 5 {
		t.Fatalf("expected 5 per-core graphs, got %d", len(d.cores))
	}

	// 3 rows; the last one holds only the left graph.
	if got := grid.Region(13, 1, 7); got != "CPU5  |" {
		t.Errorf("expected lone left graph on last row, got %q", got)
	}
	if got := strings.TrimSpace(grid.Region(13, 32, 7)); got != "" {
		t.Errorf("expected empty right slot on last row, got %q", got)
	}
	if got := grid.Cell(15, 0); got != '└' {
		t.Errorf("expected frame bottom at row 15, got %q", got)
	}
}

func TestNew_SurfaceTooSmall(t *testing.T) {
	grid := display.NewGrid(3, 20)

	_, err := New(grid, &fakeSource{cores: 2}, 0, false, testLogger())
	if err == nil {
		t.Fatal("expected error on undersized surface")
	}
}

func TestRefresh_Basic(t *testing.T) {
	src := &fakeSource{
		aggregate: 50,
		memory:    metrics.MemoryStats{TotalBytes: 1000, AvailableBytes: 250},
		cores:     2,
	}
	grid, d := newTestDashboard(t, src, false)

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("failed to refresh: %v", err)
	}

	// CPU at 50% -> 10 filled cells starting at column 8.
	wantCPU := strings.Repeat("█", 10) + strings.Repeat("░", 9)
	if got := grid.Region(2, 8, 19); got != wantCPU {
		t.Errorf("expected CPU bar %q, got %q", wantCPU, got)
	}

	// RAM at (1000-250)/1000 = 75% -> 15 filled cells at column 39.
	wantRAM := strings.Repeat("█", 15) + strings.Repeat("░", 4)
	if got := grid.Region(2, 39, 19); got != wantRAM {
		t.Errorf("expected RAM bar %q, got %q", wantRAM, got)
	}
}

func TestRefresh_AdvancedPushesByPosition(t *testing.T) {
	src := &fakeSource{
		perCore: []float64{0, 25, 50, 100},
		memory:  metrics.MemoryStats{TotalBytes: 1, AvailableBytes: 1},
		cores:   4,
	}
	_, d := newTestDashboard(t, src, true)

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("failed to refresh: %v", err)
	}

	want := []int{0, 25, 50, 100}
	for i, g := range d.cores {
		if g.Value() != want[i] {
			t.Errorf("graph %d: expected value %d, got %d", i, want[i], g.Value())
		}
	}
}

func TestRefresh_CoreCountMismatch(t *testing.T) {
	src := &fakeSource{
		perCore: []float64{10, 20, 30, 40},
		memory:  metrics.MemoryStats{TotalBytes: 1, AvailableBytes: 1},
		cores:   4,
	}
	_, d := newTestDashboard(t, src, true)

	// The source now reports one core more than the layout was built
	// for; the refresh must fail rather than truncate or pad.
	src.perCore = []float64{10, 20, 30, 40, 50}

	err := d.Refresh(context.Background())
	if err == nil {
		t.Fatal("expected error on sample count mismatch")
	}
	if !strings.Contains(err.Error(), "does not match") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	src := &fakeSource{
		memory: metrics.MemoryStats{TotalBytes: 1, AvailableBytes: 1},
		cores:  2,
	}
	_, d := newTestDashboard(t, src, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx); err != nil {
		t.Errorf("expected clean stop on cancellation, got %v", err)
	}
}
