package metrics

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemSource reads utilization from the local host.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) AggregatePercent(ctx context.Context, interval time.Duration) (float64, error) {
	percentages, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, err
	}

	var overall float64
	if len(percentages) > 0 {
		overall = percentages[0]
	}
	return overall, nil
}

func (s *SystemSource) PerCorePercent(ctx context.Context, interval time.Duration) ([]float64, error) {
	return cpu.PercentWithContext(ctx, interval, true)
}

func (s *SystemSource) Memory() (MemoryStats, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStats{}, err
	}

	return MemoryStats{
		TotalBytes:     v.Total,
		AvailableBytes: v.Available,
	}, nil
}

func (s *SystemSource) CoreCount() (int, error) {
	return cpu.Counts(true)
}
