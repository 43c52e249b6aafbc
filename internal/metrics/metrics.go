package metrics

import (
	"context"
	"math"
	"time"
)

// Source provides utilization readings for the dashboard. CPU sampling
// blocks for the given interval while utilization is measured, which is
// what paces the polling loop. Memory and core-count reads are
// instantaneous snapshots.
type Source interface {
	// AggregatePercent reports combined utilization of all cores, 0-100.
	AggregatePercent(ctx context.Context, interval time.Duration) (float64, error)

	// PerCorePercent reports utilization of each core in enumeration
	// order, one value per core, each 0-100.
	PerCorePercent(ctx context.Context, interval time.Duration) ([]float64, error)

	// Memory reports current memory totals.
	Memory() (MemoryStats, error)

	// CoreCount reports the number of logical cores.
	CoreCount() (int, error)
}

type MemoryStats struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

// UsedPercent reports used memory (total minus available) as a rounded
// percentage of total.
func (m MemoryStats) UsedPercent() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return math.Round(float64(m.TotalBytes-m.AvailableBytes) / float64(m.TotalBytes) * 100)
}
