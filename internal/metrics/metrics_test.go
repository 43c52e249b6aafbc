package metrics

import (
	"context"
	"testing"
)

func TestMemoryStats_UsedPercent(t *testing.T) {
	tests := []struct {
		name      string
		total     uint64
		available uint64
		want      float64
	}{
		{"three quarters used", 1000, 250, 75},
		{"all available", 1000, 1000, 0},
		{"none available", 1000, 0, 100},
		{"rounds to nearest", 3, 1, 67},
		{"zero total", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MemoryStats{TotalBytes: tt.total, AvailableBytes: tt.available}
			if got := m.UsedPercent(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSystemSource_AggregatePercent(t *testing.T) {
	s := NewSystemSource()

	pct, err := s.AggregatePercent(context.Background(), 0)
	if err != nil {
		t.Fatalf("failed to sample aggregate CPU: %v", err)
	}

	if pct < 0 || pct > 100 {
		t.Errorf("invalid CPU usage percent: %f", pct)
	}
}

func TestSystemSource_PerCorePercent(t *testing.T) {
	s := NewSystemSource()

	percentages, err := s.PerCorePercent(context.Background(), 0)
	if err != nil {
		t.Fatalf("failed to sample per-core CPU: %v", err)
	}

	if len(percentages) == 0 {
		t.Fatal("expected at least one core")
	}

	for i, pct := range percentages {
		if pct < 0 || pct > 100 {
			t.Errorf("invalid core %d usage: %f", i, pct)
		}
	}
}

func TestSystemSource_Memory(t *testing.T) {
	s := NewSystemSource()

	m, err := s.Memory()
	if err != nil {
		t.Fatalf("failed to read memory stats: %v", err)
	}

	if m.TotalBytes == 0 {
		t.Error("expected non-zero total memory")
	}

	if m.AvailableBytes > m.TotalBytes {
		t.Errorf("available %d exceeds total %d", m.AvailableBytes, m.TotalBytes)
	}
}

func TestSystemSource_CoreCount(t *testing.T) {
	s := NewSystemSource()

	count, err := s.CoreCount()
	if err != nil {
		t.Fatalf("failed to read core count: %v", err)
	}

	if count < 1 {
		t.Errorf("expected at least one core, got %d", count)
	}
}
