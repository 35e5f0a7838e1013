package health

import (
	"math"
	"testing"
	"time"

	"vitals/internal/store"
)

// sleepNights builds n entries with fixed duration and resting HR values.
func sleepNights(durations []float64) []store.SleepEntry {
	entries := make([]store.SleepEntry, len(durations))
	for i, d := range durations {
		entries[i] = store.SleepEntry{
			ID:                int64(i + 1),
			Date:              time.Date(2025, time.June, i+1, 0, 0, 0, 0, time.Local),
			TotalSleepMinutes: floatPtr(d),
		}
	}
	return entries
}

func TestEstimateBaseline(t *testing.T) {
	entries := sleepNights([]float64{420, 450, 480})

	b := EstimateBaseline(entries, 0)
	if b.Count != 3 {
		t.Errorf("Count = %d, want 3", b.Count)
	}

	m := b.Metric(MetricTotalSleep)
	if m == nil {
		t.Fatal("total_sleep baseline = nil")
	}
	if m.Mean != 450 {
		t.Errorf("Mean = %v, want 450", m.Mean)
	}
	// population std of {420, 450, 480} = sqrt(600) ~ 24.49
	if math.Abs(m.Std-math.Sqrt(600)) > 1e-9 {
		t.Errorf("Std = %v, want %v", m.Std, math.Sqrt(600))
	}
}

func TestEstimateBaselineMinSamples(t *testing.T) {
	entries := sleepNights([]float64{420, 450})

	b := EstimateBaseline(entries, 0)
	if m := b.Metric(MetricTotalSleep); m != nil {
		t.Errorf("baseline with 2 samples = %+v, want nil", m)
	}
}

func TestEstimateBaselineMetricsIndependent(t *testing.T) {
	// HRV is present on only two nights; duration on four. Duration keeps
	// its baseline even though HRV falls short.
	entries := sleepNights([]float64{400, 420, 440, 460})
	entries[0].HRVLow = floatPtr(35)
	entries[1].HRVLow = floatPtr(40)

	b := EstimateBaseline(entries, 0)
	if b.Metric(MetricTotalSleep) == nil {
		t.Error("total_sleep baseline = nil, want value")
	}
	if m := b.Metric(MetricHRVLow); m != nil {
		t.Errorf("hrv_low baseline = %+v, want nil (2 samples)", m)
	}
}

func TestEstimateBaselineZeroStd(t *testing.T) {
	entries := sleepNights([]float64{450, 450, 450})

	b := EstimateBaseline(entries, 0)
	m := b.Metric(MetricTotalSleep)
	if m == nil {
		t.Fatal("baseline = nil")
	}
	if m.Std != 1 {
		t.Errorf("Std = %v, want 1 (zero-variance substitution)", m.Std)
	}
}

func TestEstimateBaselineExcludesEntry(t *testing.T) {
	entries := sleepNights([]float64{400, 450, 500, 600})

	b := EstimateBaseline(entries, 4) // drop the 600 outlier by ID
	if b.Count != 3 {
		t.Errorf("Count = %d, want 3", b.Count)
	}
	m := b.Metric(MetricTotalSleep)
	if m == nil {
		t.Fatal("baseline = nil")
	}
	if m.Mean != 450 {
		t.Errorf("Mean = %v, want 450 (excluded entry contributed)", m.Mean)
	}
}

func TestRestorativePct(t *testing.T) {
	tests := []struct {
		name string
		deep *float64
		rem  *float64
		want *float64
	}{
		{"both present", floatPtr(18), floatPtr(22), floatPtr(40)},
		{"only deep", floatPtr(18), nil, floatPtr(18)},
		{"only rem", nil, floatPtr(22), floatPtr(22)},
		{"both missing", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RestorativePct(store.SleepEntry{DeepPct: tt.deep, REMPct: tt.rem})
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("RestorativePct() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("RestorativePct() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestSleepCycleCount(t *testing.T) {
	tests := []struct {
		name    string
		full    *float64
		partial *float64
		want    *float64
	}{
		{"full and partial", floatPtr(4), floatPtr(1), floatPtr(4.5)},
		{"only full", floatPtr(5), nil, floatPtr(5)},
		{"only partial", nil, floatPtr(2), floatPtr(1)},
		{"both missing", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepCycleCount(store.SleepEntry{FullCycles: tt.full, PartialCycles: tt.partial})
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("SleepCycleCount() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("SleepCycleCount() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestDerivedMetricsInBaseline(t *testing.T) {
	entries := sleepNights([]float64{420, 450, 480})
	for i := range entries {
		entries[i].DeepPct = floatPtr(15 + float64(i))
		entries[i].REMPct = floatPtr(20)
		entries[i].FullCycles = floatPtr(4)
		entries[i].PartialCycles = floatPtr(float64(i)) // 0, 1, 2
	}

	b := EstimateBaseline(entries, 0)

	restorative := b.Metric(MetricRestorative)
	if restorative == nil {
		t.Fatal("restorative baseline = nil")
	}
	// (35 + 36 + 37) / 3 = 36
	if restorative.Mean != 36 {
		t.Errorf("restorative Mean = %v, want 36", restorative.Mean)
	}

	cycles := b.Metric(MetricSleepCycles)
	if cycles == nil {
		t.Fatal("sleep_cycles baseline = nil")
	}
	// (4 + 4.5 + 5) / 3 = 4.5
	if cycles.Mean != 4.5 {
		t.Errorf("sleep_cycles Mean = %v, want 4.5", cycles.Mean)
	}
}
