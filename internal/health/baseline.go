package health

import (
	"math"

	"vitals/internal/store"
)

// Metric names tracked by the personal baseline.
const (
	MetricTotalSleep  = "total_sleep"
	MetricHRVLow      = "hrv_low"
	MetricHRVHigh     = "hrv_high"
	MetricRestingHR   = "resting_hr"
	MetricDeepPct     = "deep_pct"
	MetricREMPct      = "rem_pct"
	MetricLightPct    = "light_pct"
	MetricAwakePct    = "awake_pct"
	MetricMovement    = "movement"
	MetricRestorative = "restorative"
	MetricSleepCycles = "sleep_cycles"
)

// MetricBaseline is a personal mean and spread for one metric. Std is never
// zero; a degenerate spread is substituted with 1 so that downstream z-score
// division stays finite.
type MetricBaseline struct {
	Mean float64
	Std  float64
}

// Baseline is the user's personal history summary, one entry per metric
// with at least MinBaselineSamples non-null values.
type Baseline struct {
	Count   int // entries considered, after exclusion
	Metrics map[string]*MetricBaseline
}

// Metric returns the baseline for a metric, or nil if too few samples.
func (b Baseline) Metric(name string) *MetricBaseline {
	return b.Metrics[name]
}

// EstimateBaseline computes per-metric baselines from sleep history.
// A non-zero excludeID removes that entry first, so that scoring an entry
// against the baseline never includes the entry itself. Each metric's
// samples are collected independently: sparse nulls in one metric don't
// cost another metric its baseline.
func EstimateBaseline(entries []store.SleepEntry, excludeID int64) Baseline {
	samples := make(map[string][]float64)
	count := 0

	for _, e := range entries {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		count++

		collect(samples, MetricTotalSleep, e.TotalSleepMinutes)
		collect(samples, MetricHRVLow, e.HRVLow)
		collect(samples, MetricHRVHigh, e.HRVHigh)
		collect(samples, MetricRestingHR, e.RestingHeartRate)
		collect(samples, MetricDeepPct, e.DeepPct)
		collect(samples, MetricREMPct, e.REMPct)
		collect(samples, MetricLightPct, e.LightPct)
		collect(samples, MetricAwakePct, e.AwakePct)
		collect(samples, MetricMovement, e.MovementCount)
		collect(samples, MetricRestorative, RestorativePct(e))
		collect(samples, MetricSleepCycles, SleepCycleCount(e))
	}

	metrics := make(map[string]*MetricBaseline)
	for name, values := range samples {
		if len(values) < MinBaselineSamples {
			continue
		}
		metrics[name] = summarize(values)
	}

	return Baseline{Count: count, Metrics: metrics}
}

// RestorativePct is the derived share of restorative sleep: deep plus REM.
// A missing sibling counts as zero as long as one of the pair is present;
// nil only when both are missing.
func RestorativePct(e store.SleepEntry) *float64 {
	if e.DeepPct == nil && e.REMPct == nil {
		return nil
	}
	total := deref(e.DeepPct) + deref(e.REMPct)
	return &total
}

// SleepCycleCount is the derived cycle count: full cycles plus half credit
// for partial ones, with the same sibling rule as RestorativePct.
func SleepCycleCount(e store.SleepEntry) *float64 {
	if e.FullCycles == nil && e.PartialCycles == nil {
		return nil
	}
	n := deref(e.FullCycles) + 0.5*deref(e.PartialCycles)
	return &n
}

func collect(samples map[string][]float64, name string, v *float64) {
	if v != nil {
		samples[name] = append(samples[name], *v)
	}
}

// summarize computes mean and population standard deviation.
func summarize(values []float64) *MetricBaseline {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(values)))
	if std == 0 {
		std = 1
	}

	return &MetricBaseline{Mean: mean, Std: std}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
