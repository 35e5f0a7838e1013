package health

import (
	"math"

	"vitals/internal/store"
)

// ZScore returns how many standard deviations a value sits from its
// personal baseline, or nil when either side is missing.
func ZScore(value *float64, baseline *MetricBaseline) *float64 {
	if value == nil || baseline == nil {
		return nil
	}
	z := (*value - baseline.Mean) / baseline.Std
	return &z
}

// ToPoints maps a z-score onto a 0-100 scale centered at 50, worth
// PointsPerStdDev per standard deviation. Invert flips the direction for
// metrics where lower is better (resting heart rate, awake time, movement).
func ToPoints(z float64, invert bool) float64 {
	if invert {
		z = -z
	}
	return clamp(BasePoints+z*PointsPerStdDev, 0, 100)
}

// ScoreBreakdown is a composite sleep score with per-category sub-scores.
// A nil category had no available sub-metrics and was excluded from the
// weighted overall.
type ScoreBreakdown struct {
	Overall *int // 0-100, rounded

	Duration     *float64
	HeartHealth  *float64
	SleepQuality *float64
	Restfulness  *float64

	ComponentsAvailable int
	ComponentsTotal     int
}

// SleepScore scores one night against the personal baseline. Every category
// averages whatever sub-metric points are available; categories with
// nothing available are dropped from the weighting rather than dragged to
// zero. With fewer than MinBaselineSamples nights of history, or no
// available categories at all, everything is nil.
func SleepScore(entry store.SleepEntry, baseline Baseline) ScoreBreakdown {
	breakdown := ScoreBreakdown{ComponentsTotal: 4}
	if baseline.Count < MinBaselineSamples {
		return breakdown
	}

	points := func(value *float64, metric string, invert bool) *float64 {
		z := ZScore(value, baseline.Metric(metric))
		if z == nil {
			return nil
		}
		p := ToPoints(*z, invert)
		return &p
	}

	breakdown.Duration = averagePoints(
		points(entry.TotalSleepMinutes, MetricTotalSleep, false),
	)
	breakdown.HeartHealth = averagePoints(
		points(entry.HRVLow, MetricHRVLow, false),
		points(entry.HRVHigh, MetricHRVHigh, false),
		points(entry.RestingHeartRate, MetricRestingHR, true),
	)
	breakdown.SleepQuality = averagePoints(
		points(RestorativePct(entry), MetricRestorative, false),
		points(entry.AwakePct, MetricAwakePct, true),
	)
	breakdown.Restfulness = averagePoints(
		points(entry.MovementCount, MetricMovement, true),
		points(SleepCycleCount(entry), MetricSleepCycles, false),
	)

	var weighted, totalWeight float64
	for _, c := range []struct {
		score  *float64
		weight float64
	}{
		{breakdown.Duration, DurationWeight},
		{breakdown.HeartHealth, HeartHealthWeight},
		{breakdown.SleepQuality, SleepQualityWeight},
		{breakdown.Restfulness, RestfulnessWeight},
	} {
		if c.score == nil {
			continue
		}
		breakdown.ComponentsAvailable++
		weighted += *c.score * c.weight
		totalWeight += c.weight
	}

	if breakdown.ComponentsAvailable == 0 {
		return breakdown
	}

	overall := int(clamp(math.Round(weighted/totalWeight), 0, 100))
	breakdown.Overall = &overall
	return breakdown
}

// averagePoints averages the non-nil point values, nil when none remain.
func averagePoints(points ...*float64) *float64 {
	var sum float64
	var n int
	for _, p := range points {
		if p != nil {
			sum += *p
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
