package service

import (
	"time"

	"vitals/internal/health"
	"vitals/internal/store"
)

// MetricTrend compares one sleep metric between the current period and the
// period immediately before it.
type MetricTrend struct {
	Current  health.Stats
	Previous health.Stats
	// Percent change of the averages; nil when either side has no data.
	ChangePct *float64
}

// SleepTrends contains sleep analysis for one time range
type SleepTrends struct {
	Range   string
	Entries []store.SleepEntry // oldest first

	TotalSleep  MetricTrend
	RestingHR   MetricTrend
	HRVLow      MetricTrend
	HRVHigh     MetricTrend
	DeepPct     MetricTrend
	REMPct      MetricTrend
	AwakePct    MetricTrend
	Restorative MetricTrend

	// Per-night scores for the chart, oldest first; nights that can't be
	// scored are skipped.
	ScoreHistory []float64
	ScoreDates   []time.Time

	BaselineCount int
}

// GetSleepTrends returns sleep statistics for a range token with a
// comparison against the preceding period of the same length.
func (q *QueryService) GetSleepTrends(rangeSpec string, now time.Time) (*SleepTrends, error) {
	entries, err := q.sleepEntriesInRange(rangeSpec, now)
	if err != nil {
		return nil, err
	}

	var previous []store.SleepEntry
	prevWindow := health.ResolvePreviousRange(rangeSpec, now)
	if prevWindow.Start != nil {
		start, end := windowBounds(prevWindow, true)
		previous, err = q.store.ListSleepEntries(start, end)
		if err != nil {
			return nil, err
		}
	}

	trends := &SleepTrends{Range: rangeSpec, Entries: entries}

	trends.TotalSleep = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.TotalSleepMinutes })
	trends.RestingHR = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.RestingHeartRate })
	trends.HRVLow = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.HRVLow })
	trends.HRVHigh = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.HRVHigh })
	trends.DeepPct = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.DeepPct })
	trends.REMPct = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.REMPct })
	trends.AwakePct = metricTrend(entries, previous, func(e store.SleepEntry) *float64 { return e.AwakePct })
	trends.Restorative = metricTrend(entries, previous, health.RestorativePct)

	// Score each night against a baseline drawn from the full history
	history, err := q.store.ListSleepEntries(nil, now)
	if err != nil {
		return nil, err
	}
	baseline := health.EstimateBaseline(history, 0)
	trends.BaselineCount = baseline.Count

	for _, e := range entries {
		breakdown := health.SleepScore(e, baseline)
		if breakdown.Overall == nil {
			continue
		}
		trends.ScoreHistory = append(trends.ScoreHistory, float64(*breakdown.Overall))
		trends.ScoreDates = append(trends.ScoreDates, e.Date)
	}

	return trends, nil
}

// GetSleepNight returns one night with its score, or store.ErrNotFound.
func (q *QueryService) GetSleepNight(date time.Time, now time.Time) (*store.SleepEntry, *health.ScoreBreakdown, error) {
	entry, err := q.store.GetSleepEntry(date)
	if err != nil {
		return nil, nil, err
	}
	score, err := q.scoreEntry(*entry, now)
	if err != nil {
		return nil, nil, err
	}
	return entry, &score, nil
}

// metricTrend extracts one metric from both periods and compares averages.
func metricTrend(current, previous []store.SleepEntry, extract func(store.SleepEntry) *float64) MetricTrend {
	trend := MetricTrend{
		Current:  health.CalcStats(collectMetric(current, extract)),
		Previous: health.CalcStats(collectMetric(previous, extract)),
	}
	if trend.Current.Avg != nil && trend.Previous.Avg != nil && *trend.Previous.Avg != 0 {
		pct := (*trend.Current.Avg - *trend.Previous.Avg) / *trend.Previous.Avg * 100
		trend.ChangePct = &pct
	}
	return trend
}

func collectMetric(entries []store.SleepEntry, extract func(store.SleepEntry) *float64) []float64 {
	var values []float64
	for _, e := range entries {
		if v := extract(e); v != nil {
			values = append(values, *v)
		}
	}
	return values
}
