package service

import (
	"time"

	"vitals/internal/health"
	"vitals/internal/store"
)

// ActivityWithEffort pairs an activity with its computed effort score
type ActivityWithEffort struct {
	Activity store.ActivityEntry
	Effort   float64
}

// ActivitySummary contains activity analysis for one time range
type ActivitySummary struct {
	Range      string
	Activities []ActivityWithEffort // oldest first

	TotalCount    int
	TotalMinutes  float64
	TotalEffort   float64
	EffortByType  map[string]float64
	MinutesByType map[string]float64

	Load   health.TrainingLoadState
	Streak health.StreakResult
	Weeks  []health.ActivityWeek

	// Daily load scores for the chart, oldest first, clipped to the range
	LoadHistory []float64
	LoadDates   []time.Time
}

// GetActivitySummary returns activity statistics for a range token.
// Training load and streak always use the full history; decayed load at a
// date depends on everything before it, not just the visible window.
func (q *QueryService) GetActivitySummary(rangeSpec string, now time.Time) (*ActivitySummary, error) {
	activities, err := q.activitiesInRange(rangeSpec, now)
	if err != nil {
		return nil, err
	}

	summary := &ActivitySummary{
		Range:         rangeSpec,
		EffortByType:  make(map[string]float64),
		MinutesByType: make(map[string]float64),
	}

	for _, a := range activities {
		effort := health.EffortScore(a)
		summary.Activities = append(summary.Activities, ActivityWithEffort{Activity: a, Effort: effort})
		summary.TotalCount++
		summary.TotalMinutes += a.DurationMinutes
		summary.TotalEffort += effort
		summary.EffortByType[a.Type] += effort
		summary.MinutesByType[a.Type] += a.DurationMinutes
	}

	all, err := q.store.ListActivities(nil, now)
	if err != nil {
		return nil, err
	}
	summary.Load = health.CurrentTrainingLoad(all, now)
	summary.Streak = health.CalculateWeeklyStreak(all, now)
	summary.Weeks = health.GroupByWeek(all, now, q.chartWeeks)

	window := health.ResolveRange(rangeSpec, now)
	for _, d := range health.LoadHistory(all, now) {
		if !window.Contains(d.Date) {
			continue
		}
		summary.LoadHistory = append(summary.LoadHistory, d.Score)
		summary.LoadDates = append(summary.LoadDates, d.Date)
	}

	return summary, nil
}

// AddActivity records an activity and returns its computed effort.
func (q *QueryService) AddActivity(a *store.ActivityEntry) (float64, error) {
	if err := q.store.AddActivity(a); err != nil {
		return 0, err
	}
	return health.EffortScore(*a), nil
}

// DeleteActivity removes an activity by ID.
func (q *QueryService) DeleteActivity(id int64) error {
	return q.store.DeleteActivity(id)
}
