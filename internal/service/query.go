package service

import (
	"time"

	"vitals/internal/health"
	"vitals/internal/store"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store      *store.DB
	guideline  string // blood pressure guideline key
	weeklyGoal int    // target activities per week
	chartWeeks int    // weeks shown in weekly breakdowns
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB, guideline string, weeklyGoal, chartWeeks int) *QueryService {
	if guideline == "" {
		guideline = health.GuidelineACCAHA
	}
	if chartWeeks == 0 {
		chartWeeks = ChartWeeks
	}
	return &QueryService{store: db, guideline: guideline, weeklyGoal: weeklyGoal, chartWeeks: chartWeeks}
}

// windowBounds converts a window into the inclusive start/end bounds the
// store queries expect. Previous-period windows end exactly where the
// current period starts, so their inclusive end is one day earlier.
func windowBounds(w health.TimeWindow, exclusiveEnd bool) (*time.Time, time.Time) {
	end := w.End
	if exclusiveEnd {
		end = end.AddDate(0, 0, -1)
	}
	return w.Start, end
}

// sleepEntriesInRange lists sleep entries for a range token anchored at now.
func (q *QueryService) sleepEntriesInRange(rangeSpec string, now time.Time) ([]store.SleepEntry, error) {
	start, end := windowBounds(health.ResolveRange(rangeSpec, now), false)
	return q.store.ListSleepEntries(start, end)
}

// activitiesInRange lists activities for a range token anchored at now.
func (q *QueryService) activitiesInRange(rangeSpec string, now time.Time) ([]store.ActivityEntry, error) {
	start, end := windowBounds(health.ResolveRange(rangeSpec, now), false)
	return q.store.ListActivities(start, end)
}

// scoreEntry scores one night against a baseline built from all history,
// excluding the night itself.
func (q *QueryService) scoreEntry(entry store.SleepEntry, now time.Time) (health.ScoreBreakdown, error) {
	history, err := q.store.ListSleepEntries(nil, now)
	if err != nil {
		return health.ScoreBreakdown{}, err
	}
	baseline := health.EstimateBaseline(history, entry.ID)
	return health.SleepScore(entry, baseline), nil
}
