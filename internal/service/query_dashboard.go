package service

import (
	"errors"
	"time"

	"vitals/internal/health"
	"vitals/internal/store"
)

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	// Last recorded night
	LastSleep      *store.SleepEntry
	LastSleepScore *health.ScoreBreakdown

	// Training
	Load   health.TrainingLoadState
	Streak health.StreakResult

	// This week vs the weekly goal
	WeekActivityCount int
	WeeklyGoal        int
	WeekEffort        float64

	// Latest blood pressure reading
	LastBP         *store.BPReading
	LastBPCategory *health.BPCategory

	// Sleep score history for the chart, oldest first
	ScoreHistory []float64
	ScoreDates   []time.Time
}

// GetDashboardData fetches all data needed for the dashboard
func (q *QueryService) GetDashboardData(now time.Time) (*DashboardData, error) {
	data := &DashboardData{WeeklyGoal: q.weeklyGoal}

	// Last night's sleep, scored against everything before it
	lastSleep, err := q.store.LatestSleepEntry(now)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if lastSleep != nil {
		data.LastSleep = lastSleep
		score, err := q.scoreEntry(*lastSleep, now)
		if err != nil {
			return nil, err
		}
		data.LastSleepScore = &score
	}

	// Training load and streak need the full activity history
	activities, err := q.store.ListActivities(nil, now)
	if err != nil {
		return nil, err
	}
	data.Load = health.CurrentTrainingLoad(activities, now)
	data.Streak = health.CalculateWeeklyStreak(activities, now)

	week := health.WeekBounds(now)
	for _, a := range activities {
		if !a.Date.Before(week.Start) && !a.Date.After(now) {
			data.WeekActivityCount++
			data.WeekEffort += health.EffortScore(a)
		}
	}

	// Latest blood pressure reading, classified
	lastBP, err := q.store.LatestBPReading(now)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if lastBP != nil {
		data.LastBP = lastBP
		data.LastBPCategory = health.Classify(lastBP.Systolic, lastBP.Diastolic, q.guideline)
	}

	// Sleep score history for the chart
	data.ScoreHistory, data.ScoreDates, err = q.buildScoreHistory(now, SleepScoreHistoryDays)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// buildScoreHistory scores each night of the trailing window for charting,
// oldest first. Nights that cannot be scored yet are skipped.
func (q *QueryService) buildScoreHistory(now time.Time, days int) ([]float64, []time.Time, error) {
	start := health.DayStart(now.AddDate(0, 0, -(days - 1)))
	entries, err := q.store.ListSleepEntries(&start, now)
	if err != nil {
		return nil, nil, err
	}

	// One baseline built from the full history is reused for every night
	// in the window.
	history, err := q.store.ListSleepEntries(nil, now)
	if err != nil {
		return nil, nil, err
	}
	baseline := health.EstimateBaseline(history, 0)

	var scores []float64
	var dates []time.Time
	for _, e := range entries {
		breakdown := health.SleepScore(e, baseline)
		if breakdown.Overall == nil {
			continue
		}
		scores = append(scores, float64(*breakdown.Overall))
		dates = append(dates, e.Date)
	}
	return scores, dates, nil
}
