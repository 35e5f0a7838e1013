package health

import (
	"time"

	"vitals/internal/store"
)

// StreakResult counts consecutive Monday-to-Sunday weeks with at least one
// activity, ending at (or just before) today's week.
type StreakResult struct {
	CurrentStreak   int // weeks
	TotalActivities int // activities across the counted weeks
}

// ActivityWeek is one Monday-to-Sunday block of activity history.
type ActivityWeek struct {
	Start       time.Time
	End         time.Time
	HasActivity bool
	Entries     []store.ActivityEntry
}

// CalculateWeeklyStreak walks backward one week at a time from today's
// week, counting consecutive weeks with activity and stopping at the first
// gap. Early in a fresh week the current week naturally has no activity
// yet, so on Monday and Tuesday an empty current week is skipped and
// counting starts from the previous week instead.
func CalculateWeeklyStreak(activities []store.ActivityEntry, today time.Time) StreakResult {
	counts := make(map[string]int)
	for _, a := range activities {
		if a.Date.After(today) {
			continue
		}
		counts[DayKey(WeekBounds(a.Date).Start)]++
	}

	week := WeekBounds(today)
	if wd := today.Weekday(); (wd == time.Monday || wd == time.Tuesday) && counts[DayKey(week.Start)] == 0 {
		week = WeekBounds(week.Start.AddDate(0, 0, -1))
	}

	var result StreakResult
	for {
		n := counts[DayKey(week.Start)]
		if n == 0 {
			break
		}
		result.CurrentStreak++
		result.TotalActivities += n
		week = WeekBounds(week.Start.AddDate(0, 0, -1))
	}
	return result
}

// GroupByWeek buckets activity history into the numWeeks Monday-aligned
// weeks ending at today's week, oldest first. Weeks without activity are
// present with empty entries, so the result always has numWeeks elements.
func GroupByWeek(activities []store.ActivityEntry, today time.Time, numWeeks int) []ActivityWeek {
	if numWeeks <= 0 {
		return nil
	}

	currentStart := WeekBounds(today).Start
	weeks := make([]ActivityWeek, numWeeks)
	index := make(map[string]int, numWeeks)
	for i := range weeks {
		bounds := WeekBounds(currentStart.AddDate(0, 0, -7*(numWeeks-1-i)))
		weeks[i] = ActivityWeek{Start: bounds.Start, End: bounds.End}
		index[DayKey(bounds.Start)] = i
	}

	for _, a := range activities {
		i, ok := index[DayKey(WeekBounds(a.Date).Start)]
		if !ok {
			continue
		}
		weeks[i].HasActivity = true
		weeks[i].Entries = append(weeks[i].Entries, a)
	}
	return weeks
}
