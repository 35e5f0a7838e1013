package health

import (
	"time"

	"vitals/internal/store"
)

// DailyLoad is the training load state at the end of one calendar day.
type DailyLoad struct {
	Date   time.Time
	Effort float64 // summed effort of the day's activities
	Score  float64 // decayed cumulative load after this day
}

// Trend values comparing the target day's load to the prior day's.
const (
	TrendRising    = "rising"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// TrainingLoadState summarizes decayed cumulative exertion at a target date.
type TrainingLoadState struct {
	Score             float64
	Level             string
	Trend             string
	DaysSinceActivity int // -1 until the first activity ever
}

// LoadHistory walks every calendar day from the earliest activity to the
// target date, applying the decay recurrence
//
//	load[d] = load[d-1] * LoadDecayRate + effort(d)
//
// with effort(d) the summed EffortScore of that day's activities. Returns
// nil when there is no history on or before the target date.
func LoadHistory(activities []store.ActivityEntry, target time.Time) []DailyLoad {
	targetDay := DayStart(target)

	// Bucket efforts by day; earliest day bounds the walk.
	efforts := make(map[string]float64)
	var earliest time.Time
	for _, a := range activities {
		day := DayStart(a.Date)
		if day.After(targetDay) {
			continue
		}
		efforts[DayKey(day)] += EffortScore(a)
		if earliest.IsZero() || day.Before(earliest) {
			earliest = day
		}
	}
	if earliest.IsZero() {
		return nil
	}

	var history []DailyLoad
	var load float64
	for d := earliest; !d.After(targetDay); d = d.AddDate(0, 0, 1) {
		effort := efforts[DayKey(d)]
		load = load*LoadDecayRate + effort
		history = append(history, DailyLoad{Date: d, Effort: effort, Score: load})
	}
	return history
}

// CurrentTrainingLoad evaluates the load state at the target date.
// With no activity history at all the state is zero load, the lowest
// level, a stable trend, and a DaysSinceActivity sentinel of -1.
func CurrentTrainingLoad(activities []store.ActivityEntry, target time.Time) TrainingLoadState {
	history := LoadHistory(activities, target)
	if len(history) == 0 {
		return TrainingLoadState{Level: LoadLevelMinimal, Trend: TrendStable, DaysSinceActivity: -1}
	}

	final := history[len(history)-1]
	var prior float64
	if len(history) > 1 {
		prior = history[len(history)-2].Score
	}

	daysSince := -1
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Effort > 0 {
			daysSince = len(history) - 1 - i
			break
		}
	}

	return TrainingLoadState{
		Score:             final.Score,
		Level:             loadLevel(final.Score),
		Trend:             loadTrend(final.Score, prior),
		DaysSinceActivity: daysSince,
	}
}

func loadTrend(current, prior float64) string {
	if prior == 0 {
		if current > 0 {
			return TrendRising
		}
		return TrendStable
	}
	switch {
	case current >= prior*LoadRisingRatio:
		return TrendRising
	case current <= prior*LoadDecliningRatio:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func loadLevel(score float64) string {
	for _, t := range loadLevelThresholds {
		if score < t.max {
			return t.level
		}
	}
	return LoadLevelVeryHigh
}
