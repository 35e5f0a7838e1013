package service

import (
	"errors"
	"time"

	"vitals/internal/health"
	"vitals/internal/store"
)

// ClassifiedReading pairs a reading with its guideline category
type ClassifiedReading struct {
	Reading  store.BPReading
	Category *health.BPCategory
}

// CategoryCount is one slice of the category distribution
type CategoryCount struct {
	Category *health.BPCategory
	Count    int
	Percent  float64
}

// BPSummary contains blood pressure analysis for one time range
type BPSummary struct {
	Range     string
	Guideline string
	Readings  []ClassifiedReading // oldest first

	Stats         *health.BPStats
	PreviousStats *health.BPStats

	// Distribution over the guideline's categories, least severe first.
	// Categories with no readings are included with a zero count.
	Distribution []CategoryCount

	Latest *ClassifiedReading
}

// GetBPSummary returns blood pressure statistics for a range token,
// classified under the configured guideline.
func (q *QueryService) GetBPSummary(rangeSpec string, now time.Time) (*BPSummary, error) {
	start, end := windowBounds(health.ResolveRange(rangeSpec, now), false)
	readings, err := q.store.ListBPReadings(start, end)
	if err != nil {
		return nil, err
	}

	summary := &BPSummary{
		Range:     rangeSpec,
		Guideline: q.guideline,
		Stats:     health.CalculateBPStats(readings),
	}

	for _, r := range readings {
		summary.Readings = append(summary.Readings, ClassifiedReading{
			Reading:  r,
			Category: health.Classify(r.Systolic, r.Diastolic, q.guideline),
		})
	}

	prevWindow := health.ResolvePreviousRange(rangeSpec, now)
	if prevWindow.Start != nil {
		prevStart, prevEnd := windowBounds(prevWindow, true)
		previous, err := q.store.ListBPReadings(prevStart, prevEnd)
		if err != nil {
			return nil, err
		}
		summary.PreviousStats = health.CalculateBPStats(previous)
	}

	summary.Distribution = q.buildDistribution(summary.Readings)

	latest, err := q.store.LatestBPReading(now)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if latest != nil {
		summary.Latest = &ClassifiedReading{
			Reading:  *latest,
			Category: health.Classify(latest.Systolic, latest.Diastolic, q.guideline),
		}
	}

	return summary, nil
}

// buildDistribution counts readings per category, least severe first.
func (q *QueryService) buildDistribution(readings []ClassifiedReading) []CategoryCount {
	categories := health.GuidelineCategories(q.guideline)

	counts := make(map[string]int)
	classified := 0
	for _, r := range readings {
		if r.Category == nil {
			continue
		}
		counts[r.Category.Key]++
		classified++
	}

	// Guideline tables are ordered most severe first; reverse for display.
	distribution := make([]CategoryCount, 0, len(categories))
	for i := len(categories) - 1; i >= 0; i-- {
		cat := categories[i]
		entry := CategoryCount{Category: &cat, Count: counts[cat.Key]}
		if classified > 0 {
			entry.Percent = float64(entry.Count) / float64(classified) * 100
		}
		distribution = append(distribution, entry)
	}
	return distribution
}

// AddBPReading records a reading and returns its category.
func (q *QueryService) AddBPReading(r *store.BPReading) (*health.BPCategory, error) {
	if err := q.store.AddBPReading(r); err != nil {
		return nil, err
	}
	return health.Classify(r.Systolic, r.Diastolic, q.guideline), nil
}
