package health

import (
	"strings"

	"vitals/internal/store"
)

// EffortScore computes a unitless exertion number for one activity.
// When any measured heart-rate-zone minutes are present they are used
// directly; otherwise zone time is estimated from the coarse intensity
// rating and scaled by the activity-type multiplier.
func EffortScore(a store.ActivityEntry) float64 {
	measured := [5]*float64{a.Zone1Minutes, a.Zone2Minutes, a.Zone3Minutes, a.Zone4Minutes, a.Zone5Minutes}

	hasMeasured := false
	var total float64
	for i, minutes := range measured {
		if minutes == nil {
			continue
		}
		if *minutes > 0 {
			hasMeasured = true
		}
		total += *minutes * ZoneMultipliers[i]
	}
	if hasMeasured {
		return total
	}

	distribution, ok := IntensityZoneDistribution[a.Intensity]
	if !ok || a.DurationMinutes <= 0 {
		return 0
	}

	var estimated float64
	for i, share := range distribution {
		estimated += share * a.DurationMinutes * ZoneMultipliers[i]
	}
	return estimated * activityMultiplier(a.Type)
}

// activityMultiplier looks up the metabolic-demand multiplier for an
// activity type, falling back to the default for unknown types.
func activityMultiplier(activityType string) float64 {
	if m, ok := ActivityTypeMultipliers[strings.ToLower(activityType)]; ok {
		return m
	}
	return DefaultActivityMultiplier
}
