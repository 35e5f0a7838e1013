package store

import "time"

// SleepEntry is one night of sleep tracking. Every metric is independently
// nullable: a device or manual log may supply any subset.
type SleepEntry struct {
	ID                int64     `db:"id"`
	Date              time.Time `db:"date"`                // local calendar day, midnight
	TotalSleepMinutes *float64  `db:"total_sleep_minutes"`
	HRVLow            *float64  `db:"hrv_low"`             // ms
	HRVHigh           *float64  `db:"hrv_high"`            // ms
	RestingHeartRate  *float64  `db:"resting_heart_rate"`  // bpm
	DeepPct           *float64  `db:"deep_pct"`
	REMPct            *float64  `db:"rem_pct"`
	LightPct          *float64  `db:"light_pct"`
	AwakePct          *float64  `db:"awake_pct"`
	MovementCount     *float64  `db:"movement_count"`
	FullCycles        *float64  `db:"full_cycles"`
	PartialCycles     *float64  `db:"partial_cycles"`
}

// ActivityEntry is one logged workout.
type ActivityEntry struct {
	ID              int64     `db:"id"`
	Date            time.Time `db:"date"`
	Type            string    `db:"type"`             // e.g. "walking", "running", "padel"
	DurationMinutes float64   `db:"duration_minutes"`
	Intensity       int       `db:"intensity"`        // coarse 1-5 rating
	Zone1Minutes    *float64  `db:"zone1_minutes"`    // measured HR-zone time, if available
	Zone2Minutes    *float64  `db:"zone2_minutes"`
	Zone3Minutes    *float64  `db:"zone3_minutes"`
	Zone4Minutes    *float64  `db:"zone4_minutes"`
	Zone5Minutes    *float64  `db:"zone5_minutes"`
}

// BPReading is one blood-pressure measurement. Systolic and diastolic are
// required; pulse and time-of-day are optional.
type BPReading struct {
	ID        int64     `db:"id"`
	Date      time.Time `db:"date"`
	TimeOfDay string    `db:"time_of_day"` // "morning", "afternoon", "evening", "night" or ""
	Systolic  float64   `db:"systolic"`
	Diastolic float64   `db:"diastolic"`
	Pulse     *float64  `db:"pulse"`
}
