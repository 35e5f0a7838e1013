package main

import (
	"math"
	"time"

	"vitals/internal/store"
)

// seedDemoData fills the database with 60 days of deterministic sample data
// ending today, enough history for baselines, loads and streaks to be
// meaningful on first launch.
func seedDemoData(db *store.DB) error {
	today := time.Now()
	start := today.AddDate(0, 0, -59)

	for i := 0; i < 60; i++ {
		date := start.AddDate(0, 0, i)
		// Slow sinusoidal drift plus a short-cycle wobble keeps the data
		// varied but reproducible.
		drift := math.Sin(float64(i) / 9)
		wobble := math.Sin(float64(i) * 1.7)

		entry := &store.SleepEntry{
			Date:              date,
			TotalSleepMinutes: ptr(440 + 35*drift + 15*wobble),
			HRVLow:            ptr(38 + 6*drift),
			HRVHigh:           ptr(62 + 8*drift),
			RestingHeartRate:  ptr(56 - 3*drift + wobble),
			DeepPct:           ptr(17 + 3*drift),
			REMPct:            ptr(21 + 2*wobble),
			LightPct:          ptr(52 - 3*drift),
			AwakePct:          ptr(8 - 2*drift + wobble),
			MovementCount:     ptr(28 + 8*wobble),
			FullCycles:        ptr(4 + math.Round(drift)),
			PartialCycles:     ptr(1.0),
		}
		if err := db.UpsertSleepEntry(entry); err != nil {
			return err
		}

		// Roughly every other day trains, skipping every seventh day so the
		// streak and rest-day decay have something to show.
		if i%2 == 0 && i%14 != 0 {
			activity := demoActivity(date, i)
			if err := db.AddActivity(activity); err != nil {
				return err
			}
		}

		// Blood pressure twice a week
		if i%4 == 0 {
			reading := &store.BPReading{
				Date:      date,
				TimeOfDay: "morning",
				Systolic:  122 + 8*drift + 3*wobble,
				Diastolic: 79 + 4*drift,
				Pulse:     ptr(62 - 3*drift),
			}
			if err := db.AddBPReading(reading); err != nil {
				return err
			}
		}
	}

	return nil
}

func demoActivity(date time.Time, i int) *store.ActivityEntry {
	types := []string{"running", "cycling", "strength", "swimming", "padel"}
	kind := types[(i/2)%len(types)]

	a := &store.ActivityEntry{
		Date:            date,
		Type:            kind,
		DurationMinutes: 40 + float64(i%3)*15,
		Intensity:       2 + i%3,
	}

	// Runs come with measured zone minutes, everything else relies on the
	// intensity estimate.
	if kind == "running" {
		total := a.DurationMinutes
		a.Zone1Minutes = ptr(total * 0.2)
		a.Zone2Minutes = ptr(total * 0.45)
		a.Zone3Minutes = ptr(total * 0.25)
		a.Zone4Minutes = ptr(total * 0.1)
	}

	return a
}

func ptr(v float64) *float64 { return &v }
