package health

import "vitals/internal/store"

// Stats holds min/max/avg for one metric. All fields are nil when the
// input had no values.
type Stats struct {
	Min *float64
	Max *float64
	Avg *float64
}

// CalcStats computes min, max and mean over a numeric collection.
func CalcStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	min, max := values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	avg := sum / float64(len(values))

	return Stats{Min: &min, Max: &max, Avg: &avg}
}

// BPStats aggregates a set of blood-pressure readings.
type BPStats struct {
	Count     int
	Systolic  Stats
	Diastolic Stats
	Pulse     Stats

	// Derived per reading before aggregation, so the averages are the
	// averages of the derived values rather than values derived from
	// averages.
	PulsePressure        Stats
	MeanArterialPressure Stats
}

// CalculateBPStats computes per-field statistics over a set of readings.
// Returns nil if there are no readings. Pulse stats cover only the readings
// that recorded a pulse; Count always covers every reading.
func CalculateBPStats(readings []store.BPReading) *BPStats {
	if len(readings) == 0 {
		return nil
	}

	systolic := make([]float64, 0, len(readings))
	diastolic := make([]float64, 0, len(readings))
	var pulse []float64
	pp := make([]float64, 0, len(readings))
	mapValues := make([]float64, 0, len(readings))

	for _, r := range readings {
		systolic = append(systolic, r.Systolic)
		diastolic = append(diastolic, r.Diastolic)
		if r.Pulse != nil {
			pulse = append(pulse, *r.Pulse)
		}

		pulsePressure := r.Systolic - r.Diastolic
		pp = append(pp, pulsePressure)
		mapValues = append(mapValues, r.Diastolic+pulsePressure/3)
	}

	return &BPStats{
		Count:                len(readings),
		Systolic:             CalcStats(systolic),
		Diastolic:            CalcStats(diastolic),
		Pulse:                CalcStats(pulse),
		PulsePressure:        CalcStats(pp),
		MeanArterialPressure: CalcStats(mapValues),
	}
}
