package health

// Product-tuning constants. Changing any of these changes what the scores
// mean to the user, so treat adjustments as product decisions.

const (
	// Baseline estimation
	MinBaselineSamples = 3

	// Z-score to points mapping: 50 is personal average, each standard
	// deviation moves the score by 10 points.
	BasePoints      = 50.0
	PointsPerStdDev = 10.0

	// Composite sleep score category weights
	DurationWeight     = 1.5
	HeartHealthWeight  = 1.5
	SleepQualityWeight = 2.0
	RestfulnessWeight  = 1.0

	// Training load decay per calendar day. Encodes a roughly ten-day
	// half-life: a rest day trims the load gradually, not abruptly.
	LoadDecayRate = 0.93

	// Trend thresholds comparing the target day's load to the prior day's
	LoadRisingRatio    = 1.05
	LoadDecliningRatio = 0.97

	// Fallback for activity types not in ActivityTypeMultipliers
	DefaultActivityMultiplier = 1.0
)

// ZoneMultipliers weight a minute in each heart-rate zone (zones 1-5).
// Non-linear by intent: a zone-5 minute counts ten times a zone-1 minute.
var ZoneMultipliers = [5]float64{1, 2, 4, 7, 10}

// IntensityZoneDistribution estimates the share of a workout spent in each
// heart-rate zone from the coarse 1-5 perceived-intensity rating, used when
// no measured zone minutes are available.
var IntensityZoneDistribution = map[int][5]float64{
	1: {0.70, 0.25, 0.05, 0.00, 0.00},
	2: {0.40, 0.40, 0.15, 0.05, 0.00},
	3: {0.15, 0.35, 0.35, 0.12, 0.03},
	4: {0.05, 0.20, 0.35, 0.30, 0.10},
	5: {0.00, 0.10, 0.25, 0.40, 0.25},
}

// ActivityTypeMultipliers scale estimated effort for the differing metabolic
// demand of activities at equal heart rate.
var ActivityTypeMultipliers = map[string]float64{
	"yoga":     0.6,
	"walking":  0.7,
	"strength": 0.8,
	"cycling":  0.85,
	"hiking":   0.9,
	"swimming": 1.0,
	"running":  1.0,
	"tennis":   1.1,
	"padel":    1.15,
	"squash":   1.2,
}

// Training load level buckets, lowest first.
const (
	LoadLevelMinimal  = "minimal"
	LoadLevelLight    = "light"
	LoadLevelModerate = "moderate"
	LoadLevelHigh     = "high"
	LoadLevelVeryHigh = "very high"
)

// loadLevelThresholds are the upper bounds for each level except the last.
var loadLevelThresholds = []struct {
	max   float64
	level string
}{
	{50, LoadLevelMinimal},
	{300, LoadLevelLight},
	{800, LoadLevelModerate},
	{2000, LoadLevelHigh},
}
