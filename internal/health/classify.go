package health

// Guideline keys for blood-pressure classification.
const (
	GuidelineACCAHA = "acc-aha" // ACC/AHA 2017
	GuidelineESCESH = "esc-esh" // ESC/ESH 2018
)

// matchRule selects how a category's thresholds are applied.
type matchRule int

const (
	// either value at or above its minimum triggers the category
	matchEitherAbove matchRule = iota
	// systolic within its band while diastolic stays at or below its max;
	// only systolic elevation counts for this asymmetric category
	matchSystolicBand
	// either value within its band while both stay at or below their maxima
	matchEitherBand
	// both values at or below their maxima
	matchBothBelow
)

// band is an inclusive threshold range. A zero Max means unbounded.
type band struct {
	Min float64
	Max float64
}

// BPCategory is one severity class within a guideline.
type BPCategory struct {
	Key   string
	Label string

	systolic  band
	diastolic band
	rule      matchRule
}

// Guideline tables ordered most-to-least severe. Classification scans from
// the top; the last entry doubles as the fallback.
var accAHACategories = []BPCategory{
	{Key: "crisis", Label: "Hypertensive Crisis", systolic: band{Min: 180}, diastolic: band{Min: 120}, rule: matchEitherAbove},
	{Key: "stage2", Label: "Stage 2 Hypertension", systolic: band{Min: 140}, diastolic: band{Min: 90}, rule: matchEitherAbove},
	{Key: "stage1", Label: "Stage 1 Hypertension", systolic: band{Min: 130}, diastolic: band{Min: 80}, rule: matchEitherAbove},
	{Key: "elevated", Label: "Elevated", systolic: band{Min: 120, Max: 129}, diastolic: band{Max: 79}, rule: matchSystolicBand},
	{Key: "normal", Label: "Normal", systolic: band{Max: 119}, diastolic: band{Max: 79}, rule: matchBothBelow},
}

var escESHCategories = []BPCategory{
	{Key: "grade3", Label: "Grade 3 Hypertension", systolic: band{Min: 180}, diastolic: band{Min: 110}, rule: matchEitherAbove},
	{Key: "grade2", Label: "Grade 2 Hypertension", systolic: band{Min: 160}, diastolic: band{Min: 100}, rule: matchEitherAbove},
	{Key: "grade1", Label: "Grade 1 Hypertension", systolic: band{Min: 140}, diastolic: band{Min: 90}, rule: matchEitherAbove},
	{Key: "high_normal", Label: "High-Normal", systolic: band{Min: 130, Max: 139}, diastolic: band{Max: 89}, rule: matchSystolicBand},
	{Key: "normal", Label: "Normal", systolic: band{Min: 120, Max: 129}, diastolic: band{Min: 80, Max: 84}, rule: matchEitherBand},
	{Key: "optimal", Label: "Optimal", systolic: band{Max: 119}, diastolic: band{Max: 79}, rule: matchBothBelow},
}

// GuidelineCategories returns the ordered category table for a guideline
// key, defaulting to ACC/AHA for unknown keys.
func GuidelineCategories(guideline string) []BPCategory {
	if guideline == GuidelineESCESH {
		return escESHCategories
	}
	return accAHACategories
}

// Classify maps a reading to a severity category under the guideline.
// Returns nil when either value is missing (zero). If no category matches,
// the least severe one is returned.
func Classify(systolic, diastolic float64, guideline string) *BPCategory {
	if systolic <= 0 || diastolic <= 0 {
		return nil
	}

	categories := GuidelineCategories(guideline)
	for i := range categories {
		c := categories[i]
		switch c.rule {
		case matchEitherAbove:
			if systolic >= c.systolic.Min || diastolic >= c.diastolic.Min {
				return &c
			}
		case matchSystolicBand:
			if systolic >= c.systolic.Min && systolic <= c.systolic.Max && diastolic <= c.diastolic.Max {
				return &c
			}
		case matchEitherBand:
			inSystolic := systolic >= c.systolic.Min && systolic <= c.systolic.Max
			inDiastolic := diastolic >= c.diastolic.Min && diastolic <= c.diastolic.Max
			if (inSystolic || inDiastolic) && systolic <= c.systolic.Max && diastolic <= c.diastolic.Max {
				return &c
			}
		case matchBothBelow:
			if systolic <= c.systolic.Max && diastolic <= c.diastolic.Max {
				return &c
			}
		}
	}

	// Below every band: least severe wins. Returned as a copy so callers
	// cannot write through to the guideline table.
	least := categories[len(categories)-1]
	return &least
}
