package service

const (
	// Default range tokens per screen
	DefaultSleepRange    = "1m"
	DefaultActivityRange = "1m"
	DefaultBPRange       = "3m"

	// Chart windows
	SleepScoreHistoryDays = 30
	ChartWeeks            = 8

	// Recent list sizes
	RecentActivitiesLimit = 10
	RecentBPReadingsLimit = 10
)
