package service

import (
	"math"
	"testing"
	"time"

	"vitals/internal/health"
	"vitals/internal/store"
)

func testService(t *testing.T) (*QueryService, *store.DB) {
	t.Helper()
	db, err := store.NewTestDB()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewQueryService(db, health.GuidelineACCAHA, 3, 0), db
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func floatPtr(v float64) *float64 { return &v }

func seedSleep(t *testing.T, db *store.DB, date string, totalSleep float64) {
	t.Helper()
	e := &store.SleepEntry{
		Date:              day(date),
		TotalSleepMinutes: floatPtr(totalSleep),
		RestingHeartRate:  floatPtr(55),
	}
	if err := db.UpsertSleepEntry(e); err != nil {
		t.Fatalf("seeding sleep entry: %v", err)
	}
}

func seedActivity(t *testing.T, db *store.DB, date string, zone2Minutes float64) {
	t.Helper()
	a := &store.ActivityEntry{
		Date:            day(date),
		Type:            "running",
		DurationMinutes: zone2Minutes,
		Intensity:       3,
		Zone2Minutes:    floatPtr(zone2Minutes),
	}
	if err := db.AddActivity(a); err != nil {
		t.Fatalf("seeding activity: %v", err)
	}
}

func seedBP(t *testing.T, db *store.DB, date string, systolic, diastolic float64) {
	t.Helper()
	r := &store.BPReading{Date: day(date), Systolic: systolic, Diastolic: diastolic}
	if err := db.AddBPReading(r); err != nil {
		t.Fatalf("seeding bp reading: %v", err)
	}
}

func TestGetDashboardDataEmpty(t *testing.T) {
	q, _ := testService(t)

	data, err := q.GetDashboardData(day("2025-06-18"))
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	if data.LastSleep != nil {
		t.Error("LastSleep should be nil with no data")
	}
	if data.LastBP != nil {
		t.Error("LastBP should be nil with no data")
	}
	if data.Load.DaysSinceActivity != -1 {
		t.Errorf("DaysSinceActivity = %d, want -1", data.Load.DaysSinceActivity)
	}
	if data.Streak.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", data.Streak.CurrentStreak)
	}
	if data.WeeklyGoal != 3 {
		t.Errorf("WeeklyGoal = %d, want 3", data.WeeklyGoal)
	}
}

func TestGetDashboardData(t *testing.T) {
	q, db := testService(t)
	now := day("2025-06-18") // Wednesday

	for i, total := range []float64{420, 450, 480, 440, 460} {
		seedSleep(t, db, day("2025-06-13").AddDate(0, 0, i).Format("2006-01-02"), total)
	}
	seedActivity(t, db, "2025-06-16", 30) // this week, effort 60
	seedActivity(t, db, "2025-06-17", 20) // this week, effort 40
	seedActivity(t, db, "2025-06-10", 30) // last week
	seedBP(t, db, "2025-06-15", 125, 82)

	data, err := q.GetDashboardData(now)
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	if data.LastSleep == nil {
		t.Fatal("LastSleep = nil")
	}
	if !data.LastSleep.Date.Equal(day("2025-06-17")) {
		t.Errorf("LastSleep.Date = %v, want 2025-06-17", data.LastSleep.Date)
	}
	if data.LastSleepScore == nil || data.LastSleepScore.Overall == nil {
		t.Error("LastSleepScore should be available with five nights of history")
	}

	if data.WeekActivityCount != 2 {
		t.Errorf("WeekActivityCount = %d, want 2", data.WeekActivityCount)
	}
	if data.WeekEffort != 100 {
		t.Errorf("WeekEffort = %v, want 100", data.WeekEffort)
	}
	if data.Streak.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", data.Streak.CurrentStreak)
	}
	if data.Load.Score <= 0 {
		t.Errorf("Load.Score = %v, want > 0", data.Load.Score)
	}

	if data.LastBP == nil {
		t.Fatal("LastBP = nil")
	}
	if data.LastBPCategory == nil || data.LastBPCategory.Key != "stage1" {
		t.Errorf("LastBPCategory = %+v, want stage1", data.LastBPCategory)
	}

	if len(data.ScoreHistory) == 0 {
		t.Error("ScoreHistory should not be empty")
	}
	if len(data.ScoreHistory) != len(data.ScoreDates) {
		t.Errorf("ScoreHistory and ScoreDates lengths differ: %d vs %d", len(data.ScoreHistory), len(data.ScoreDates))
	}
}

func TestGetSleepTrendsComparison(t *testing.T) {
	q, db := testService(t)
	now := day("2025-06-18")

	// Current week: Jun 12-18 averages 480; previous week: Jun 5-11 averages 420.
	for i := 0; i < 7; i++ {
		seedSleep(t, db, day("2025-06-12").AddDate(0, 0, i).Format("2006-01-02"), 480)
		seedSleep(t, db, day("2025-06-05").AddDate(0, 0, i).Format("2006-01-02"), 420)
	}

	trends, err := q.GetSleepTrends("1w", now)
	if err != nil {
		t.Fatalf("GetSleepTrends() error: %v", err)
	}

	if len(trends.Entries) != 7 {
		t.Fatalf("len(Entries) = %d, want 7", len(trends.Entries))
	}
	if trends.TotalSleep.Current.Avg == nil || *trends.TotalSleep.Current.Avg != 480 {
		t.Errorf("current avg = %v, want 480", trends.TotalSleep.Current.Avg)
	}
	if trends.TotalSleep.Previous.Avg == nil || *trends.TotalSleep.Previous.Avg != 420 {
		t.Errorf("previous avg = %v, want 420", trends.TotalSleep.Previous.Avg)
	}
	if trends.TotalSleep.ChangePct == nil {
		t.Fatal("ChangePct = nil")
	}
	wantPct := (480.0 - 420.0) / 420.0 * 100
	if math.Abs(*trends.TotalSleep.ChangePct-wantPct) > 1e-9 {
		t.Errorf("ChangePct = %v, want %v", *trends.TotalSleep.ChangePct, wantPct)
	}

	// HRV was never recorded, so its trend is empty.
	if trends.HRVLow.Current.Avg != nil {
		t.Error("HRVLow trend should be empty when never recorded")
	}
	if trends.BaselineCount != 14 {
		t.Errorf("BaselineCount = %d, want 14", trends.BaselineCount)
	}
}

func TestGetSleepTrendsAllTime(t *testing.T) {
	q, db := testService(t)
	seedSleep(t, db, "2025-06-10", 450)

	trends, err := q.GetSleepTrends("all", day("2025-06-18"))
	if err != nil {
		t.Fatalf("GetSleepTrends() error: %v", err)
	}
	if len(trends.Entries) != 1 {
		t.Errorf("len(Entries) = %d, want 1", len(trends.Entries))
	}
	// All-time has no previous period to compare against.
	if trends.TotalSleep.Previous.Avg != nil {
		t.Error("all-time previous stats should be empty")
	}
	if trends.TotalSleep.ChangePct != nil {
		t.Error("all-time ChangePct should be nil")
	}
}

func TestGetActivitySummary(t *testing.T) {
	q, db := testService(t)
	now := day("2025-06-18")

	seedActivity(t, db, "2025-06-16", 30) // effort 60
	seedActivity(t, db, "2025-06-10", 20) // effort 40
	seedActivity(t, db, "2025-04-01", 50) // outside 1m window

	summary, err := q.GetActivitySummary("1m", now)
	if err != nil {
		t.Fatalf("GetActivitySummary() error: %v", err)
	}

	if summary.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", summary.TotalCount)
	}
	if summary.TotalMinutes != 50 {
		t.Errorf("TotalMinutes = %v, want 50", summary.TotalMinutes)
	}
	if summary.TotalEffort != 100 {
		t.Errorf("TotalEffort = %v, want 100", summary.TotalEffort)
	}
	if summary.EffortByType["running"] != 100 {
		t.Errorf("EffortByType[running] = %v, want 100", summary.EffortByType["running"])
	}

	// Load history covers only the window but is computed from all history:
	// the April session still decays into June's scores.
	if len(summary.LoadHistory) == 0 {
		t.Fatal("LoadHistory should not be empty")
	}
	if summary.LoadHistory[0] <= 0 {
		t.Errorf("first in-window load = %v, want > 0 from earlier history", summary.LoadHistory[0])
	}
	for _, d := range summary.LoadDates {
		if d.Before(day("2025-05-18")) || d.After(now) {
			t.Errorf("load date %v outside the 1m window", d)
		}
	}

	if len(summary.Weeks) != ChartWeeks {
		t.Errorf("len(Weeks) = %d, want %d", len(summary.Weeks), ChartWeeks)
	}
}

func TestQueryServiceDefaults(t *testing.T) {
	db, err := store.NewTestDB()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	q := NewQueryService(db, "", 3, 12)
	if q.guideline != health.GuidelineACCAHA {
		t.Errorf("guideline = %q, want %q", q.guideline, health.GuidelineACCAHA)
	}

	summary, err := q.GetActivitySummary("all", day("2025-06-18"))
	if err != nil {
		t.Fatalf("GetActivitySummary() error: %v", err)
	}
	if len(summary.Weeks) != 12 {
		t.Errorf("len(Weeks) = %d, want configured 12", len(summary.Weeks))
	}
}

func TestAddAndDeleteActivity(t *testing.T) {
	q, _ := testService(t)

	a := &store.ActivityEntry{
		Date:            day("2025-06-16"),
		Type:            "running",
		DurationMinutes: 30,
		Intensity:       3,
		Zone2Minutes:    floatPtr(30),
	}
	effort, err := q.AddActivity(a)
	if err != nil {
		t.Fatalf("AddActivity() error: %v", err)
	}
	if effort != 60 {
		t.Errorf("effort = %v, want 60", effort)
	}
	if a.ID == 0 {
		t.Error("ID should be set after insert")
	}

	if err := q.DeleteActivity(a.ID); err != nil {
		t.Errorf("DeleteActivity() error: %v", err)
	}
}

func TestGetBPSummary(t *testing.T) {
	q, db := testService(t)
	now := day("2025-06-18")

	seedBP(t, db, "2025-06-01", 118, 76) // normal
	seedBP(t, db, "2025-06-08", 132, 78) // stage1
	seedBP(t, db, "2025-06-15", 125, 82) // stage1 (diastolic 80+... 82 >= 80)

	summary, err := q.GetBPSummary("3m", now)
	if err != nil {
		t.Fatalf("GetBPSummary() error: %v", err)
	}

	if summary.Stats == nil || summary.Stats.Count != 3 {
		t.Fatalf("Stats.Count = %+v, want 3", summary.Stats)
	}
	if len(summary.Readings) != 3 {
		t.Fatalf("len(Readings) = %d, want 3", len(summary.Readings))
	}

	if summary.Latest == nil {
		t.Fatal("Latest = nil")
	}
	if summary.Latest.Category == nil || summary.Latest.Category.Key != "stage1" {
		t.Errorf("Latest.Category = %+v, want stage1", summary.Latest.Category)
	}

	// Distribution is least severe first and includes empty categories.
	if len(summary.Distribution) != 5 {
		t.Fatalf("len(Distribution) = %d, want 5", len(summary.Distribution))
	}
	if summary.Distribution[0].Category.Key != "normal" {
		t.Errorf("first distribution key = %q, want normal", summary.Distribution[0].Category.Key)
	}
	byKey := make(map[string]CategoryCount)
	for _, d := range summary.Distribution {
		byKey[d.Category.Key] = d
	}
	if byKey["normal"].Count != 1 {
		t.Errorf("normal count = %d, want 1", byKey["normal"].Count)
	}
	if byKey["stage1"].Count != 2 {
		t.Errorf("stage1 count = %d, want 2", byKey["stage1"].Count)
	}
	if byKey["crisis"].Count != 0 {
		t.Errorf("crisis count = %d, want 0", byKey["crisis"].Count)
	}
	if math.Abs(byKey["stage1"].Percent-200.0/3) > 1e-9 {
		t.Errorf("stage1 percent = %v, want %v", byKey["stage1"].Percent, 200.0/3)
	}

	// Distribution entries are copies; writes do not reach the guideline table.
	summary.Distribution[0].Category.Label = "scribbled"
	again, err := q.GetBPSummary("3m", now)
	if err != nil {
		t.Fatalf("GetBPSummary() error: %v", err)
	}
	if again.Distribution[0].Category.Label != "Normal" {
		t.Errorf("label = %q, want Normal after mutating an earlier result", again.Distribution[0].Category.Label)
	}
}

func TestGetBPSummaryPreviousPeriod(t *testing.T) {
	q, db := testService(t)
	now := day("2025-06-18")

	seedBP(t, db, "2025-06-15", 120, 80)
	seedBP(t, db, "2025-06-08", 130, 85) // previous week

	summary, err := q.GetBPSummary("1w", now)
	if err != nil {
		t.Fatalf("GetBPSummary() error: %v", err)
	}

	if summary.Stats == nil || summary.Stats.Count != 1 {
		t.Fatalf("Stats.Count = %+v, want 1", summary.Stats)
	}
	if summary.PreviousStats == nil || summary.PreviousStats.Count != 1 {
		t.Fatalf("PreviousStats.Count = %+v, want 1", summary.PreviousStats)
	}
	if *summary.PreviousStats.Systolic.Avg != 130 {
		t.Errorf("previous systolic avg = %v, want 130", *summary.PreviousStats.Systolic.Avg)
	}
}

func TestAddBPReadingClassifies(t *testing.T) {
	q, _ := testService(t)

	cat, err := q.AddBPReading(&store.BPReading{Date: day("2025-06-15"), Systolic: 185, Diastolic: 95})
	if err != nil {
		t.Fatalf("AddBPReading() error: %v", err)
	}
	if cat == nil || cat.Key != "crisis" {
		t.Errorf("category = %+v, want crisis", cat)
	}
}
