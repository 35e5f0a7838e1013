package health

import (
	"strconv"
	"time"
)

// TimeWindow is an absolute date range. A nil Start means "all time".
type TimeWindow struct {
	Start *time.Time
	End   time.Time
}

// Contains reports whether the date falls within the window, boundaries
// inclusive on both ends.
func (w TimeWindow) Contains(date time.Time) bool {
	if date.After(w.End) {
		return false
	}
	return w.Start == nil || !date.Before(*w.Start)
}

// ResolveRange converts a range token into absolute bounds ending at today.
// Tokens: "1w", "1m", "3m", "all", or a day count such as "30". The month
// tokens use calendar-month arithmetic, not a fixed day count. Unrecognized
// tokens fall back to all-time rather than failing.
func ResolveRange(spec string, today time.Time) TimeWindow {
	if start, ok := rangeStart(spec, today); ok {
		return TimeWindow{Start: &start, End: today}
	}
	return TimeWindow{End: today}
}

// ResolvePreviousRange returns the window immediately preceding the current
// one for the same token, ending exactly where the current window starts.
// "all" has no previous period; the zero TimeWindow is returned for it (and
// for anything else that resolves to all-time).
func ResolvePreviousRange(spec string, today time.Time) TimeWindow {
	cur := ResolveRange(spec, today)
	if cur.Start == nil {
		return TimeWindow{}
	}
	prevEnd := *cur.Start
	start, ok := rangeStart(spec, prevEnd)
	if !ok {
		return TimeWindow{}
	}
	return TimeWindow{Start: &start, End: prevEnd}
}

// rangeStart applies a token's offset anchored at the given date.
// The second return is false for all-time (and unrecognized) tokens.
func rangeStart(spec string, anchor time.Time) (time.Time, bool) {
	switch spec {
	case "all":
		return time.Time{}, false
	case "1w":
		return DayStart(anchor.AddDate(0, 0, -6)), true
	case "1m":
		return DayStart(anchor.AddDate(0, -1, 0)), true
	case "3m":
		return DayStart(anchor.AddDate(0, -3, 0)), true
	}
	if n, err := strconv.Atoi(spec); err == nil && n > 0 {
		return DayStart(anchor.AddDate(0, 0, -(n - 1))), true
	}
	return time.Time{}, false
}

// WeekWindow spans one Monday-to-Sunday week in local time.
type WeekWindow struct {
	Start time.Time // Monday 00:00
	End   time.Time // Sunday 23:59:59.999
}

// WeekBounds returns the Monday-aligned week containing the date. Sunday
// closes the week that began the previous Monday, so every date maps to
// exactly one seven-day block.
func WeekBounds(date time.Time) WeekWindow {
	offset := int(date.Weekday()) - 1
	if date.Weekday() == time.Sunday {
		offset = 6
	}
	start := DayStart(date.AddDate(0, 0, -offset))
	last := start.AddDate(0, 0, 6)
	end := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 999*int(time.Millisecond), last.Location())
	return WeekWindow{Start: start, End: end}
}

// DayStart truncates a time to local midnight without passing through UTC.
// time.Truncate operates on absolute time and can land on the wrong
// calendar day west of UTC, so the day is rebuilt field by field.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a date as YYYY-MM-DD for use as a per-day map key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
