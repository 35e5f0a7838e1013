package store

import (
	"database/sql"
	"errors"
	"time"
)

// UpsertSleepEntry inserts or replaces the sleep entry for a night.
// Nights are unique by date.
func (db *DB) UpsertSleepEntry(e *SleepEntry) error {
	result, err := db.Exec(`
		INSERT INTO sleep_entries (
			date, total_sleep_minutes, hrv_low, hrv_high, resting_heart_rate,
			deep_pct, rem_pct, light_pct, awake_pct, movement_count,
			full_cycles, partial_cycles, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			total_sleep_minutes = excluded.total_sleep_minutes,
			hrv_low = excluded.hrv_low,
			hrv_high = excluded.hrv_high,
			resting_heart_rate = excluded.resting_heart_rate,
			deep_pct = excluded.deep_pct,
			rem_pct = excluded.rem_pct,
			light_pct = excluded.light_pct,
			awake_pct = excluded.awake_pct,
			movement_count = excluded.movement_count,
			full_cycles = excluded.full_cycles,
			partial_cycles = excluded.partial_cycles,
			updated_at = CURRENT_TIMESTAMP
	`,
		dayKey(e.Date), e.TotalSleepMinutes, e.HRVLow, e.HRVHigh, e.RestingHeartRate,
		e.DeepPct, e.REMPct, e.LightPct, e.AwakePct, e.MovementCount,
		e.FullCycles, e.PartialCycles,
	)
	if err != nil {
		return err
	}
	if id, err := result.LastInsertId(); err == nil && e.ID == 0 {
		e.ID = id
	}
	return nil
}

// GetSleepEntry retrieves the sleep entry for a specific night.
func (db *DB) GetSleepEntry(date time.Time) (*SleepEntry, error) {
	row := db.QueryRow(sleepSelect+` WHERE date = ?`, dayKey(date))
	return scanSleepEntry(row)
}

// ListSleepEntries returns sleep entries within the window, oldest first.
// A nil start means unbounded (all history up to end).
func (db *DB) ListSleepEntries(start *time.Time, end time.Time) ([]SleepEntry, error) {
	var rows *sql.Rows
	var err error
	if start == nil {
		rows, err = db.Query(sleepSelect+` WHERE date <= ? ORDER BY date`, dayKey(end))
	} else {
		rows, err = db.Query(sleepSelect+` WHERE date >= ? AND date <= ? ORDER BY date`,
			dayKey(*start), dayKey(end))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SleepEntry
	for rows.Next() {
		e, err := scanSleepEntryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// LatestSleepEntry returns the most recent sleep entry on or before the date.
func (db *DB) LatestSleepEntry(onOrBefore time.Time) (*SleepEntry, error) {
	row := db.QueryRow(sleepSelect+` WHERE date <= ? ORDER BY date DESC LIMIT 1`, dayKey(onOrBefore))
	return scanSleepEntry(row)
}

// CountSleepEntries returns the total number of sleep entries.
func (db *DB) CountSleepEntries() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sleep_entries").Scan(&count)
	return count, err
}

const sleepSelect = `
	SELECT id, date, total_sleep_minutes, hrv_low, hrv_high, resting_heart_rate,
		deep_pct, rem_pct, light_pct, awake_pct, movement_count,
		full_cycles, partial_cycles
	FROM sleep_entries`

func scanSleepEntry(row *sql.Row) (*SleepEntry, error) {
	var e SleepEntry
	var date string

	err := row.Scan(
		&e.ID, &date, &e.TotalSleepMinutes, &e.HRVLow, &e.HRVHigh, &e.RestingHeartRate,
		&e.DeepPct, &e.REMPct, &e.LightPct, &e.AwakePct, &e.MovementCount,
		&e.FullCycles, &e.PartialCycles,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	e.Date, err = parseDay(date)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanSleepEntryRow(rows *sql.Rows) (*SleepEntry, error) {
	var e SleepEntry
	var date string

	err := rows.Scan(
		&e.ID, &date, &e.TotalSleepMinutes, &e.HRVLow, &e.HRVHigh, &e.RestingHeartRate,
		&e.DeepPct, &e.REMPct, &e.LightPct, &e.AwakePct, &e.MovementCount,
		&e.FullCycles, &e.PartialCycles,
	)
	if err != nil {
		return nil, err
	}

	e.Date, err = parseDay(date)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
