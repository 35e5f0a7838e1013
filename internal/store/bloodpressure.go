package store

import (
	"database/sql"
	"errors"
	"time"
)

// AddBPReading inserts a new blood-pressure reading.
func (db *DB) AddBPReading(r *BPReading) error {
	result, err := db.Exec(`
		INSERT INTO bp_readings (date, time_of_day, systolic, diastolic, pulse, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`,
		dayKey(r.Date), r.TimeOfDay, r.Systolic, r.Diastolic, r.Pulse,
	)
	if err != nil {
		return err
	}
	if id, err := result.LastInsertId(); err == nil {
		r.ID = id
	}
	return nil
}

// ListBPReadings returns readings within the window, oldest first.
// A nil start means unbounded.
func (db *DB) ListBPReadings(start *time.Time, end time.Time) ([]BPReading, error) {
	var rows *sql.Rows
	var err error
	if start == nil {
		rows, err = db.Query(bpSelect+` WHERE date <= ? ORDER BY date, id`, dayKey(end))
	} else {
		rows, err = db.Query(bpSelect+` WHERE date >= ? AND date <= ? ORDER BY date, id`,
			dayKey(*start), dayKey(end))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []BPReading
	for rows.Next() {
		r, err := scanBPReadingRow(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, *r)
	}
	return readings, rows.Err()
}

// LatestBPReading returns the most recent reading on or before the date.
func (db *DB) LatestBPReading(onOrBefore time.Time) (*BPReading, error) {
	row := db.QueryRow(bpSelect+` WHERE date <= ? ORDER BY date DESC, id DESC LIMIT 1`, dayKey(onOrBefore))
	return scanBPReading(row)
}

// CountBPReadings returns the total number of readings.
func (db *DB) CountBPReadings() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM bp_readings").Scan(&count)
	return count, err
}

const bpSelect = `
	SELECT id, date, COALESCE(time_of_day, ''), systolic, diastolic, pulse
	FROM bp_readings`

func scanBPReading(row *sql.Row) (*BPReading, error) {
	var r BPReading
	var date string

	err := row.Scan(&r.ID, &date, &r.TimeOfDay, &r.Systolic, &r.Diastolic, &r.Pulse)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	r.Date, err = parseDay(date)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanBPReadingRow(rows *sql.Rows) (*BPReading, error) {
	var r BPReading
	var date string

	err := rows.Scan(&r.ID, &date, &r.TimeOfDay, &r.Systolic, &r.Diastolic, &r.Pulse)
	if err != nil {
		return nil, err
	}

	r.Date, err = parseDay(date)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
