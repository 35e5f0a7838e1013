package store

import (
	"database/sql"
	"errors"
	"time"
)

// AddActivity inserts a new activity log entry.
func (db *DB) AddActivity(a *ActivityEntry) error {
	result, err := db.Exec(`
		INSERT INTO activities (
			date, type, duration_minutes, intensity,
			zone1_minutes, zone2_minutes, zone3_minutes, zone4_minutes, zone5_minutes,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`,
		dayKey(a.Date), a.Type, a.DurationMinutes, a.Intensity,
		a.Zone1Minutes, a.Zone2Minutes, a.Zone3Minutes, a.Zone4Minutes, a.Zone5Minutes,
	)
	if err != nil {
		return err
	}
	if id, err := result.LastInsertId(); err == nil {
		a.ID = id
	}
	return nil
}

// GetActivity retrieves an activity by ID.
func (db *DB) GetActivity(id int64) (*ActivityEntry, error) {
	row := db.QueryRow(activitySelect+` WHERE id = ?`, id)
	return scanActivity(row)
}

// ListActivities returns activities within the window, oldest first.
// A nil start means unbounded.
func (db *DB) ListActivities(start *time.Time, end time.Time) ([]ActivityEntry, error) {
	var rows *sql.Rows
	var err error
	if start == nil {
		rows, err = db.Query(activitySelect+` WHERE date <= ? ORDER BY date, id`, dayKey(end))
	} else {
		rows, err = db.Query(activitySelect+` WHERE date >= ? AND date <= ? ORDER BY date, id`,
			dayKey(*start), dayKey(end))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []ActivityEntry
	for rows.Next() {
		a, err := scanActivityRow(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

// DeleteActivity removes an activity by ID.
func (db *DB) DeleteActivity(id int64) error {
	result, err := db.Exec(`DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActivities returns the total number of activities.
func (db *DB) CountActivities() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count)
	return count, err
}

const activitySelect = `
	SELECT id, date, type, duration_minutes, intensity,
		zone1_minutes, zone2_minutes, zone3_minutes, zone4_minutes, zone5_minutes
	FROM activities`

func scanActivity(row *sql.Row) (*ActivityEntry, error) {
	var a ActivityEntry
	var date string

	err := row.Scan(
		&a.ID, &date, &a.Type, &a.DurationMinutes, &a.Intensity,
		&a.Zone1Minutes, &a.Zone2Minutes, &a.Zone3Minutes, &a.Zone4Minutes, &a.Zone5Minutes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Date, err = parseDay(date)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanActivityRow(rows *sql.Rows) (*ActivityEntry, error) {
	var a ActivityEntry
	var date string

	err := rows.Scan(
		&a.ID, &date, &a.Type, &a.DurationMinutes, &a.Intensity,
		&a.Zone1Minutes, &a.Zone2Minutes, &a.Zone3Minutes, &a.Zone4Minutes, &a.Zone5Minutes,
	)
	if err != nil {
		return nil, err
	}

	a.Date, err = parseDay(date)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
