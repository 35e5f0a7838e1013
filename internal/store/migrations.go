package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Sleep log (one row per night)
		`CREATE TABLE IF NOT EXISTS sleep_entries (
			id INTEGER PRIMARY KEY,
			date TEXT NOT NULL UNIQUE,
			total_sleep_minutes REAL,
			hrv_low REAL,
			hrv_high REAL,
			resting_heart_rate REAL,
			deep_pct REAL,
			rem_pct REAL,
			light_pct REAL,
			awake_pct REAL,
			movement_count REAL,
			full_cycles REAL,
			partial_cycles REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sleep_entries_date ON sleep_entries(date)`,

		// Activity log (multiple rows per day allowed)
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY,
			date TEXT NOT NULL,
			type TEXT NOT NULL,
			duration_minutes REAL NOT NULL,
			intensity INTEGER NOT NULL,
			zone1_minutes REAL,
			zone2_minutes REAL,
			zone3_minutes REAL,
			zone4_minutes REAL,
			zone5_minutes REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_type ON activities(type)`,

		// Blood pressure readings (multiple rows per day allowed)
		`CREATE TABLE IF NOT EXISTS bp_readings (
			id INTEGER PRIMARY KEY,
			date TEXT NOT NULL,
			time_of_day TEXT,
			systolic REAL NOT NULL,
			diastolic REAL NOT NULL,
			pulse REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_bp_readings_date ON bp_readings(date)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
