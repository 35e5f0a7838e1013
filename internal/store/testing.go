package store

// NewTestDB creates a DB backed by an in-memory database.
// This is only intended for use in tests.
func NewTestDB() (*DB, error) {
	return openAt(":memory:")
}
