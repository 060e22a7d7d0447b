package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated in-memory database whose clock advances one
// second per insert, starting at 2025-01-01 09:00 UTC.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	current := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	db.SetClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	})
	return db
}

func ctx() context.Context {
	return context.Background()
}
