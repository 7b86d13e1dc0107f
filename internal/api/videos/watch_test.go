package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=streamflix dbname=streamflix",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

// the counter must be bumped inside SQL, not read-modify-written in Go
func TestViewCountIncrement(t *testing.T) {
	stmt := viewCountIncrement(dryRunDB(t), 7).Statement

	assert.Contains(t, stmt.SQL.String(), "view_count + 1")
	assert.Equal(t, []interface{}{uint(7)}, stmt.Vars)
}
