package admin

import (
	"testing"

	"streamflix-app/internal/domain/videos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a live connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=streamflix dbname=streamflix",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestAdminVideoQuery(t *testing.T) {
	t.Run("no filters sees the whole catalog, drafts included", func(t *testing.T) {
		stmt := adminVideoQuery(dryRunDB(t), "", "").Find(&[]videos.Video{}).Statement
		assert.NotContains(t, stmt.SQL.String(), "published")
	})

	t.Run("draft filter", func(t *testing.T) {
		stmt := adminVideoQuery(dryRunDB(t), "draft", "").Find(&[]videos.Video{}).Statement
		assert.Contains(t, stmt.SQL.String(), "published")
		assert.Equal(t, []interface{}{false}, stmt.Vars)
	})

	t.Run("published filter", func(t *testing.T) {
		stmt := adminVideoQuery(dryRunDB(t), "published", "").Find(&[]videos.Video{}).Statement
		assert.Equal(t, []interface{}{true}, stmt.Vars)
	})

	t.Run("unknown status filter is ignored", func(t *testing.T) {
		stmt := adminVideoQuery(dryRunDB(t), "archived", "").Find(&[]videos.Video{}).Statement
		assert.NotContains(t, stmt.SQL.String(), "published")
	})

	t.Run("search matches title substrings", func(t *testing.T) {
		stmt := adminVideoQuery(dryRunDB(t), "", "tiger").Find(&[]videos.Video{}).Statement
		assert.Contains(t, stmt.SQL.String(), "ILIKE")
		assert.Equal(t, []interface{}{"%tiger%"}, stmt.Vars)
	})
}
