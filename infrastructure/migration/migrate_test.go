package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidArguments(t *testing.T) {
	assert.Error(t, Run("", DirectionUp))
	assert.Error(t, Run("postgres://localhost/crm", "sideways"))
}

func TestMigrationFiles(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}

	assert.Greater(t, ups, 0)
	assert.Equal(t, ups, downs, "cada migração up precisa de uma down")

	initSQL, err := fs.ReadFile(migrationFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"crm_companies", "crm_contacts", "crm_deals", "crm_activities", "crm_campaigns", "crm_campaign_contacts"} {
		assert.Contains(t, string(initSQL), "CREATE TABLE IF NOT EXISTS "+table)
	}

	trackingSQL, err := fs.ReadFile(migrationFS, "migrations/000002_projects_tracking.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(trackingSQL), "CREATE TABLE IF NOT EXISTS crm_projects")
	for _, column := range []string{"assigned_to_id", "is_pinned", "sent_at", "opened_at", "clicked_at"} {
		assert.Contains(t, string(trackingSQL), "ADD COLUMN IF NOT EXISTS "+column)
	}
}
