package database

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	require.NoError(t, InitMigrations())

	migrations, err := goose.CollectMigrations(MigrationsDir, 0, goose.MaxVersion)
	require.NoError(t, err)
	if assert.Len(t, migrations, 2) {
		assert.Equal(t, int64(1), migrations[0].Version)
		assert.Equal(t, int64(2), migrations[1].Version)
	}

	// grades keep full precision, like the in-memory engine
	sql, err := Migrations.ReadFile(MigrationsDir + "/00002_create_grade_entries.sql")
	require.NoError(t, err)
	assert.Contains(t, string(sql), "grade       DOUBLE PRECISION NOT NULL")
	assert.Contains(t, string(sql), "percentage  DOUBLE PRECISION NOT NULL")
	assert.NotContains(t, string(sql), "NUMERIC")
}
