package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"raffle/internal/shared/logger"
)

func openSqlite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "m.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openSqlite(t)
	s := NewGooseStrategy(logger.NewNop())

	require.NoError(t, s.Migrate(db))
	version, err := s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"sponsors", "participants", "raffles", "deposits", "entries"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("entries", "uk_entries_raffle_ticket"))

	// idempotent
	require.NoError(t, s.Migrate(db))

	require.NoError(t, s.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("entries"))
}

func TestManager_AutoMigrate(t *testing.T) {
	db := openSqlite(t)
	m := NewManager(true, logger.NewNop())

	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())
	require.NoError(t, m.Migrate(db))
	assert.True(t, db.Migrator().HasTable("raffles"))
}

func TestGooseDialect(t *testing.T) {
	dialect, dir, err := gooseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", dialect)
	assert.Equal(t, "scripts/sqlite", dir)

	_, _, err = gooseDialect("sqlserver")
	assert.Error(t, err)
}
