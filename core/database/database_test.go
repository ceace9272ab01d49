package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_MySQLDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "fad", Password: "p@ss:word", Name: "history", TimeoutSeconds: 3}

	dsn := cfg.MySQLDSN()
	assert.Contains(t, dsn, "fad:p%40ss%3Aword@tcp(db:3307)/history?")
	assert.Contains(t, dsn, "timeout=3s")
	assert.Equal(t, 10*time.Second, Config{}.Timeout())
}

func TestDialector(t *testing.T) {
	d, err := Dialector(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = Dialector(Config{})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(Config{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestConnect(t *testing.T) {
	t.Run("Unreachable MySQL", func(t *testing.T) {
		db, err := Connect(Config{
			Driver:         DriverMySQL,
			Host:           "127.0.0.1",
			Port:           9999,
			User:           "root",
			Name:           "history",
			TimeoutSeconds: 1,
		})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})
}
