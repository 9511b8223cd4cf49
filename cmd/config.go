package cmd

import (
	"strconv"
	"time"

	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/synchronizer"
)

type Config struct {
	HTTPPort            string
	AtelierID           string
	RemoteStoreURL      string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	SyncDebounceMs      string
	PipelineTransitions string
}

// UsesRemoteStore reports whether the synchronizer writes to an HTTP backend
// rather than straight to postgres.
func (c Config) UsesRemoteStore() bool {
	return c.RemoteStoreURL != ""
}

// UsesDatabase reports whether a postgres connection is configured.
func (c Config) UsesDatabase() bool {
	return c.DBHost != ""
}

func (c Config) DBConn() postgres.ConnConfig {
	return postgres.ConnConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// SyncDebounce parses SYNC_DEBOUNCE_MS. Empty or invalid values fall back to the default.
func (c Config) SyncDebounce() time.Duration {
	ms, err := strconv.Atoi(c.SyncDebounceMs)
	if err != nil || ms <= 0 {
		return synchronizer.DefaultDebounce
	}
	return time.Duration(ms) * time.Millisecond
}
