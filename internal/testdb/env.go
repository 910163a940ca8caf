//go:build integration

package testdb

import (
	"os"
	"testing"
)

// Environment variables consulted for test backends, in priority order.
const (
	EnvDatabaseURL     = "DATABASE_URL"
	EnvTestDatabaseURL = "FORECAST_TEST_DATABASE_URL"
	EnvRedisURL        = "REDIS_URL"
	EnvTestRedisURL    = "FORECAST_TEST_REDIS_URL"
)

// DatabaseURL returns the test database URL or skips t.
func DatabaseURL(t *testing.T) string {
	t.Helper()
	return firstSet(t, EnvTestDatabaseURL, EnvDatabaseURL)
}

// RedisURL returns the test Redis URL or skips t.
func RedisURL(t *testing.T) string {
	t.Helper()
	return firstSet(t, EnvTestRedisURL, EnvRedisURL)
}

func firstSet(t *testing.T, names ...string) string {
	t.Helper()
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	t.Skipf("none of %v set", names)
	return ""
}
