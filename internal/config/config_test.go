package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
http_server:
  address: "0.0.0.0:9090"
  timeout: 2s
booking:
  timezone: "UTC"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("BOOKING_TIMEZONE", "UTC")

	path := writeConfig(t, `
env: "dev"
http_server:
  address: "localhost:8080"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":7070", cfg.HTTPServer.Address)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("ENV", "dev")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadUnknownTimezone(t *testing.T) {
	path := writeConfig(t, `
booking:
  timezone: "Mars/Olympus_Mons"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBookingLocation(t *testing.T) {
	loc, err := Booking{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
