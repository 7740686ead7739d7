package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leads-admin-service/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/leads")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("WEEK_START", "Monday")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 1000, cfg.PurgeBatchSize)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)

	wd, err := cfg.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing DB_DSN",
			env:  map[string]string{"DB_DSN": "", "JWT_SECRET": "s"},
		},
		{
			name: "bad weekday",
			env:  map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "WEEK_START": "someday"},
		},
		{
			name: "non-positive batch",
			env:  map[string]string{"DB_DSN": "x", "JWT_SECRET": "s", "PURGE_BATCH_SIZE": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := config.ParseWeekday("SATURDAY")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d)
}

func TestLoadWatch(t *testing.T) {
	t.Setenv("ADMIN_API_URL", "http://localhost:8080")
	t.Setenv("SESSION_TOKEN", "jwt")

	cfg, err := config.LoadWatch()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Interval)

	t.Setenv("SESSION_CHECK_INTERVAL", "0s")
	_, err = config.LoadWatch()
	assert.Error(t, err)

	t.Setenv("SESSION_CHECK_INTERVAL", "1m")
	t.Setenv("SESSION_TOKEN", "")
	_, err = config.LoadWatch()
	assert.Error(t, err)
}
