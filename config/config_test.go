package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paydate-engine/config"
	"github.com/warp/paydate-engine/paydate"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "paydate.db", cfg.DB.Path)
	assert.Equal(t, 10, cfg.Paydates.DefaultCount)
	assert.Equal(t, 366, cfg.Paydates.AdjustLimit)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.HTTP.AllowedOrigins)
	assert.False(t, cfg.Development())
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", `
env: development
http:
  port: 9090
db:
  path: ":memory:"
paydates:
  default_count: 4
`)
	t.Setenv("PAYDATE_HTTP_PORT", "9191")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Development())
	assert.Equal(t, 9191, cfg.HTTP.Port)
	assert.Equal(t, ":memory:", cfg.DB.Path)
	assert.Equal(t, 4, cfg.Paydates.DefaultCount)
	assert.Equal(t, 520, cfg.Paydates.MaxCount)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "http:\n  port: 70000\n")
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "out of range")
}

func TestParseHolidays(t *testing.T) {
	holidays, err := config.ParseHolidays([]byte(`
- date: "2014-12-25"
  name: Christmas Day
- date: "2015-01-01"
  name: New Year's Day
`))
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, paydate.MustParseDate("2014-12-25"), holidays[0].Date)
	assert.Equal(t, "2014-12-25", holidays[0].ID)
	assert.Equal(t, "New Year's Day", holidays[1].Name)

	_, err = config.ParseHolidays([]byte(`- date: "25-12-2014"`))
	assert.ErrorContains(t, err, "unparsable date")

	_, err = config.ParseHolidays([]byte(`- name: nameless`))
	assert.ErrorContains(t, err, "missing date")
}

func TestHolidaysOrDefault(t *testing.T) {
	cfg := &config.Config{}
	holidays, err := cfg.HolidaysOrDefault()
	require.NoError(t, err)
	assert.Len(t, holidays, 20)

	cfg.Holidays.File = writeFile(t, "holidays.yaml", "- date: \"2014-12-25\"\n  name: Christmas Day\n")
	holidays, err = cfg.HolidaysOrDefault()
	require.NoError(t, err)
	assert.Len(t, holidays, 1)
}
