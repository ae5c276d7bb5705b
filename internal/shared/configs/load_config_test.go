package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
pipeline:
  window_length_seconds: 10
  window_slide_seconds: 10
  allowed_lateness_seconds: 10
  top_size: 10
  partitions: 8
  queue_buffer: 1024
  report_time_zone: UTC
  drain_on_shutdown: true
source:
  file:
    enabled: false
reports:
  cache_ttl_minutes: 60
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	tmpfile.Close()

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, 10, cfg.Pipeline.WindowLengthSeconds)
	assert.Equal(t, 10, cfg.Pipeline.WindowSlideSeconds)
	assert.Equal(t, 10, cfg.Pipeline.AllowedLatenessSeconds)
	assert.Equal(t, 10, cfg.Pipeline.TopSize)
	assert.Equal(t, 8, cfg.Pipeline.Partitions)
	assert.Equal(t, "UTC", cfg.Pipeline.ReportTimeZone)
	assert.True(t, cfg.Pipeline.DrainOnShutdown)
	assert.False(t, cfg.Source.File.Enabled)
	assert.Equal(t, 60, cfg.Reports.CacheTTLMinutes)
}

func TestLoadConfig_MissingPort(t *testing.T) {
	path := writeTempConfig(t, `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
pipeline:
  window_length_seconds: 10
  window_slide_seconds: 10
  top_size: 10
  partitions: 8
  queue_buffer: 1024
  report_time_zone: UTC
reports:
  cache_ttl_minutes: 60
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_SlideMustEqualWindowLength(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
pipeline:
  window_length_seconds: 10
  window_slide_seconds: 5
  top_size: 10
  partitions: 8
  queue_buffer: 1024
  report_time_zone: UTC
reports:
  cache_ttl_minutes: 60
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "windowslideseconds")
}

func TestLoadConfig_InvalidLogLevelPassesLoad(t *testing.T) {
	// Log level parsing happens at logger construction, not config load.
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: invalid
file_storage:
  root_dir: ./data
pipeline:
  window_length_seconds: 10
  window_slide_seconds: 10
  top_size: 10
  partitions: 8
  queue_buffer: 1024
  report_time_zone: UTC
reports:
  cache_ttl_minutes: 60
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "invalid", cfg.Log.Level)
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
pipeline:
  window_length_seconds: 10
  window_slide_seconds: 10
  top_size: 10
  partitions: 8
  queue_buffer: 1024
  report_time_zone: UTC
reports:
  cache_ttl_minutes: 60
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_FileSourceRequiresPath(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
pipeline:
  window_length_seconds: 10
  window_slide_seconds: 10
  top_size: 10
  partitions: 8
  queue_buffer: 1024
  report_time_zone: UTC
source:
  file:
    enabled: true
    follow: true
reports:
  cache_ttl_minutes: 60
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "path")
}
