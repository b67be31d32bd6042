package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikygilang/framecheck/internal/config"
)

// emptyConfigFile returns a path to an existing zero-byte config so loads
// exercise pure defaults without depending on the host's search paths.
func emptyConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "framecheck.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(emptyConfigFile(t))
	require.NoError(t, err)

	assert.Empty(t, cfg.Folders)
	assert.Empty(t, cfg.Formats)
	assert.True(t, cfg.AutoDetect)
	assert.Equal(t, config.DefaultWatchInterval, cfg.Watch.Interval)
	assert.Empty(t, cfg.Watch.Listen)
	assert.Equal(t, config.DefaultOutputFormat, cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "framecheck.yaml")

	content := `
folders:
  - /renders/shot010
  - /renders/shot020
formats:
  - png
  - exr
auto_detect: false
watch:
  interval: 30
  listen: "localhost:9090"
output:
  format: json
  no_color: true
log:
  level: debug
  json: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/renders/shot010", "/renders/shot020"}, cfg.Folders)
	assert.Equal(t, []string{"png", "exr"}, cfg.Formats)
	assert.False(t, cfg.AutoDetect)
	assert.Equal(t, 30, cfg.Watch.Interval)
	assert.Equal(t, "localhost:9090", cfg.Watch.Listen)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("FRAMECHECK_OUTPUT_FORMAT", "compact")
	t.Setenv("FRAMECHECK_WATCH_INTERVAL", "12")

	cfg, err := config.LoadConfig(emptyConfigFile(t))
	require.NoError(t, err)

	assert.Equal(t, "compact", cfg.Output.Format)
	assert.Equal(t, 12, cfg.Watch.Interval)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "zero watch interval",
			content: "watch:\n  interval: 0\n",
			wantErr: config.ErrInvalidWatchInterval,
		},
		{
			name:    "unknown output format",
			content: "output:\n  format: xml\n",
			wantErr: config.ErrInvalidOutputFormat,
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			wantErr: config.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "framecheck.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.LoadConfig(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "framecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folders: [unterminated"), 0o600))

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}
