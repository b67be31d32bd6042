package config

import "errors"

// Config is the top-level configuration struct for framecheck.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Folders    []string     `mapstructure:"folders"`
	Formats    []string     `mapstructure:"formats"`
	AutoDetect bool         `mapstructure:"auto_detect"`
	Watch      WatchConfig  `mapstructure:"watch"`
	Output     OutputConfig `mapstructure:"output"`
	Log        LogConfig    `mapstructure:"log"`
}

// WatchConfig holds the polling watcher knobs.
type WatchConfig struct {
	// Interval is the delay between re-checks, in seconds.
	Interval int `mapstructure:"interval"`
	// Listen is the address for the metrics and health endpoints; empty
	// disables the HTTP listener.
	Listen string `mapstructure:"listen"`
}

// OutputConfig holds report presentation settings.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Defaults applied by the loader when neither file nor environment provides a
// value.
const (
	// DefaultAutoDetect enables prefix inference.
	DefaultAutoDetect = true
	// DefaultWatchInterval is the re-check delay in seconds.
	DefaultWatchInterval = 5
	// DefaultOutputFormat renders the full text report.
	DefaultOutputFormat = "text"
	// DefaultLogLevel is the slog level name.
	DefaultLogLevel = "info"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidWatchInterval indicates the watch interval is not positive.
	ErrInvalidWatchInterval = errors.New("watch.interval must be positive")
	// ErrInvalidOutputFormat indicates an unknown output format name.
	ErrInvalidOutputFormat = errors.New("output.format must be one of text, compact, json, yaml")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("log.level must be one of debug, info, warn, error")
)

// outputFormats enumerates the renderers the CLI can select.
var outputFormats = map[string]struct{}{
	"text":    {},
	"compact": {},
	"json":    {},
	"yaml":    {},
}

// logLevels enumerates the accepted slog level names.
var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Watch.Interval <= 0 {
		return ErrInvalidWatchInterval
	}

	if _, ok := outputFormats[c.Output.Format]; !ok {
		return ErrInvalidOutputFormat
	}

	if _, ok := logLevels[c.Log.Level]; !ok {
		return ErrInvalidLogLevel
	}

	return nil
}
