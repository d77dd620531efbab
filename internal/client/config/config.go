package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is prefixed to every remote path, e.g. "/auth/login".
	APIBaseURL string
	// RequestTimeout bounds every HTTP call.
	RequestTimeout time.Duration
	// ToastDuration is how long notifications stay visible unless dismissed.
	ToastDuration time.Duration
	// DataFile is the SQLite file that keeps the session between runs.
	DataFile string
	LogLevel string
}

const (
	DefaultAPIBaseURL     = "http://localhost:3000/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultToastDuration  = 5 * time.Second
	DefaultDataFile       = "bankfront.db"
	DefaultLogLevel       = "info"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = DefaultRequestTimeout
	c.ToastDuration = DefaultToastDuration
	c.DataFile = DefaultDataFile
	c.LogLevel = DefaultLogLevel
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
