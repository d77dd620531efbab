package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/bankfront/internal/flagx"
	"github.com/dmitrijs2005/bankfront/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the config file. Pointers tell "absent"
// apart from zero values so that missing keys keep their defaults.
type fileConfig struct {
	APIBaseURL     *string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ToastDuration  *timex.Duration `json:"toast_duration" yaml:"toast_duration"`
	DataFile       *string         `json:"data_file" yaml:"data_file"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with values from the file named by -c/-config.
// Panics on read or decode errors, like parseFlags does on bad flags.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	if err := decodeFile(path, data, &fc); err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte, fc *fileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ToastDuration != nil {
		cfg.ToastDuration = fc.ToastDuration.Duration
	}
	if fc.DataFile != nil {
		cfg.DataFile = *fc.DataFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
}
