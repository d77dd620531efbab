// Package config loads runtime configuration for the bankfront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the banking API (BFF)
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Durations use timex.Duration, so "15s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:3000/api",
//	  "request_timeout": "15s",
//	  "toast_duration": "5s",
//	  "data_file": "bankfront.db",
//	  "log_level": "info"
//	}
//
// Fields missing from the file keep their default values.
package config
