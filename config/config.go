// Package config loads the runtime configuration of the translator
// from the environment.
package config

import (
	"os"
	"strconv"
)

// Config carries the process-level settings of one translator run.
type Config struct {
	// LogLevel selects the log level. Empty means info.
	LogLevel string

	// Trace enables an instruction table dump on stderr.
	Trace bool

	// Lint enables the advisory label report on stderr.
	Lint bool
}

// Load reads the configuration from IPP_* environment variables.
func Load() Config {
	return Config{
		LogLevel: getenv("IPP_LOG_LEVEL", "info"),
		Trace:    getbool("IPP_TRACE"),
		Lint:     getbool("IPP_LINT"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}
