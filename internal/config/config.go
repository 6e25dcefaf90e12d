// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the registration service.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AppointmentsFile is the path of the append-only appointment log.
	// Defaults to "appointments.txt" in the working directory.
	AppointmentsFile string

	// StrictLog makes a failed log write fail the whole registration.
	// Defaults to false: the registration is kept in memory and the failure
	// is only logged.
	StrictLog bool

	// EchoRoster prints the cumulative roster after every successful
	// registration on the HTTP surface. Defaults to true.
	EchoRoster bool

	// MaxBodyBytes caps HTTP request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable whose value is invalid.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AppointmentsFile: getEnv("APPOINTMENTS_FILE", "appointments.txt"),
	}

	var invalid []string

	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		invalid = append(invalid, "PORT")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}

	var err error
	if cfg.StrictLog, err = getEnvAsBool("STRICT_LOG", false); err != nil {
		invalid = append(invalid, "STRICT_LOG")
	}
	if cfg.EchoRoster, err = getEnvAsBool("ECHO_ROSTER", true); err != nil {
		invalid = append(invalid, "ECHO_ROSTER")
	}
	if cfg.MaxBodyBytes, err = getEnvAsInt64("MAX_BODY_BYTES", 64<<10); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set.
// Files that do not exist are skipped; with no arguments ".env" is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config.LoadDotEnv: %s: %w", p, err)
		}
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvAsBool parses the variable with strconv.ParseBool.
func getEnvAsBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}

// getEnvAsInt64 parses the variable as a base-10 integer.
func getEnvAsInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
