// Package config assembles the analyzer's run configuration from CLI
// flags, environment variable overrides, and — for anything still
// unset — interactive terminal prompts, mirroring how the original
// tool asked the operator for directories and a display count when
// they were not supplied up front.
package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

const (
	// defaultBooksDir is the directory used when the operator names none.
	defaultBooksDir = "./books"

	defaultDisplayMin = 1
	defaultDisplayMax = 1000
)

// Config is the fully-resolved set of parameters a single analysis run
// needs.
type Config struct {
	Workers      int
	Directories  []string
	Extensions   []string
	DisplayCount int
	ResultsPath  string
	NoDownload   bool
	Development  bool
}

// DefaultExtensions is the extension whitelist used when neither a
// flag nor an environment variable supplies one.
var DefaultExtensions = []string{"txt", "md"}

// FromEnv overlays environment variable overrides onto cfg, following
// the project's BindEnv-per-field viper pattern: each field is bound
// to its own env var name and only replaces cfg's value if the
// variable is actually set.
func FromEnv(cfg *Config) error {
	v := viper.New()

	if workers, err := parseEnvInt(v, "workers", "FILEANALYZER_WORKERS", cfg.Workers); err == nil {
		cfg.Workers = workers
	} else {
		return err
	}

	if results, err := parseEnvString(v, "results", "FILEANALYZER_RESULTS", cfg.ResultsPath); err == nil {
		cfg.ResultsPath = results
	} else {
		return err
	}

	if noDownload, err := parseEnvBool(v, "no_download", "FILEANALYZER_NO_DOWNLOAD", cfg.NoDownload); err == nil {
		cfg.NoDownload = noDownload
	} else {
		return err
	}

	return nil
}

// ValidateDisplayCount checks that a user-supplied display count lies in
// the accepted [1, 1000] range, returning an error if it falls outside
// it. It does not clamp the value.
func ValidateDisplayCount(n int) error {
	if n < defaultDisplayMin || n > defaultDisplayMax {
		return fmt.Errorf("display count must be between %d and %d, got %d", defaultDisplayMin, defaultDisplayMax, n)
	}
	return nil
}

// DefaultBooksDir is the directory used when the operator accepts the
// interactive prompt's default instead of naming their own.
func DefaultBooksDir() string { return defaultBooksDir }

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue int) (int, error) {
	if err := v.BindEnv(key, envVar); err != nil {
		return defaultValue, nil
	}
	v.SetDefault(key, defaultValue)
	return v.GetInt(key), nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue bool) (bool, error) {
	if err := v.BindEnv(key, envVar); err != nil {
		return defaultValue, nil
	}
	v.SetDefault(key, defaultValue)
	return v.GetBool(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue string) (string, error) {
	if err := v.BindEnv(key, envVar); err != nil {
		return defaultValue, nil
	}
	v.SetDefault(key, defaultValue)
	return v.GetString(key), nil
}

// parseCount is shared by the interactive prompt and any future
// non-interactive input path that needs the same "is this a valid
// display count" parse-and-range-check.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, ValidateDisplayCount(n) == nil
}
