// Package config resolves runtime settings from .choreplan.yaml, a .env
// file and CHOREPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendMemory = "memory"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendSQLite, BackendDiskv, BackendMemory}

const (
	defaultSlot       = "planner"
	defaultSQLitePath = "~/.choreplan/choreplan.db"
	defaultDiskvPath  = "~/.choreplan/slots"
)

// Config is the resolved runtime configuration.
type Config struct {
	Backend   string
	Path      string
	Slot      string
	Catalog   string
	LogEvents bool
	LogFile   string

	// File is the config file that was read, or "" when none was found.
	File string
}

// Options controls where Load looks.
type Options struct {
	// SearchPaths are directories checked for .choreplan.yaml, after
	// $CHOREPLAN_CONFIG_PATH. Defaults to the working directory.
	SearchPaths []string
	// EnvFile is loaded into the environment first if it exists.
	// Defaults to ".env".
	EnvFile string
}

// Load reads configuration. Variables already in the environment win over
// the .env file; environment variables win over the config file.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault("backend", BackendSQLite)
	v.SetDefault("slot", defaultSlot)
	v.SetDefault("log_events", false)
	v.SetConfigName(".choreplan") // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CHOREPLAN")
	v.AutomaticEnv()
	for _, key := range []string{"path", "catalog", "log_file"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if override := os.Getenv("CHOREPLAN_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	paths := opts.SearchPaths
	if len(paths) == 0 {
		paths = []string{"./"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Backend:   strings.ToLower(v.GetString("backend")),
		Path:      v.GetString("path"),
		Slot:      v.GetString("slot"),
		Catalog:   v.GetString("catalog"),
		LogEvents: v.GetBool("log_events"),
		LogFile:   v.GetString("log_file"),
		File:      v.ConfigFileUsed(),
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve validates the config, fills backend-specific defaults and
// expands "~" in paths.
func (c *Config) resolve() error {
	var errs []error
	switch c.Backend {
	case BackendSQLite:
		if c.Path == "" {
			c.Path = defaultSQLitePath
		}
	case BackendDiskv:
		if c.Path == "" {
			c.Path = defaultDiskvPath
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("backend: invalid value %q (expected one of %s)", c.Backend, strings.Join(Backends, ", ")))
	}
	if strings.TrimSpace(c.Slot) == "" {
		errs = append(errs, fmt.Errorf("slot must not be empty"))
	}
	if strings.ContainsAny(c.Slot, `/\`) {
		errs = append(errs, fmt.Errorf("slot: %q must not contain path separators", c.Slot))
	}

	for _, p := range []*string{&c.Path, &c.Catalog, &c.LogFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			errs = append(errs, fmt.Errorf("expanding %q: %w", *p, err))
			continue
		}
		*p = expanded
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
