// Package config resolves runtime settings from defaults, an optional YAML
// file and PRODSCHED_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/prodsched/internal/domain"
	"gopkg.in/yaml.v3"
)

// Backend selects the store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Config holds everything main needs to wire the application.
type Config struct {
	DataDir     string  `yaml:"data_dir"`
	Backend     Backend `yaml:"backend"`
	DBPath      string  `yaml:"db_path"`
	LogUseCases bool    `yaml:"log_use_cases"`

	// Path of the config file that was read, empty if none.
	File string `yaml:"-"`
}

const (
	envConfig      = "PRODSCHED_CONFIG"
	envDataDir     = "PRODSCHED_DATA_DIR"
	envBackend     = "PRODSCHED_BACKEND"
	envDB          = "PRODSCHED_DB"
	envLogUseCases = "PRODSCHED_LOG_USE_CASES"

	// DefaultFileName is looked up inside the data directory.
	DefaultFileName = "config.yaml"
	defaultDBName   = "prodsched.db"
)

// Default returns the configuration used when nothing is set.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DataDir: filepath.Join(home, ".prodsched"),
		Backend: BackendJSON,
	}, nil
}

// Load resolves the configuration. The file is $PRODSCHED_CONFIG when set,
// otherwise config.yaml in the data directory; a missing default file is
// not an error.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	cfg.DataDir = domain.CoalesceStr(os.Getenv(envDataDir), cfg.DataDir)

	path, explicit := os.Getenv(envConfig), true
	if path == "" {
		path, explicit = filepath.Join(cfg.DataDir, DefaultFileName), false
	}
	if err := cfg.readFile(path, explicit); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.DBPath = domain.CoalesceStr(cfg.DBPath, filepath.Join(cfg.DataDir, defaultDBName))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("decoding config %s: %v: %w", path, err, domain.ErrConfiguration)
		}
	}
	c.File = path
	return nil
}

// applyEnv overrides file values with PRODSCHED_* variables. The data
// directory is applied again so it wins over the file too.
func applyEnv(c *Config) error {
	c.DataDir = domain.CoalesceStr(os.Getenv(envDataDir), c.DataDir)
	if v := os.Getenv(envBackend); v != "" {
		c.Backend = Backend(strings.ToLower(strings.TrimSpace(v)))
	}
	c.DBPath = domain.CoalesceStr(os.Getenv(envDB), c.DBPath)
	if v := os.Getenv(envLogUseCases); v != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean: %w", envLogUseCases, v, domain.ErrConfiguration)
		}
		c.LogUseCases = on
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data directory is empty: %w", domain.ErrConfiguration)
	}
	switch c.Backend {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s): %w", c.Backend, BackendJSON, BackendSQLite, domain.ErrConfiguration)
	}
}
