// Package config resolves the settings of a run. Values are layered:
// built-in defaults, then an optional YAML file, then environment
// variables. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/calcprods/internal/nutrition"
)

// DefaultFile is the config file looked up in the working directory when
// no path is given.
const DefaultFile = "calcprods.yaml"

// Env var names.
const (
	EnvConfig  = "CALCPRODS_CONFIG"
	EnvDataDir = "CALCPRODS_DATA_DIR"
	EnvOutDir  = "CALCPRODS_OUT_DIR"
	EnvAPIKey  = nutrition.EnvAPIKey
)

// Config holds everything a run needs to know.
type Config struct {
	DataDir       string    `yaml:"data_dir"`
	OutDir        string    `yaml:"out_dir"`
	StockFile     string    `yaml:"stock_file"`
	OrderFile     string    `yaml:"order_file"`
	NutritionFile string    `yaml:"nutrition_file"`
	People        int       `yaml:"people"`
	Days          string    `yaml:"days"`
	LogLevel      string    `yaml:"log_level"`
	Nutrition     Nutrition `yaml:"nutrition"`
}

// Nutrition configures the nutrition API client and its cache.
type Nutrition struct {
	Endpoint  string        `yaml:"endpoint"`
	APIKey    string        `yaml:"-"`
	Timeout   time.Duration `yaml:"timeout"`
	CachePath string        `yaml:"cache_path"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:       "data",
		OutDir:        "out",
		StockFile:     "instock.csv",
		OrderFile:     "order.csv",
		NutritionFile: "nutrition.csv",
		People:        70,
		Days:          "0-10",
		LogLevel:      "normal",
		Nutrition: Nutrition{
			Endpoint:  nutrition.DefaultEndpoint,
			Timeout:   30 * time.Second,
			CachePath: ".calcprods-cache/nutrition.db",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path and then
// the environment. An empty path means DefaultFile, which may be absent;
// an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvDataDir)); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(getenv(EnvOutDir)); v != "" {
		c.OutDir = v
	}
	if v := strings.TrimSpace(getenv(EnvAPIKey)); v != "" {
		c.Nutrition.APIKey = v
	}
}

// Validate checks that the settings can drive a run.
func (c Config) Validate() error {
	var errs []error
	if c.People < 1 {
		errs = append(errs, fmt.Errorf("people must be at least 1, got %d", c.People))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New("data dir is empty"))
	}
	if strings.TrimSpace(c.OutDir) == "" {
		errs = append(errs, errors.New("out dir is empty"))
	}
	if strings.TrimSpace(c.Days) == "" {
		errs = append(errs, errors.New("days is empty"))
	}
	if c.Nutrition.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("nutrition timeout must be positive, got %s", c.Nutrition.Timeout))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ── Paths ────────────────────────────────────────────────────────

// StockInPath is the on-hand list the order is computed against.
func (c Config) StockInPath() string { return filepath.Join(c.DataDir, c.StockFile) }

// StockOutPath is where the empty stock list is written.
func (c Config) StockOutPath() string { return filepath.Join(c.OutDir, c.StockFile) }

// OrderOutPath is where the order list is written.
func (c Config) OrderOutPath() string { return filepath.Join(c.OutDir, c.OrderFile) }

// NutritionOutPath is where nutrition facts are written.
func (c Config) NutritionOutPath() string { return filepath.Join(c.OutDir, c.NutritionFile) }
