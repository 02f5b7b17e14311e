// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Storage drivers understood by Storage.Driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing; env-default supplies the value when neither source sets it.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Metrics    Metrics    `yaml:"metrics"`
}

// Storage selects where the entity collections live.
// Neither driver persists anything across restarts with the default path.
type Storage struct {
	// Driver is "memory" (ordered maps) or "sqlite".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`

	// Path is the SQLite DSN; ":memory:" keeps the database in RAM.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:":memory:"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`

	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HTTP_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Metrics toggles the Prometheus /metrics endpoint. Off unless set:
// cleanenv cannot tell an explicit "false" from a missing key, so the
// flag carries no env-default.
type Metrics struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED"`
}

// Load reads the YAML file at path, applies environment overrides and
// defaults, and checks the values that cleanenv cannot.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return nil, errors.Errorf("unknown storage driver %q: want %q or %q",
			cfg.Storage.Driver, DriverMemory, DriverSQLite)
	}

	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/student-records-api --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	return cfg
}
