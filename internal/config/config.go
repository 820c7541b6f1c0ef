package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"radtui/internal/logger"
	"radtui/internal/parser"
)

const (
	DefaultUsersFile      = "/etc/raddb/users"
	DefaultServiceName    = "radiusd"
	DefaultRestartTimeout = 30 * time.Second

	EnvUsersFile = "RADTUI_USERS_FILE"
	EnvLogLevel  = "RADTUI_LOG_LEVEL"
)

var (
	ErrNoUsersFile     = errors.New("users file path is empty")
	ErrInvalidMarkers  = errors.New("start and end markers must be non-empty and different")
	ErrInvalidTimeout  = errors.New("service restart timeout must be positive")
	ErrNoServiceTarget = errors.New("service restart command is empty")
)

// Config is the radtui configuration.
type Config struct {
	UsersFile string         `yaml:"users_file"`
	Markers   parser.Markers `yaml:"markers"`
	Service   ServiceConfig  `yaml:"service"`
	Log       logger.Config  `yaml:"log"`
}

// ServiceConfig describes how the RADIUS daemon is restarted.
type ServiceConfig struct {
	Name    string        `yaml:"name"`
	Command []string      `yaml:"command"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UsersFile: DefaultUsersFile,
		Markers:   parser.DefaultMarkers(),
		Service: ServiceConfig{
			Name:    DefaultServiceName,
			Command: []string{"sudo", "systemctl", "restart", DefaultServiceName},
			Timeout: DefaultRestartTimeout,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvUsersFile); v != "" {
		c.UsersFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Overrides holds command-line values that take precedence over the file and
// environment. Empty fields leave the loaded value alone.
type Overrides struct {
	UsersFile string
	LogLevel  string
	Debug     bool
}

// BindFlags registers the override flags on fs.
func (o *Overrides) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.UsersFile, "file", "f", "", "path to the RADIUS users file (default "+DefaultUsersFile+")")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.BoolVar(&o.Debug, "debug", false, "enable debug logging")
}

// Apply copies the non-empty overrides into c.
func (o Overrides) Apply(c *Config) {
	if o.UsersFile != "" {
		c.UsersFile = o.UsersFile
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.Debug {
		c.Log.Debug = true
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.UsersFile == "" {
		return ErrNoUsersFile
	}
	if c.Markers.Start == "" || c.Markers.End == "" || c.Markers.Start == c.Markers.End {
		return ErrInvalidMarkers
	}
	if len(c.Service.Command) == 0 {
		return ErrNoServiceTarget
	}
	if c.Service.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
