package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/enlace/internal/prefs"
)

// Config captures the runtime settings of the Enlace console.
type Config struct {
	NavigationDelay time.Duration `env:"NAVIGATION_DELAY"`
	LoginDelay      time.Duration `env:"LOGIN_DELAY"`
	LogFile         string        `env:"LOG_FILE"`
	PrefsFile       string        `env:"PREFS_FILE"`
}

const (
	defaultConfigPath      = "~/.config/enlace/config.toml"
	defaultLogFile         = "~/.local/state/enlace/enlace.log"
	defaultNavigationDelay = 2 * time.Second
	defaultLoginDelay      = 7200 * time.Millisecond

	envPrefix = "ENLACE_"
)

// Defaults returns the configuration used when no file or environment
// overrides are present.
func Defaults() Config {
	return Config{
		NavigationDelay: defaultNavigationDelay,
		LoginDelay:      defaultLoginDelay,
		LogFile:         defaultLogFile,
		PrefsFile:       prefs.DefaultPath(),
	}
}

// Load reads the TOML config at path (or the default location), then applies
// ENLACE_* environment overrides. A .env file in the working directory is
// loaded first when present. A missing config file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.readFile(resolved); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.sanitize()
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		NavigationDelay string `toml:"navigation_delay"`
		LoginDelay      string `toml:"login_delay"`
		LogFile         string `toml:"log_file"`
		PrefsFile       string `toml:"prefs_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.NavigationDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse navigation_delay: %w", err)
		}
		c.NavigationDelay = d
	}
	if v := strings.TrimSpace(raw.LoginDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse login_delay: %w", err)
		}
		c.LoginDelay = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(raw.PrefsFile); v != "" {
		c.PrefsFile = v
	}
	return nil
}

// sanitize restores defaults for non-positive delays and expands paths.
func (c *Config) sanitize() {
	if c.NavigationDelay <= 0 {
		c.NavigationDelay = defaultNavigationDelay
	}
	if c.LoginDelay <= 0 {
		c.LoginDelay = defaultLoginDelay
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	if strings.TrimSpace(c.PrefsFile) == "" {
		c.PrefsFile = prefs.DefaultPath()
	}
	c.LogFile = mustExpand(c.LogFile)
	c.PrefsFile = mustExpand(c.PrefsFile)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return prefs.ExpandPath(defaultConfigPath)
	}
	return prefs.ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := prefs.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	return filepath.Dir(c.LogFile)
}
