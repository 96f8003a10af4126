package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "wavify"

const (
	defaultVolume   = 70
	defaultLogLevel = "info"
)

// Config holds the user settings read from config.toml. Zero values fall
// back to the defaults returned by the getters.
type Config struct {
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	Volume      int    `koanf:"volume"`       // startup volume, 1-100
	Repeat      string `koanf:"repeat"`       // "off", "track" or "context"
	CatalogFile string `koanf:"catalog_file"` // alternate catalog, embedded one when empty

	LogLevel string `koanf:"log_level"` // trace, debug, info, warn, error
	LogFile  string `koanf:"log_file"`
}

// Load reads the config files in priority order. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files; later files override earlier ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.CatalogFile = expandPath(cfg.CatalogFile)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Repeat = strings.ToLower(strings.TrimSpace(cfg.Repeat))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/wavify/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// InitialVolume returns the startup volume, 70 when unset or out of range.
func (c *Config) InitialVolume() int {
	if c.Volume <= 0 || c.Volume > 100 {
		return defaultVolume
	}
	return c.Volume
}

// GetLogLevel returns the configured log level, "info" by default.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return c.LogLevel
}

// GetLogFile returns the log file path, under $XDG_STATE_HOME by default.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// HasCatalogFile reports whether an alternate catalog is configured.
func (c *Config) HasCatalogFile() bool {
	return c.CatalogFile != ""
}
