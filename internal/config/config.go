package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quocvuong92/archie/internal/constants"
)

// Environment variable names
const (
	EnvManager        = "ARCHIE_MANAGER"
	EnvRegistry       = "ARCHIE_REGISTRY"
	EnvAURCache       = "ARCHIE_AUR_CACHE"
	EnvLogLevel       = "ARCHIE_LOG_LEVEL"
	EnvLogFile        = "ARCHIE_LOG_FILE"
	EnvMaxSuggestions = "ARCHIE_MAX_SUGGESTIONS"

	// EnvXDGCacheHome overrides <home>/.cache
	EnvXDGCacheHome = "XDG_CACHE_HOME"
)

// Defaults - re-exported from constants for convenience
const (
	DefaultRegistry       = constants.DefaultRegistry
	DefaultLogLevel       = constants.DefaultLogLevel
	DefaultMaxSuggestions = constants.DefaultMaxSuggestions
)

// Errors
var (
	ErrInvalidLogLevel       = errors.New("invalid log level. Use 'debug', 'info', 'warn', 'error', or 'none'")
	ErrInvalidMaxSuggestions = errors.New("max_suggestions must be zero (unlimited) or positive")
	ErrInvalidManager        = errors.New("manager must be a single executable name or path")
)

var validLogLevels = []string{"debug", "info", "warn", "warning", "error", "none", "off"}

// Config holds the application configuration
type Config struct {
	// Manager is the package manager executable; empty means auto-detect
	Manager string
	// Registry is the system package database tool (source of package names, orphan queries)
	Registry string

	// Explicit paths so nothing below reads ambient process state twice
	HomeDir  string
	CacheDir string
	AURCache string

	// Logging
	LogLevel string
	LogFile  string

	// Protect lists package patterns that remove and purge refuse
	Protect []string

	// Presentation
	RenderHelp     bool
	MaxSuggestions int
}

// NewConfig creates a new Config with defaults
func NewConfig() *Config {
	return &Config{
		RenderHelp:     true,
		MaxSuggestions: -1, // unset; resolved in Validate
	}
}

// Validate validates the configuration and loads from environment.
// Precedence: flags (already set on c) > environment > config file > defaults.
func (c *Config) Validate() error {
	if c.HomeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.HomeDir = home
		}
	}

	// Load from config file first (lowest priority)
	if fileConfig, err := LoadConfigFile(c.HomeDir); err == nil {
		c.ApplyFileConfig(fileConfig)
	} else {
		return err
	}

	if env := strings.TrimSpace(os.Getenv(EnvManager)); env != "" && c.Manager == "" {
		c.Manager = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvRegistry)); env != "" && c.Registry == "" {
		c.Registry = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvAURCache)); env != "" && c.AURCache == "" {
		c.AURCache = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" && c.LogLevel == "" {
		c.LogLevel = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvLogFile)); env != "" && c.LogFile == "" {
		c.LogFile = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvMaxSuggestions)); env != "" && c.MaxSuggestions < 0 {
		n, err := strconv.Atoi(env)
		if err != nil {
			return ErrInvalidMaxSuggestions
		}
		c.MaxSuggestions = n
	}

	// Defaults
	if c.Registry == "" {
		c.Registry = DefaultRegistry
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MaxSuggestions < 0 {
		c.MaxSuggestions = DefaultMaxSuggestions
	}
	if c.CacheDir == "" {
		c.CacheDir = c.defaultCacheDir()
	}
	if c.AURCache == "" && c.CacheDir != "" {
		c.AURCache = filepath.Join(c.CacheDir, constants.AURCacheDir, constants.AURCacheFile)
	}

	// Validate
	if strings.ContainsAny(c.Manager, " \t\n") || strings.ContainsAny(c.Registry, " \t\n") {
		return ErrInvalidManager
	}
	if !c.validLogLevel() {
		return ErrInvalidLogLevel
	}

	return nil
}

// defaultCacheDir follows the XDG base directory spec the way paru does
func (c *Config) defaultCacheDir() string {
	if xdg := os.Getenv(EnvXDGCacheHome); xdg != "" {
		return xdg
	}
	if c.HomeDir == "" {
		return ""
	}
	return filepath.Join(c.HomeDir, ".cache")
}

func (c *Config) validLogLevel() bool {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	for _, l := range validLogLevels {
		if level == l {
			return true
		}
	}
	return false
}
