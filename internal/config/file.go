package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// ErrConfigExists is returned when the default config file is already present
var ErrConfigExists = errors.New("config file already exists")

// FileConfig represents the configuration file structure
type FileConfig struct {
	// Package manager executable: paru, yay, or pacman (default: auto-detect)
	Manager string `yaml:"manager,omitempty"`

	// System package database tool
	Registry string `yaml:"registry,omitempty"`

	// Path to the cached AUR package name list
	AURCache string `yaml:"aur_cache,omitempty"`

	// Logging settings
	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`

	// Packages that remove and purge refuse, e.g. "glibc" or "Purge(linux*)"
	Protect []string `yaml:"protect,omitempty"`

	// Presentation settings
	RenderHelp     *bool `yaml:"render_help,omitempty"`
	MaxSuggestions *int  `yaml:"max_suggestions,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority).
// The working directory is never searched: the file names the executables
// archie launches, often under sudo.
func GetConfigPaths(homeDir string) []string {
	var paths []string

	// 1. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "archie", ConfigFileName))
	}

	// 2. Home directory, when XDG_CONFIG_HOME points elsewhere
	if homeDir != "" {
		path := filepath.Join(homeDir, ".config", "archie", ConfigFileName)
		if len(paths) == 0 || paths[0] != path {
			paths = append(paths, path)
		}
	}

	return paths
}

// LoadConfigFile attempts to load configuration from the first existing file
func LoadConfigFile(homeDir string) (*FileConfig, error) {
	for _, path := range GetConfigPaths(homeDir) {
		if _, err := os.Stat(path); err == nil {
			return loadConfigFromPath(path)
		}
	}

	// No config file found, return empty config
	return &FileConfig{}, nil
}

// loadConfigFromPath loads config from a specific path
func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyFileConfig applies file configuration to the main Config
// File config has lower priority than environment variables and CLI flags
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if c.Manager == "" && fc.Manager != "" {
		c.Manager = fc.Manager
	}
	if c.Registry == "" && fc.Registry != "" {
		c.Registry = fc.Registry
	}
	if c.AURCache == "" && fc.AURCache != "" {
		c.AURCache = expandHome(fc.AURCache, c.HomeDir)
	}
	if c.LogLevel == "" && fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if c.LogFile == "" && fc.LogFile != "" {
		c.LogFile = expandHome(fc.LogFile, c.HomeDir)
	}
	if c.Protect == nil && fc.Protect != nil {
		c.Protect = fc.Protect
	}
	if fc.RenderHelp != nil {
		c.RenderHelp = *fc.RenderHelp
	}
	if fc.MaxSuggestions != nil && c.MaxSuggestions < 0 {
		c.MaxSuggestions = *fc.MaxSuggestions
	}
}

// expandHome replaces a leading ~/ with homeDir
func expandHome(path, homeDir string) string {
	if homeDir == "" || len(path) < 2 || path[:2] != "~/" {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// CreateDefaultConfigFile creates a default config file at the user config directory
func CreateDefaultConfigFile(homeDir string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		if homeDir == "" {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "archie")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w at %s", ErrConfigExists, path)
	}

	defaultConfig := `# Archie Configuration
# Location: ~/.config/archie/config.yaml

# Package manager: paru, yay, or pacman (default: first one found, in that order)
# manager: paru

# Tool used to list repository packages and orphans
# registry: pacman

# Cached AUR package names used for completion
# aur_cache: ~/.cache/paru/packages.aur

# Logging: debug, info, warn, error, or none
# log_level: none
# log_file: ~/.cache/archie/archie.log

# Packages that remove (r) and purge (p) refuse to touch
# protect:
#   - glibc
#   - base
#   - Purge(linux*)

# Render the help screen as markdown
# render_help: true

# Completion candidates shown per keystroke (0 = unlimited)
# max_suggestions: 500
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
