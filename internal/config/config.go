package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string       `yaml:"database_path"`
	Server       ServerConfig `yaml:"server"`
	Admin        AdminConfig  `yaml:"admin"`
	KeyMappings  KeyMappings  `yaml:"key_mappings"`
	ColorScheme  ColorScheme  `yaml:"theme"`
}

// ServerConfig configures the liveness server
type ServerConfig struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// AdminConfig configures the single admin account
type AdminConfig struct {
	Username        string `yaml:"username"`
	DefaultPassword string `yaml:"default_password"`
	BcryptCost      int    `yaml:"bcrypt_cost"`
}

const (
	defaultListenAddr = "127.0.0.1:8080"
	defaultUsername   = "admin"
	defaultPassword   = "admin"
	defaultBcryptCost = 10
)

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.mergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides
func applyEnv(config *Config) {
	if path := os.Getenv("KANBAN_DB_PATH"); path != "" {
		config.DatabasePath = path
	}
	if addr := os.Getenv("KANBAN_LISTEN_ADDR"); addr != "" {
		config.Server.ListenAddr = addr
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadThemeFile(config)
		applyEnv(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields defaults.
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults.
// An empty DatabasePath is left for the storage layer to resolve.
func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}
	if c.Admin.Username == "" {
		c.Admin.Username = defaultUsername
	}
	if c.Admin.DefaultPassword == "" {
		c.Admin.DefaultPassword = defaultPassword
	}
	if c.Admin.BcryptCost == 0 {
		c.Admin.BcryptCost = defaultBcryptCost
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// mergeFrom overrides colors that are set in other
func (c *ColorScheme) mergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Create, other.Create)
	merge(&c.Delete, other.Delete)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.TaskBorder, other.TaskBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Todo, other.Todo)
	merge(&c.InProgress, other.InProgress)
	merge(&c.Done, other.Done)
}
