// Package config provides configuration management for gitprompt.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/xvierd/gitprompt/internal/domain"
)

// Supported git backends.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// Config holds all configuration for gitprompt.
type Config struct {
	Backend  string         `mapstructure:"backend"`
	DebugLog string         `mapstructure:"debug_log"`
	Prompt   PromptConfig   `mapstructure:"prompt"`
	Symbols  CategoryConfig `mapstructure:"symbols"`
	Codes    CategoryConfig `mapstructure:"codes"`
	Theme    ThemeConfig    `mapstructure:"theme"`
}

// ThemeConfig holds the colors of the human-facing subcommands. The prompt
// itself only uses the escapes in PromptConfig.
type ThemeConfig struct {
	ColorTitle string `mapstructure:"color_title"`
	ColorDim   string `mapstructure:"color_dim"`
	ColorValue string `mapstructure:"color_value"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle: "#7C6FE0",
		ColorDim:   "#6B7280",
		ColorValue: "#A78BFA",
	}
}

// PromptConfig holds the template and color settings. Empty values take
// the preset of Shell; colors may be names such as "cyan" or raw escapes.
type PromptConfig struct {
	Shell         string `mapstructure:"shell"`
	Template      string `mapstructure:"template"`
	FolderDefault string `mapstructure:"folder_default"`
	FolderColor   string `mapstructure:"folder_color"`
	StatusColor   string `mapstructure:"status_color"`
}

// CategoryConfig holds one value per change category.
type CategoryConfig struct {
	Modified  string `mapstructure:"modified"`
	Added     string `mapstructure:"added"`
	Deleted   string `mapstructure:"deleted"`
	Untracked string `mapstructure:"untracked"`
}

// get returns the value for a category.
func (c CategoryConfig) get(cat domain.Category) string {
	switch cat {
	case domain.CategoryModified:
		return c.Modified
	case domain.CategoryAdded:
		return c.Added
	case domain.CategoryDeleted:
		return c.Deleted
	case domain.CategoryUntracked:
		return c.Untracked
	default:
		return ""
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	table := domain.DefaultCategoryTable()
	symbols := CategoryConfig{}
	codes := CategoryConfig{}
	for _, r := range table {
		switch r.Category {
		case domain.CategoryModified:
			symbols.Modified, codes.Modified = r.Symbol, r.Codes
		case domain.CategoryAdded:
			symbols.Added, codes.Added = r.Symbol, r.Codes
		case domain.CategoryDeleted:
			symbols.Deleted, codes.Deleted = r.Symbol, r.Codes
		case domain.CategoryUntracked:
			symbols.Untracked, codes.Untracked = r.Symbol, r.Codes
		}
	}

	return &Config{
		Backend: BackendCLI,
		Prompt: PromptConfig{
			Shell: string(domain.ShellBash),
		},
		Symbols: symbols,
		Codes:   codes,
		Theme:   DefaultThemeConfig(),
	}
}

// ToPromptConfig builds the domain prompt configuration.
func (c *Config) ToPromptConfig() domain.PromptConfig {
	table := make(domain.CategoryTable, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		table = append(table, domain.CategoryRule{
			Category: cat,
			Codes:    c.Codes.get(cat),
			Symbol:   c.Symbols.get(cat),
		})
	}

	// Validate rejects unknown shells; fall back to bash here.
	shell, err := domain.ParseShell(c.Prompt.Shell)
	if err != nil {
		shell = domain.ShellBash
	}

	pc := domain.PresetPromptConfig(shell)
	pc.Categories = table
	if c.Prompt.Template != "" {
		pc.Template = c.Prompt.Template
	}
	if c.Prompt.FolderDefault != "" {
		pc.FolderDefault = c.Prompt.FolderDefault
	}
	if c.Prompt.FolderColor != "" {
		pc.FolderColor = domain.ColorEscape(shell, c.Prompt.FolderColor)
	}
	if c.Prompt.StatusColor != "" {
		pc.StatusColor = domain.ColorEscape(shell, c.Prompt.StatusColor)
	}
	return pc
}

// Validate checks the backend and the prompt settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCLI, BackendGoGit:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendCLI, BackendGoGit)
	}
	if _, err := domain.ParseShell(c.Prompt.Shell); err != nil {
		return err
	}
	return c.ToPromptConfig().Validate()
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file yields the defaults; it is not created.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes cfg to path, or the default location when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.Set("backend", cfg.Backend)
	v.Set("debug_log", cfg.DebugLog)
	v.Set("prompt.shell", cfg.Prompt.Shell)
	v.Set("prompt.template", cfg.Prompt.Template)
	v.Set("prompt.folder_default", cfg.Prompt.FolderDefault)
	v.Set("prompt.folder_color", cfg.Prompt.FolderColor)
	v.Set("prompt.status_color", cfg.Prompt.StatusColor)
	setCategory(v, "symbols", cfg.Symbols)
	setCategory(v, "codes", cfg.Codes)
	v.Set("theme.color_title", cfg.Theme.ColorTitle)
	v.Set("theme.color_dim", cfg.Theme.ColorDim)
	v.Set("theme.color_value", cfg.Theme.ColorValue)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to get home directory: %w", herr)
		}
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "gitprompt", "config.toml"), nil
}

func setCategory(v *viper.Viper, prefix string, c CategoryConfig) {
	v.Set(prefix+".modified", c.Modified)
	v.Set(prefix+".added", c.Added)
	v.Set(prefix+".deleted", c.Deleted)
	v.Set(prefix+".untracked", c.Untracked)
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("backend", defaults.Backend)
	v.SetDefault("debug_log", defaults.DebugLog)
	v.SetDefault("prompt.shell", defaults.Prompt.Shell)
	v.SetDefault("prompt.template", defaults.Prompt.Template)
	v.SetDefault("prompt.folder_default", defaults.Prompt.FolderDefault)
	v.SetDefault("prompt.folder_color", defaults.Prompt.FolderColor)
	v.SetDefault("prompt.status_color", defaults.Prompt.StatusColor)

	setCategoryDefaults(v, "symbols", defaults.Symbols)
	setCategoryDefaults(v, "codes", defaults.Codes)

	// Theme defaults
	v.SetDefault("theme.color_title", defaults.Theme.ColorTitle)
	v.SetDefault("theme.color_dim", defaults.Theme.ColorDim)
	v.SetDefault("theme.color_value", defaults.Theme.ColorValue)
}

func setCategoryDefaults(v *viper.Viper, prefix string, c CategoryConfig) {
	v.SetDefault(prefix+".modified", c.Modified)
	v.SetDefault(prefix+".added", c.Added)
	v.SetDefault(prefix+".deleted", c.Deleted)
	v.SetDefault(prefix+".untracked", c.Untracked)
}
