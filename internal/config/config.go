// Package config loads and persists the qnote configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UIConfig controls the TUI layout and status behavior.
type UIConfig struct {
	// SplitRatio is the list pane share of the total width (0.1-0.9).
	SplitRatio float64 `yaml:"split_ratio"`
	// MessageTicks is the number of keypresses before a status message
	// disappears.
	MessageTicks int `yaml:"message_ticks"`
	// PreviewScrollStep is the number of lines scrolled per preview
	// scroll keypress.
	PreviewScrollStep int `yaml:"preview_scroll_step"`
}

// EditorConfig controls the external editor round trip.
type EditorConfig struct {
	// Default is used when $EDITOR is unset. Empty falls back to vi.
	Default string `yaml:"default"`
	// SecureTempFiles restricts edit temp files to owner read/write.
	SecureTempFiles bool `yaml:"secure_temp_files"`
}

// DatabaseConfig tunes the SQLite store.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	CacheSizeKB int    `yaml:"cache_size_kb"`
	Synchronous string `yaml:"synchronous"`
}

// KeybindingsConfig maps TUI actions to single keys.
type KeybindingsConfig struct {
	Quit       string `yaml:"quit"`
	NewNote    string `yaml:"new_note"`
	Edit       string `yaml:"edit"`
	Delete     string `yaml:"delete"`
	Search     string `yaml:"search"`
	Export     string `yaml:"export"`
	Yank       string `yaml:"yank"`
	Sort       string `yaml:"sort"`
	GotoTop    string `yaml:"goto_top"`
	GotoBottom string `yaml:"goto_bottom"`
	MoveDown   string `yaml:"move_down"`
	MoveUp     string `yaml:"move_up"`
}

// Config is the root of the qnote configuration file.
type Config struct {
	UI          UIConfig          `yaml:"ui"`
	Editor      EditorConfig      `yaml:"editor"`
	Database    DatabaseConfig    `yaml:"database"`
	Keybindings KeybindingsConfig `yaml:"keybindings"`
}

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			SplitRatio:        0.35,
			MessageTicks:      5,
			PreviewScrollStep: 3,
		},
		Editor: EditorConfig{
			SecureTempFiles: true,
		},
		Database: DatabaseConfig{
			WALMode:     true,
			CacheSizeKB: 2000,
			Synchronous: "NORMAL",
		},
		Keybindings: KeybindingsConfig{
			Quit:       "q",
			NewNote:    "n",
			Edit:       "e",
			Delete:     "d",
			Search:     "/",
			Export:     "x",
			Yank:       "y",
			Sort:       "s",
			GotoTop:    "g",
			GotoBottom: "G",
			MoveDown:   "j",
			MoveUp:     "k",
		},
	}
}

// GetConfigPath returns the configuration file location, honoring
// XDG_CONFIG_HOME.
func GetConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qnote", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "qnote", "config.yaml"), nil
}

// DefaultDBPath returns the database location used when the config does
// not name one.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "qnote", "notes.db"), nil
}

// Load reads the configuration from path, writing a default file on first
// run.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (cfg *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects out-of-range values before they reach the TUI.
func (cfg *Config) Validate() error {
	if cfg.UI.SplitRatio < 0.1 || cfg.UI.SplitRatio > 0.9 {
		return fmt.Errorf("ui.split_ratio must be between 0.1 and 0.9, got %v", cfg.UI.SplitRatio)
	}
	if cfg.UI.MessageTicks <= 0 {
		return fmt.Errorf("ui.message_ticks must be greater than 0")
	}
	if cfg.UI.PreviewScrollStep <= 0 {
		return fmt.Errorf("ui.preview_scroll_step must be greater than 0")
	}
	switch cfg.Database.Synchronous {
	case "", "OFF", "NORMAL", "FULL", "EXTRA":
	default:
		return fmt.Errorf("database.synchronous must be OFF, NORMAL, FULL, or EXTRA")
	}
	return nil
}

// EditorCommand resolves the editor to launch: $EDITOR wins, then the
// configured default, then vi.
func (cfg *Config) EditorCommand() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if cfg.Editor.Default != "" {
		return cfg.Editor.Default
	}
	return "vi"
}
