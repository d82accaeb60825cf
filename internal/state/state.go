// Package state wires the loaded configuration and the open note store
// together for command constructors.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/qnote/qnote/internal/config"
	"github.com/qnote/qnote/internal/store"
)

// State carries everything a command needs to run.
type State struct {
	Config     *config.Config
	ConfigPath string
	Store      *store.Store
}

// NewState loads the configuration and opens the note store. The --config
// and --db flags (bound through viper) override the defaults.
func NewState() (*State, error) {
	configPath := viper.GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath := viper.GetString("db")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	if dbPath == "" {
		dbPath, err = config.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	if err := ensureParentDir(dbPath); err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath, store.Pragmas{
		WAL:         cfg.Database.WALMode,
		CacheSizeKB: cfg.Database.CacheSizeKB,
		Synchronous: cfg.Database.Synchronous,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &State{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      s,
	}, nil
}

func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// Close releases the store.
func (s *State) Close() error {
	if s.Store != nil {
		return s.Store.Close()
	}
	return nil
}
