package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the analysis policies and output settings. Every field has a
// working default; a TOML file at ~/.config/chatstat/config.toml overrides
// them, and CLI flags override both.
type Config struct {
	TopN              int      `toml:"top_n"`
	UseStopwords      bool     `toml:"use_stopwords"`
	Stopwords         []string `toml:"stopwords"`
	CountNotices      bool     `toml:"count_notices"`
	JoinContinuations bool     `toml:"join_continuations"`
	OutputDir         string   `toml:"output_dir"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TopN:              10,
		JoinContinuations: true,
		OutputDir:         filepath.Join(home, ".local", "share", "chatstat"),
	}

	cfgPath := filepath.Join(home, ".config", "chatstat", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.OutputDir = expandHome(cfg.OutputDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
