package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config holds the console settings read from the TOML file.
type Config struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
	HistoryFile        string `toml:"history_file"`
	LogLevel           string `toml:"log_level"`
	LogFile            string `toml:"log_file"`
	NoColor            bool   `toml:"no_color"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:             "quill> ",
		ContinuationPrompt: "> ",
		HistoryFile:        "~/.quill_history",
		LogLevel:           "warn",
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() error {
	def := DefaultConfig()
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	if c.ContinuationPrompt == "" {
		c.ContinuationPrompt = def.ContinuationPrompt
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	c.HistoryFile = expandHome(c.HistoryFile)
	c.LogFile = expandHome(c.LogFile)
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
