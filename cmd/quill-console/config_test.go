package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quill.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "quill> ", cfg.Prompt)
	assert.Equal(t, "> ", cfg.ContinuationPrompt)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.NoColor)

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, ".quill_history"), cfg.HistoryFile)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
prompt = "dbg$ "
history_file = "/tmp/h"
log_level = "debug"
no_color = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dbg$ ", cfg.Prompt)
	assert.Equal(t, "> ", cfg.ContinuationPrompt)
	assert.Equal(t, "/tmp/h", cfg.HistoryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "load config")

	_, err = LoadConfig(writeConfig(t, `prompt = `))
	assert.ErrorContains(t, err, "load config")

	_, err = LoadConfig(writeConfig(t, `log_level = "chatty"`))
	assert.ErrorContains(t, err, "invalid log_level")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"

	log := newLogger(cfg, &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("command", "echo").Debug("executed line")
	assert.Contains(t, buf.String(), "executed line")
	assert.Contains(t, buf.String(), "command=echo")
}

func TestNewLoggerFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "info"
	cfg.LogFile = filepath.Join(t.TempDir(), "quill.log")

	var stderr bytes.Buffer
	log := newLogger(cfg, &stderr)
	log.Info("to file")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, stderr.String())
}

func TestFlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, `log_level = "error"`)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(os.Stdin, &stdout, &stderr)
	cmd.SetArgs([]string{"-c", path, "--log-level", "bogus", "-e", "echo x"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "invalid log_level")
	assert.Empty(t, stdout.String())
}
