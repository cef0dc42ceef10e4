package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)
	require.NotNil(t, mgr)

	assert.Equal(t, configPath, mgr.ConfigPath())
}

func TestManager_GetDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	assert.Equal(t, 0.75, mgr.Get("security.auto_block_threshold"))
	assert.Equal(t, false, mgr.Get("classifier.enabled"))
	assert.Equal(t, 90, mgr.Get("storage.retention_days"))
	assert.Equal(t, "auto", mgr.Get("display.colors"))
	assert.Nil(t, mgr.Get("does.not.exist"))
}

func TestManager_SetPersists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	err = mgr.Set("security.auto_block_threshold", 0.9)
	require.NoError(t, err)

	// The file should exist and a fresh manager should see the value.
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	mgr2, err := NewManager(configPath)
	require.NoError(t, err)
	assert.Equal(t, 0.9, mgr2.Get("security.auto_block_threshold"))
}

func TestManager_SetCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "dir", "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	err = mgr.Set("classifier.enabled", true)
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	assert.NoError(t, err)
}

func TestManager_Reset(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	err = mgr.Set("storage.retention_days", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, mgr.Get("storage.retention_days"))

	err = mgr.Reset()
	require.NoError(t, err)

	// File is gone and defaults are back.
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 90, mgr.Get("storage.retention_days"))
}

func TestManager_ResetMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	// Resetting when no file was ever written must not error.
	err = mgr.Reset()
	assert.NoError(t, err)
}

func TestManager_AllSettings(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	settings := mgr.AllSettings()
	require.NotEmpty(t, settings)

	assert.Contains(t, settings, "security")
	assert.Contains(t, settings, "classifier")
	assert.Contains(t, settings, "output")
	assert.Contains(t, settings, "storage")
	assert.Contains(t, settings, "display")
}

func TestManager_HasKey(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	mgr, err := NewManager(configPath)
	require.NoError(t, err)

	assert.True(t, mgr.HasKey("security.auto_block_threshold"))
	assert.True(t, mgr.HasKey("output.allowed_domains"))
	assert.False(t, mgr.HasKey("nonexistent.key"))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{"true bool", "true", true},
		{"false bool", "false", false},
		{"integer", "800", 800},
		{"float threshold", "0.75", 0.75},
		{"plain string", "always", "always"},
		{"array", "[example.com, acme-shop.com]", []string{"example.com", "acme-shop.com"}},
		{"single element array", "[example.com]", []string{"example.com"}},
		{"string with dots", "classify.internal", "classify.internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseValue(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
