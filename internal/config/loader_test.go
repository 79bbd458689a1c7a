package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable homedir caching to allow tests to change HOME
	homedir.DisableCache = true
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()

	assert.NotNil(t, loader)
	assert.NotNil(t, loader.viper)
}

func TestLoader_SetDefault(t *testing.T) {
	loader := NewLoader()

	loader.SetDefault("test-key", "default-value")
	result := loader.GetString("test-key")

	assert.Equal(t, "default-value", result)
}

func TestLoader_GetBool(t *testing.T) {
	loader := NewLoader()

	t.Run("returns true", func(t *testing.T) {
		loader.SetDefault("bool-true", true)
		result := loader.GetBool("bool-true")
		assert.True(t, result)
	})

	t.Run("returns false", func(t *testing.T) {
		loader.SetDefault("bool-false", false)
		result := loader.GetBool("bool-false")
		assert.False(t, result)
	})
}

func TestLoader_BindFlag(t *testing.T) {
	loader := NewLoader()

	cmd := &cobra.Command{}
	cmd.Flags().String("test-flag", "default", "test flag")

	flag := cmd.Flags().Lookup("test-flag")
	require.NotNil(t, flag)

	err := loader.BindFlag("test-flag", flag)
	assert.NoError(t, err)
}

func TestLoader_Settings(t *testing.T) {
	loader := NewLoader()

	loader.SetDefault("verbose", true)
	loader.SetDefault("pager", "less -R")
	loader.SetDefault("color", "never")

	cfg := loader.Settings()

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "less -R", cfg.Pager)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoader_InjectToCommand(t *testing.T) {
	t.Run("injects config value to unchanged flag", func(t *testing.T) {
		loader := NewLoader()
		loader.SetDefault("inject-flag", "config-value")

		cmd := &cobra.Command{}
		cmd.Flags().String("inject-flag", "default", "test flag")

		// Flag not changed (default value)
		loader.InjectToCommand(cmd)

		result, _ := cmd.Flags().GetString("inject-flag")
		assert.Equal(t, "config-value", result)
	})

	t.Run("does not override changed flag", func(t *testing.T) {
		loader := NewLoader()
		loader.SetDefault("override-flag", "config-value")

		cmd := &cobra.Command{}
		cmd.Flags().String("override-flag", "default", "test flag")

		// Simulate flag being changed via CLI
		cmd.Flags().Set("override-flag", "cli-value")

		loader.InjectToCommand(cmd)

		result, _ := cmd.Flags().GetString("override-flag")
		assert.Equal(t, "cli-value", result) // CLI value preserved
	})
}

func TestLoader_Initialize(t *testing.T) {
	t.Run("loads config from temp directory", func(t *testing.T) {
		// Save and restore the home directory for this subtest
		originalHome := os.Getenv("HOME")
		tmpDir := t.TempDir()
		os.Setenv("HOME", tmpDir)
		defer os.Setenv("HOME", originalHome)

		// Create config file
		configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)
		content := `verbose: true
pager: less -R
color: never
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

		loader := NewLoader()
		err := loader.Initialize()
		require.NoError(t, err)

		cfg := loader.Settings()
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "less -R", cfg.Pager)
		assert.Equal(t, "never", cfg.Color)
	})

	t.Run("fills defaults for missing keys", func(t *testing.T) {
		originalHome := os.Getenv("HOME")
		tmpDir := t.TempDir()
		os.Setenv("HOME", tmpDir)
		defer os.Setenv("HOME", originalHome)

		configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)
		require.NoError(t, os.WriteFile(configPath, []byte("verbose: true\n"), 0600))

		loader := NewLoader()
		require.NoError(t, loader.Initialize())

		cfg := loader.Settings()
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "", cfg.Pager)
		assert.Equal(t, "auto", cfg.Color)
	})

	t.Run("creates default config when missing", func(t *testing.T) {
		// Save and restore the home directory for this subtest
		originalHome := os.Getenv("HOME")
		tmpDir := t.TempDir()
		os.Setenv("HOME", tmpDir)
		defer os.Setenv("HOME", originalHome)

		configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)

		// Verify config doesn't exist
		_, err := os.Stat(configPath)
		require.True(t, os.IsNotExist(err))

		loader := NewLoader()
		err = loader.Initialize()
		require.NoError(t, err)

		// Verify config was created
		_, err = os.Stat(configPath)
		assert.NoError(t, err)
	})
}

func TestLoader_Initialize_InvalidConfig(t *testing.T) {
	t.Run("returns error for invalid YAML", func(t *testing.T) {
		originalHome := os.Getenv("HOME")
		tmpDir := t.TempDir()
		os.Setenv("HOME", tmpDir)
		defer os.Setenv("HOME", originalHome)

		// Create invalid config file
		configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)
		content := `{ invalid yaml
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

		loader := NewLoader()
		err := loader.Initialize()
		assert.Error(t, err)
	})
}
