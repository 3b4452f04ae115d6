package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssval.yaml")
	configContent := `
verbose: true

render:
  sheets:
    - "styles/**/*.cssval.yaml"
  out: dist/values.css
  selector: ":host"

check:
  strict: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"styles/**/*.cssval.yaml"}, k.Strings("render.sheets"))
	assert.Equal(t, "dist/values.css", k.String("render.out"))
	assert.Equal(t, ":host", k.String("render.selector"))
	assert.True(t, k.Bool("check.strict"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssval.yaml"))

	cfg := buildRenderConfig()
	assert.Equal(t, []string{"**/*.cssval.yaml"}, cfg.Sheets)
	assert.Equal(t, "", cfg.Out)
	assert.Equal(t, ":root", cfg.Selector)
	assert.False(t, cfg.Verbose)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssval.yaml")
	configContent := `
render:
  selector: ":root"
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("CSSVAL_RENDER_SELECTOR", ":host")
	t.Setenv("CSSVAL_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, ":host", k.String("render.selector"))
	assert.True(t, k.Bool("check.strict"))
}

func TestBuildRenderConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssval.yaml")
	configContent := `
render:
  sheets:
    - "a/**/*.yaml"
    - "b/**/*.yaml"
  out: out.css
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	cfg := buildRenderConfig()
	assert.Equal(t, []string{"a/**/*.yaml", "b/**/*.yaml"}, cfg.Sheets)
	assert.Equal(t, "out.css", cfg.Out)
	assert.Equal(t, ":root", cfg.Selector)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssval.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "render:")
	assert.Contains(t, string(data), "check:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssval.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssval.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssval.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "render:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}
