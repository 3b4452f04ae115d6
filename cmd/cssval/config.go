package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// renderConfig holds the resolved options shared by render and check.
type renderConfig struct {
	Sheets   []string // Glob patterns for sheet files
	Out      string   // Output file; empty writes to stdout
	Selector string   // Default selector for sheets without their own
	Verbose  bool
	Quiet    bool
	Color    bool
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssval.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags have the highest precedence — only flags that were
	// explicitly set override earlier providers.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (CSSVAL_* prefix):
	// CSSVAL_RENDER_SELECTOR -> render.selector
	// CSSVAL_CHECK_STRICT -> check.strict
	// CSSVAL_VERBOSE -> verbose
	if err := k.Load(env.Provider("CSSVAL_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSVAL_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRenderConfig constructs the resolved render options from koanf state.
func buildRenderConfig() renderConfig {
	cfg := renderConfig{
		Out:      getStringWithFallback("out", "render.out", ""),
		Selector: getStringWithFallback("selector", "render.selector", ":root"),
		Verbose:  getBoolWithFallback("verbose", "verbose", false),
		Quiet:    getBoolWithFallback("quiet", "quiet", false),
		Color:    getBoolWithFallback("color", "color", false),
	}

	// Sheet patterns: check flag key first, then config key
	if sheets := k.Strings("sheets"); len(sheets) > 0 {
		cfg.Sheets = sheets
	} else if sheets := k.Strings("render.sheets"); len(sheets) > 0 {
		cfg.Sheets = sheets
	} else {
		cfg.Sheets = []string{"**/*.cssval.yaml"}
	}

	return cfg
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
