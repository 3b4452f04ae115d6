package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssval/internal/sheet"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render value sheets to CSS custom properties",
	Long: `Discover value-sheet files, build every definition through the
cssval builders, and emit the result as CSS custom-property rules.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringSlice("sheets", nil, "Glob patterns for value-sheet files")
	f.String("out", "", "Output file (default: stdout)")
	f.String("selector", ":root", "Selector for sheets without their own")
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg := buildRenderConfig()

	sheets, stats, err := loadSheets(cfg)
	if err != nil {
		return err
	}

	doc, err := sheet.Document(sheets, cfg.Selector)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if cfg.Out != "" {
		if err := os.WriteFile(cfg.Out, []byte(doc), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Out, err)
		}
		if !cfg.Quiet {
			fmt.Printf("Wrote %s (%d sheets, %d skipped)\n", cfg.Out, stats.FilesScanned, stats.FilesSkipped)
		}
		return nil
	}

	if !cfg.Quiet {
		fmt.Print(doc)
	}
	return nil
}

// loadSheets discovers and loads sheet files per the resolved config.
func loadSheets(cfg renderConfig) ([]*sheet.Sheet, sheet.ScanStats, error) {
	files, stats, err := sheet.Discover(cfg.Sheets)
	if err != nil {
		return nil, stats, fmt.Errorf("scanning sheets: %w", err)
	}
	if len(files) == 0 {
		return nil, stats, fmt.Errorf("no sheet files match %v", cfg.Sheets)
	}

	if cfg.Verbose && !cfg.Quiet {
		fmt.Printf("Found %d sheet files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	sheets, err := sheet.LoadAll(files)
	if err != nil {
		return nil, stats, err
	}
	return sheets, stats, nil
}
