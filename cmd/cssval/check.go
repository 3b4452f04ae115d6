package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssval/internal/sheet"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every sheet value tokenizes as CSS",
	Long: `Render every value sheet and run the produced values through a CSS
tokenizer. Reports values that contain bad strings, bad urls, or stop
the lexer early. Tokenization only; no property-level validation.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("sheets", nil, "Glob patterns for value-sheet files")
	f.Bool("strict", false, "Exit 1 when any value fails (CI mode)")
}

func runCheck(_ *cobra.Command, _ []string) error {
	cfg := buildRenderConfig()
	strict := getBoolWithFallback("strict", "check.strict", false)

	sheets, _, err := loadSheets(cfg)
	if err != nil {
		return err
	}

	issues, err := sheet.CheckSheets(sheets)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	total := 0
	for _, s := range sheets {
		total += len(s.Values)
	}

	if !cfg.Quiet {
		for _, issue := range issues {
			loc := sheet.RenderStyle(sheet.StyleCyan, issue.Source, cfg.Color)
			name := sheet.RenderStyle(sheet.StyleRed, "--"+issue.Name, cfg.Color)
			fmt.Printf("%s: %s: %v\n", loc, name, issue.Err)
			fmt.Printf("  %s\n", sheet.RenderStyle(sheet.StyleGray, issue.Value, cfg.Color))
		}

		if len(issues) == 0 {
			fmt.Println(sheet.RenderStyle(sheet.StyleGreen,
				fmt.Sprintf("All %d values tokenize cleanly", total), cfg.Color))
		} else {
			fmt.Printf("%d of %d values failed\n", len(issues), total)
		}
	}

	if strict && len(issues) > 0 {
		return fmt.Errorf("%d invalid values", len(issues))
	}
	return nil
}
