package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssval.yaml config file",
	Long:  `Create a .cssval.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssval.yaml"); err == nil && !force {
			return fmt.Errorf(".cssval.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssval.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssval.yaml")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

const defaultConfig = `# cssval configuration
# Docs: https://github.com/yacobolo/cssval

# Shared settings
verbose: false

# Render settings
render:
  sheets:
    - "**/*.cssval.yaml"
  out: ""              # empty = stdout
  selector: ":root"

# Check settings
check:
  strict: false
`
