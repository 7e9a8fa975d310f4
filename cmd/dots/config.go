package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective board configuration",
	Long: `Print the board configuration as YAML, after the search order
--config, ~/.dots/configs/dots.yaml, ./configs/dots.yaml, built-in defaults.

Use --defaults to print the commented built-in file, a starting point for
your own config.

Examples:
  dots config
  dots config --defaults > ~/.dots/configs/dots.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.GetDefaultYAML()))
		return nil
	}

	dc, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if _, err := dc.Core(); err != nil {
		return err
	}

	data, err := config.Marshal(dc)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
	return nil
}
