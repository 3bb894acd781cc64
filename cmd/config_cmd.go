// Package cmd implements the expenses CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/expenses/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	s, err := resolve(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists(config.Path()) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data file: %s (%s)\n", s.dataFile, s.dataSource)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", s.cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `expenses setup` to reconfigure.")
	return nil
}
