package cmd

import (
	"github.com/spf13/cobra"
)

var flagTable bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals per category and overall",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&flagTable, "table", "t", false, "Render as a table with each category's share")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := resolve(cmd)
	if err != nil {
		return err
	}
	svc, _, _ := s.service(cmd, nil)
	if flagTable {
		return svc.Breakdown()
	}
	return svc.Summary()
}
