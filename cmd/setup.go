package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/expenses/internal/config"
	"github.com/theirongolddev/expenses/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose the expense file and colour theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	s, err := resolve(cmd)
	if err != nil {
		return err
	}
	cfg := s.cfg

	dataFile := cfg.General.DataFile
	themeName := theme.ByName(cfg.Appearance.Theme).Name

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Expense file").
				Description("CSV file holding your expenses. Leave blank for ./"+config.DefaultDataFile+".").
				Placeholder(config.DefaultDataFile).
				Value(&dataFile),
			huh.NewSelect[string]().
				Title("Colour theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeName),
		),
	).WithInput(cmd.InOrStdin()).WithOutput(cmd.OutOrStdout())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup form: %w", err)
	}

	cfg.General.DataFile = strings.TrimSpace(dataFile)
	cfg.Appearance.Theme = themeName

	if err := config.Save(config.Path(), cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `expenses setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
