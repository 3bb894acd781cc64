package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/theirongolddev/expenses/internal/cli"
	"github.com/theirongolddev/expenses/internal/config"
	"github.com/theirongolddev/expenses/internal/expense"
	applog "github.com/theirongolddev/expenses/internal/log"
	"github.com/theirongolddev/expenses/internal/menu"
	"github.com/theirongolddev/expenses/internal/prompt"
	"github.com/theirongolddev/expenses/internal/store"
	"github.com/theirongolddev/expenses/internal/theme"

	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "expenses",
	Short:        "Personal expense tracker",
	Long:         "Record, list, delete and summarize expenses kept in a CSV file.",
	SilenceUsage: true,
	RunE:         runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Expense CSV file (default $EXPENSES_FILE, config, or ./expenses.csv)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// session is the resolved state shared by all commands.
type session struct {
	cfg        config.Config
	dataFile   string
	dataSource config.Source
	logger     *slog.Logger
}

// resolve loads .env and the config file, sets up logging and picks the
// data file.
func resolve(cmd *cobra.Command) (*session, error) {
	config.LoadEnvFile()

	logCfg := applog.DefaultConfig()
	if flagVerbose {
		logCfg.Level = slog.LevelDebug
	}
	logger := applog.Setup(cmd.ErrOrStderr(), logCfg)

	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, err
	}

	path, src := config.DataFile(flagFile, cfg)
	logger.Debug("resolved data file", "path", path, "source", string(src))

	return &session{cfg: cfg, dataFile: path, dataSource: src, logger: logger}, nil
}

// service builds the expense operations for cmd's streams.
func (s *session) service(cmd *cobra.Command, p *prompt.Prompter) (*expense.Service, *store.Store, *cli.Renderer) {
	out := cmd.OutOrStdout()
	r := cli.NewRenderer(out, theme.ByName(s.cfg.Appearance.Theme))
	st := store.New(s.dataFile)
	svc := expense.New(st, p, out, expense.WithRenderer(r), expense.WithLogger(s.logger))
	return svc, st, r
}

func runMenu(cmd *cobra.Command, _ []string) error {
	s, err := resolve(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)
	svc, st, r := s.service(cmd, p)

	return menu.New(svc, p, out, r, st.EnsureInitialized, s.logger).Run(cmd.Context())
}
