// Package expense implements the add, view, delete and summary operations
// on top of the record store.
package expense

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/expenses/internal/cli"
	"github.com/theirongolddev/expenses/internal/model"
	"github.com/theirongolddev/expenses/internal/pipeline"
	"github.com/theirongolddev/expenses/internal/prompt"
	"github.com/theirongolddev/expenses/internal/store"
	"github.com/theirongolddev/expenses/internal/theme"
)

// Store is the persistence the operations need.
type Store interface {
	LoadAll() ([]model.Expense, error)
	Append(e model.Expense) error
	OverwriteAll(expenses []model.Expense) error
}

// Service runs expense operations, reading answers from a Prompter and
// writing all user-facing output, errors included, to one stream.
type Service struct {
	store  Store
	prompt *prompt.Prompter
	out    io.Writer
	render *cli.Renderer
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for the default date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRenderer sets the renderer used for tables and messages.
func WithRenderer(r *cli.Renderer) Option {
	return func(s *Service) { s.render = r }
}

// New returns a Service over st. p may be nil for read-only use.
func New(st Store, p *prompt.Prompter, out io.Writer, opts ...Option) *Service {
	s := &Service{
		store:  st,
		prompt: p,
		out:    out,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.render == nil {
		s.render = cli.NewRenderer(out, theme.FlexokiDark)
	}
	return s
}

// ParseAmount accepts any decimal number, signed or not, whose absolute
// value is below model.MaxAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || !model.AmountInRange(d) {
		return decimal.Decimal{}, prompt.Reject("Invalid amount. Please enter a numeric value.")
	}
	return d, nil
}

// Add asks for one expense and appends it. A blank date means today.
func (s *Service) Add() error {
	date, err := s.prompt.Ask("Enter the date (YYYY-MM-DD) [Leave blank for today]: ")
	if err != nil {
		return err
	}
	if date == "" {
		date = s.now().Format(model.DateLayout)
	}
	description, err := s.prompt.Ask("Enter the description: ")
	if err != nil {
		return err
	}
	category, err := s.prompt.Ask("Enter the category: ")
	if err != nil {
		return err
	}
	amount, err := prompt.Until(s.prompt, "Enter the amount: ", ParseAmount)
	if err != nil {
		return err
	}

	e := model.Expense{
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
	}
	if err := s.store.Append(e); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	s.logger.Debug("expense added", "date", e.Date, "category", e.Category, "amount", e.FormattedAmount())
	fmt.Fprintln(s.out, s.render.Success("Expense added successfully."))
	return nil
}

// View prints the expense listing.
func (s *Service) View() error {
	expenses, ok, err := s.load("No expenses recorded.")
	if !ok {
		return err
	}
	fmt.Fprint(s.out, s.render.RenderExpenses(expenses))
	return nil
}

// Delete shows the listing, asks for a 1-based index until it is in
// range, and rewrites the file without that expense.
func (s *Service) Delete() error {
	expenses, ok, err := s.load("No expenses to delete.")
	if !ok {
		return err
	}
	fmt.Fprint(s.out, s.render.RenderExpenses(expenses))

	n := len(expenses)
	index, err := prompt.Until(s.prompt, "Enter the index of the expense to delete: ", func(answer string) (int, error) {
		i, err := strconv.Atoi(answer)
		if err != nil {
			return 0, prompt.Reject("Invalid input. Please enter a numeric value.")
		}
		if i < 1 || i > n {
			return 0, prompt.Reject("Please enter a number between 1 and %d.", n)
		}
		return i, nil
	})
	if err != nil {
		return err
	}

	removed := expenses[index-1]
	remaining := make([]model.Expense, 0, n-1)
	remaining = append(remaining, expenses[:index-1]...)
	remaining = append(remaining, expenses[index:]...)
	if err := s.store.OverwriteAll(remaining); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	s.logger.Debug("expense deleted", "index", index, "remaining", len(remaining))
	fmt.Fprintf(s.out, "Deleted expense: %s\n", strings.Join(removed.Fields(), ", "))
	return nil
}

// Summary prints per-category subtotals and the grand total.
func (s *Service) Summary() error {
	expenses, ok, err := s.load("No expenses recorded.")
	if !ok {
		return err
	}
	fmt.Fprint(s.out, s.render.RenderSummary(pipeline.Summarize(expenses)))
	return nil
}

// Breakdown prints the summary as a bordered table with each category's
// share of the total.
func (s *Service) Breakdown() error {
	expenses, ok, err := s.load("No expenses recorded.")
	if !ok {
		return err
	}
	stats := pipeline.Summarize(expenses)

	rows := make([][]string, 0, len(stats.Categories)+2)
	for _, c := range stats.Categories {
		rows = append(rows, []string{c.Category, cli.FormatMoney(c.Amount), cli.FormatShare(c.Amount, stats.Total)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		fmt.Sprintf("Total (%s expenses)", cli.FormatNumber(int64(stats.Count))),
		cli.FormatMoney(stats.Total),
		"",
	})

	fmt.Fprint(s.out, s.render.RenderTable(cli.Table{
		Title:   "Expenses by category",
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}))
	return nil
}

// load reads all expenses. When there is nothing to show it prints the
// matching message and reports ok=false with a nil error.
func (s *Service) load(emptyMsg string) ([]model.Expense, bool, error) {
	expenses, err := s.store.LoadAll()
	switch {
	case err == nil:
		return expenses, true, nil
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(s.out, s.render.Muted("No expenses found."))
		return nil, false, nil
	case errors.Is(err, store.ErrEmpty):
		fmt.Fprintln(s.out, s.render.Muted(emptyMsg))
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("loading expenses: %w", err)
	}
}
