// Package menu drives the interactive expense tracker loop.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/theirongolddev/expenses/internal/cli"
	"github.com/theirongolddev/expenses/internal/prompt"
)

// Operations are the actions reachable from the menu.
type Operations interface {
	Add() error
	View() error
	Delete() error
	Summary() error
}

const (
	farewell      = "Exiting Expense Tracker. Goodbye!"
	invalidChoice = "Invalid choice. Please enter a number between 1 and 5."
)

var entries = []string{
	"1. Add Expense",
	"2. View Expenses",
	"3. Delete Expense",
	"4. Show Summary",
	"5. Exit",
}

// Menu is the single-state loop: show choices, read one, dispatch, repeat.
type Menu struct {
	ops    Operations
	prompt *prompt.Prompter
	out    io.Writer
	render *cli.Renderer
	setup  func() error
	logger *slog.Logger
}

// New returns a Menu. setup runs once before the first prompt and may be nil.
func New(ops Operations, p *prompt.Prompter, out io.Writer, r *cli.Renderer, setup func() error, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Menu{ops: ops, prompt: p, out: out, render: r, setup: setup, logger: logger}
}

// Run loops until the user picks Exit or input ends. Operation errors
// are reported on the output stream and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	if m.setup != nil {
		if err := m.setup(); err != nil {
			return fmt.Errorf("initializing expense file: %w", err)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show()
		choice, err := m.prompt.Ask("Enter your choice (1-5): ")
		if err != nil {
			return m.stop(err)
		}

		var op func() error
		switch choice {
		case "1":
			op = m.ops.Add
		case "2":
			op = m.ops.View
		case "3":
			op = m.ops.Delete
		case "4":
			op = m.ops.Summary
		case "5":
			fmt.Fprintln(m.out, farewell)
			return nil
		default:
			fmt.Fprintln(m.out, m.render.Warn(invalidChoice))
			continue
		}

		if err := op(); err != nil {
			if errors.Is(err, io.EOF) {
				return m.stop(err)
			}
			m.logger.Warn("operation failed", "choice", choice, "error", err)
			fmt.Fprintln(m.out, m.render.Error("Error: "+err.Error()))
		}
	}
}

func (m *Menu) show() {
	fmt.Fprintln(m.out, m.render.Title("Expense Tracker Menu:"))
	for _, e := range entries {
		fmt.Fprintln(m.out, e)
	}
}

// stop ends the loop on a read error. Exhausted input exits like choice 5.
func (m *Menu) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out, farewell)
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}
