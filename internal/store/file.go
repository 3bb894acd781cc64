// Package store persists expenses in a CSV file with a fixed header row.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/expenses/internal/model"
)

var (
	// ErrNotFound is returned by LoadAll when the backing file does not exist.
	ErrNotFound = errors.New("expense file not found")
	// ErrEmpty is returned by LoadAll when the file holds only the header.
	ErrEmpty = errors.New("no expenses recorded")
	// ErrMalformed is wrapped by MalformedRowError.
	ErrMalformed = errors.New("malformed expense row")
)

// MalformedRowError reports a data row that cannot be read back.
type MalformedRowError struct {
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *MalformedRowError) Unwrap() error { return ErrMalformed }

// Store owns the backing CSV file.
type Store struct {
	path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates the backing file containing only the header
// row. A zero-length file gets the header too; any other existing file is
// left untouched.
func (s *Store) EnsureInitialized() error {
	if info, err := os.Stat(s.path); err == nil {
		if info.Size() > 0 {
			return nil
		}
		f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening expense file: %w", err)
		}
		return writeRows(f, [][]string{model.Header})
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking expense file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating expense file: %w", err)
	}
	return writeRows(f, [][]string{model.Header})
}

// LoadAll reads every data row. It returns ErrNotFound if the file is
// absent and ErrEmpty if it holds nothing but the header.
func (s *Store) LoadAll() ([]model.Expense, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("opening expense file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var expenses []model.Expense
	for header := true; ; header = false {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedRowError{Line: perr.Line, Reason: perr.Err.Error()}
			}
			return nil, fmt.Errorf("reading expense file: %w", err)
		}
		if header {
			continue
		}
		e, err := parseRow(row)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, &MalformedRowError{Line: line, Reason: err.Error()}
		}
		expenses = append(expenses, e)
	}

	if len(expenses) == 0 {
		return nil, ErrEmpty
	}
	return expenses, nil
}

// Append writes one record to the end of the file.
func (s *Store) Append(e model.Expense) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening expense file: %w", err)
	}
	return writeRows(f, [][]string{e.Fields()})
}

// OverwriteAll replaces the file content with the header followed by
// expenses in order. The new content is written to a temporary file in the
// same directory and renamed into place, so an interrupted write leaves the
// previous file intact.
func (s *Store) OverwriteAll(expenses []model.Expense) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".expenses-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }() // no-op after a successful rename

	rows := make([][]string, 0, len(expenses)+1)
	rows = append(rows, model.Header)
	for _, e := range expenses {
		rows = append(rows, e.Fields())
	}
	if err := writeRows(tmp, rows); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing expense file: %w", err)
	}
	return nil
}

// writeRows writes rows through a csv.Writer and closes f on every path.
func writeRows(f *os.File, rows [][]string) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing expense file: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing expense file: %w", err)
	}
	return nil
}

func parseRow(row []string) (model.Expense, error) {
	if len(row) != len(model.Header) {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", len(model.Header), len(row))
	}
	amount, err := decimal.NewFromString(row[3])
	if err != nil || !model.AmountInRange(amount) {
		return model.Expense{}, fmt.Errorf("invalid amount %q", row[3])
	}
	return model.Expense{
		Date:        row[0],
		Description: row[1],
		Category:    row[2],
		Amount:      amount,
	}, nil
}
