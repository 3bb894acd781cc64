package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/expenses/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "expenses.csv"))
}

func expense(date, desc, cat, amount string) model.Expense {
	return model.Expense{
		Date:        date,
		Description: desc,
		Category:    cat,
		Amount:      decimal.RequireFromString(amount),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestEnsureInitialized_WritesHeader(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	if got := readFile(t, s.Path()); got != "Date,Description,Category,Amount\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestEnsureInitialized_Idempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureInitialized(); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(expense("2025-06-01", "Lunch", "Food", "10")); err != nil {
		t.Fatal(err)
	}
	before := readFile(t, s.Path())

	if err := s.EnsureInitialized(); err != nil {
		t.Fatalf("second EnsureInitialized: %v", err)
	}
	if after := readFile(t, s.Path()); after != before {
		t.Errorf("content changed:\nbefore %q\nafter  %q", before, after)
	}
}

func TestEnsureInitialized_CreatesParentDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "dir", "expenses.csv"))
	if err := s.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestEnsureInitialized_EmptyFileGetsHeader(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := s.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	if err := s.Append(expense("2025-06-01", "Lunch", "Food", "10")); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Lunch" {
		t.Errorf("got %+v, want one Lunch record", got)
	}
	if content := readFile(t, s.Path()); !strings.HasPrefix(content, "Date,Description,Category,Amount\n") {
		t.Errorf("file does not start with header: %q", content)
	}
}

func TestLoadAll_Sentinels(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.LoadAll(); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file: err = %v, want ErrNotFound", err)
	}

	if err := s.EnsureInitialized(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadAll(); !errors.Is(err, ErrEmpty) {
		t.Errorf("header only: err = %v, want ErrEmpty", err)
	}
}

func TestAppend_FormatsAmount(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureInitialized(); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(expense("2025-06-01", "Coffee", "Food", "12.5")); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(expense("2025-06-02", "Bus", "Transport", "-3")); err != nil {
		t.Fatal(err)
	}

	want := "Date,Description,Category,Amount\n" +
		"2025-06-01,Coffee,Food,12.50\n" +
		"2025-06-02,Bus,Transport,-3.00\n"
	if got := readFile(t, s.Path()); got != want {
		t.Errorf("file content =\n%s\nwant\n%s", got, want)
	}
}

func TestLoadAll_RoundTripsQuoting(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureInitialized(); err != nil {
		t.Fatal(err)
	}
	in := expense("2025-06-01", `Dinner, "fancy"`, "Food, out", "42.10")
	if err := s.Append(in); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Description != in.Description || got[0].Category != in.Category {
		t.Errorf("got %+v, want %+v", got[0], in)
	}
	if !got[0].Amount.Equal(in.Amount) {
		t.Errorf("Amount = %s, want %s", got[0].Amount, in.Amount)
	}
}

func TestOverwriteAll_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureInitialized(); err != nil {
		t.Fatal(err)
	}
	for _, e := range []model.Expense{
		expense("2025-06-01", "A", "x", "1"),
		expense("2025-06-02", "B", "x", "2"),
		expense("2025-06-03", "C", "x", "3"),
	} {
		if err := s.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	remaining := append(all[:1:1], all[2:]...)
	if err := s.OverwriteAll(remaining); err != nil {
		t.Fatalf("OverwriteAll: %v", err)
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Description != "A" || got[1].Description != "C" {
		t.Errorf("after delete got %+v, want A, C", got)
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover files in data dir: %d entries", len(entries))
	}
}

func TestOverwriteAll_EmptyLeavesHeader(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureInitialized(); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(expense("2025-06-01", "Only", "x", "1")); err != nil {
		t.Fatal(err)
	}
	if err := s.OverwriteAll(nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadAll(); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestOverwriteAll_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "expenses.csv")
	// A non-empty directory at the target path makes the rename fail.
	if err := os.Mkdir(target, 0o750); err != nil {
		t.Fatal(err)
	}
	kept := filepath.Join(target, "keep.csv")
	original := "Date,Description,Category,Amount\n2025-06-01,A,x,1.00\n"
	if err := os.WriteFile(kept, []byte(original), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(target)
	if err := s.OverwriteAll([]model.Expense{expense("2025-06-02", "B", "x", "2")}); err == nil {
		t.Fatal("OverwriteAll succeeded, want rename error")
	}

	if got := readFile(t, kept); got != original {
		t.Errorf("original content changed:\nbefore %q\nafter  %q", original, got)
	}
	leftovers, err := filepath.Glob(filepath.Join(dir, ".expenses-*.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestLoadAll_MalformedRows(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{"wrong field count", "2025-06-01,Lunch,Food\n", 2},
		{"non-numeric amount", "2025-06-01,Lunch,Food,ten\n", 2},
		{"later row", "2025-06-01,Lunch,Food,1.00\n2025-06-02,Tea,Food,abc\n", 3},
		{"amount out of range", "2025-06-01,Lunch,Food,1e10000000\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			content := strings.Join(model.Header, ",") + "\n" + tt.content
			if err := os.WriteFile(s.Path(), []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := s.LoadAll()
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			var rowErr *MalformedRowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("err = %T, want *MalformedRowError", err)
			}
			if rowErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", rowErr.Line, tt.wantLine)
			}
		})
	}
}
