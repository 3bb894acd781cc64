package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/expenses/internal/model"
	"github.com/theirongolddev/expenses/internal/theme"
)

// Column widths of the expense listing.
const (
	widthIndex       = 6
	widthDate        = 12
	widthDescription = 20
	widthCategory    = 15
	widthAmount      = 10
)

// RuleWidth is the length of the dashed rule under the listing header.
const RuleWidth = 65

// Renderer styles text for one output stream. Colour support is detected
// from the stream, so writing to a file or buffer yields plain text.
type Renderer struct {
	title   lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	border  lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

// NewRenderer returns a Renderer for w using the colours of t.
func NewRenderer(w io.Writer, t theme.Theme) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title:   r.NewStyle().Bold(true).Foreground(t.Accent),
		header:  r.NewStyle().Bold(true).Foreground(t.Accent),
		muted:   r.NewStyle().Foreground(t.Muted),
		border:  r.NewStyle().Foreground(t.Border),
		value:   r.NewStyle().Foreground(t.Text),
		success: r.NewStyle().Foreground(t.Success),
		warn:    r.NewStyle().Foreground(t.Warning),
		err:     r.NewStyle().Foreground(t.Error),
	}
}

// Title renders s in the bold accent colour.
func (r *Renderer) Title(s string) string { return r.title.Render(s) }

// Muted renders s in the secondary text colour.
func (r *Renderer) Muted(s string) string { return r.muted.Render(s) }

// Success renders s in the success colour.
func (r *Renderer) Success(s string) string { return r.success.Render(s) }

// Warn renders s in the warning colour.
func (r *Renderer) Warn(s string) string { return r.warn.Render(s) }

// Error renders s in the error colour.
func (r *Renderer) Error(s string) string { return r.err.Render(s) }

// RenderExpenses renders the fixed-width listing: header line, dashed
// rule, then one line per expense with its 1-based index. Cells wider than
// their column are printed in full.
func (r *Renderer) RenderExpenses(expenses []model.Expense) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.header.Render(fmt.Sprintf("%-*s%-*s%-*s%-*s%*s",
		widthIndex, "Index",
		widthDate, "Date",
		widthDescription, "Description",
		widthCategory, "Category",
		widthAmount, "Amount",
	)))
	b.WriteString("\n")
	b.WriteString(r.border.Render(strings.Repeat("-", RuleWidth)))
	b.WriteString("\n")

	for i, e := range expenses {
		b.WriteString(fmt.Sprintf("%-*d%-*s%-*s%-*s%*s",
			widthIndex, i+1,
			widthDate, e.Date,
			widthDescription, e.Description,
			widthCategory, e.Category,
			widthAmount, e.FormattedAmount(),
		))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// RenderSummary renders per-category subtotals followed by the total.
func (r *Renderer) RenderSummary(s model.Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.title.Render("Expense Summary by Category:"))
	b.WriteString("\n")
	for _, c := range s.Categories {
		b.WriteString(fmt.Sprintf("%s: %s\n", c.Category, FormatMoney(c.Amount)))
	}
	b.WriteString("\n")
	b.WriteString(r.value.Render(fmt.Sprintf("Total Expenses: %s", FormatMoney(s.Total))))
	b.WriteString("\n\n")

	return b.String()
}

// Table represents a bordered text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a bordered table. The first column is left-aligned,
// the rest right-aligned. A row holding the single cell "---" renders as a
// separator.
func (r *Renderer) RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return r.border.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(r.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(r.border.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(r.header.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(r.border.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(r.border.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(r.value.Render(padded))
			b.WriteString(r.border.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}
