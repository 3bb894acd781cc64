// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as dollars with two fraction digits.
// The sign follows the dollar sign, e.g. -5 -> "$-5.00".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatShare formats part as a percentage of whole. A zero whole yields "-".
func FormatShare(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return "-"
	}
	pct := part.Div(whole).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s%%", pct.StringFixed(1))
}
