// Package model defines the expense record and its aggregates.
package model

import "github.com/shopspring/decimal"

// Header is the fixed first row of the backing file.
var Header = []string{"Date", "Description", "Category", "Amount"}

// DateLayout is the calendar date format used for the Date field.
const DateLayout = "2006-01-02"

// Expense is one recorded expense. It has no identity beyond its
// position in the backing file.
type Expense struct {
	Date        string
	Description string
	Category    string
	Amount      decimal.Decimal
}

// Amount bounds. Exponents are checked before magnitude so that inputs
// like "1e10000000" are refused without being expanded.
const (
	minAmountExponent = -20
	maxAmountExponent = 15
)

// MaxAmount is the exclusive upper bound on an amount's absolute value.
var MaxAmount = decimal.New(1, maxAmountExponent)

// AmountInRange reports whether d can be stored and formatted cheaply.
func AmountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < minAmountExponent || exp > maxAmountExponent {
		return false
	}
	return d.Abs().LessThan(MaxAmount)
}

// FormattedAmount returns the amount with exactly two fraction digits.
func (e Expense) FormattedAmount() string {
	return e.Amount.StringFixed(2)
}

// Fields returns the record as a row in Header order.
func (e Expense) Fields() []string {
	return []string{e.Date, e.Description, e.Category, e.FormattedAmount()}
}
