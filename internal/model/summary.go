package model

import "github.com/shopspring/decimal"

// CategoryTotal holds the summed amount for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Summary holds per-category subtotals in first-seen order plus the grand total.
type Summary struct {
	Categories []CategoryTotal
	Total      decimal.Decimal
	Count      int
}
