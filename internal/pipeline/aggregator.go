// Package pipeline aggregates loaded expenses into reports.
package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/expenses/internal/model"
)

// Summarize computes per-category subtotals and the grand total.
// Categories are compared by exact string equality and kept in the
// order they first appear.
func Summarize(expenses []model.Expense) model.Summary {
	stats := model.Summary{Total: decimal.Zero}
	index := make(map[string]int)

	for _, e := range expenses {
		stats.Count++
		stats.Total = stats.Total.Add(e.Amount)

		i, ok := index[e.Category]
		if !ok {
			i = len(stats.Categories)
			index[e.Category] = i
			stats.Categories = append(stats.Categories, model.CategoryTotal{
				Category: e.Category,
				Amount:   decimal.Zero,
			})
		}
		stats.Categories[i].Amount = stats.Categories[i].Amount.Add(e.Amount)
	}

	return stats
}
