// Package analytics derives dashboard statistics from ledger snapshots.
// Every function here is pure: the same snapshot always yields the same
// output, and nothing is mutated.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"wealthai/internal/models"
)

// CategoryTotal pairs a category with an aggregated amount.
type CategoryTotal struct {
	Category models.Category
	Total    decimal.Decimal
}

// TotalBalance sums all account balances. Mixed currencies are summed
// numerically without conversion; the tracker has no rate source, so this is
// a documented simplification rather than a bug.
func TotalBalance(accounts []models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// PeriodExpenseTotal sums the amounts of all expense transactions in scope.
func PeriodExpenseTotal(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == models.Expense {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalIncome sums the amounts of all income transactions in scope.
func TotalIncome(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == models.Income {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CategoryBreakdown returns the expense total per category, in catalog
// order. Categories with a zero expense total are excluded; they are never
// rendered in charts.
func CategoryBreakdown(transactions []models.Transaction, categories []models.Category) []CategoryTotal {
	totals := sumByCategory(transactions, func(tx models.Transaction) bool {
		return tx.Type == models.Expense
	})

	var breakdown []CategoryTotal
	for _, cat := range categories {
		total, ok := totals[cat.ID]
		if !ok || total.IsZero() {
			continue
		}
		breakdown = append(breakdown, CategoryTotal{Category: cat, Total: total})
	}
	return breakdown
}

// TopCategories ranks all categories by combined income and expense volume,
// descending, truncated to n. Ties keep catalog order; zero totals are not
// excluded here.
func TopCategories(transactions []models.Transaction, categories []models.Category, n int) []CategoryTotal {
	totals := sumByCategory(transactions, func(models.Transaction) bool { return true })

	ranked := make([]CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		total, ok := totals[cat.ID]
		if !ok {
			total = decimal.Zero
		}
		ranked = append(ranked, CategoryTotal{Category: cat, Total: total})
	}

	// Stable sort: equal totals stay in catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func sumByCategory(transactions []models.Transaction, include func(models.Transaction) bool) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !include(tx) {
			continue
		}
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
	}
	return totals
}
