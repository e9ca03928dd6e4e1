package models

import (
	"github.com/shopspring/decimal"
)

// Summary holds the overall totals of a ledger.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Summarize totals income and expenses. Amounts are summed as given, so a
// negative expense lowers TotalExpense.
func Summarize(entries []Entry) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case EntryTypeIncome:
			income = income.Add(e.Amount)
		case EntryTypeExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// ByCategory sums expense amounts per category. Categories are compared
// case-sensitively and returned in the order they first appear in entries.
// Income entries never contribute.
func ByCategory(entries []Entry) []CategoryTotal {
	totals := []CategoryTotal{}
	index := make(map[string]int)
	for _, e := range entries {
		if e.Type != EntryTypeExpense {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}
	return totals
}
