package shell

import (
	"context"
	"fmt"

	"github.com/rocjay1/budget-tracker/internal/models"
)

func (s *Shell) showSummary(ctx context.Context) error {
	entries, err := s.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("show summary: %w", err)
	}

	summary := models.Summarize(entries)

	s.println("\nBudget Summary:")
	s.println("Total Income: " + formatMoney(summary.TotalIncome))
	s.println("Total Expenses: " + formatMoney(summary.TotalExpense))
	s.println("Balance: " + formatMoney(summary.Balance))
	return nil
}

// showExpensesByCategory prints expense totals in first-seen category order.
func (s *Shell) showExpensesByCategory(ctx context.Context) error {
	entries, err := s.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("show expenses by category: %w", err)
	}

	totals := models.ByCategory(entries)
	if len(totals) == 0 {
		s.println("No expenses recorded yet.")
		return nil
	}

	s.println("\nExpenses by Category:")
	for _, ct := range totals {
		s.println(capitalize(ct.Category) + ": " + formatMoney(ct.Total))
	}
	return nil
}
