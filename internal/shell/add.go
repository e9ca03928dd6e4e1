package shell

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocjay1/budget-tracker/internal/models"
)

// addEntry collects one entry and appends it to the ledger. Each invalid
// answer abandons the flow and returns to the menu.
func (s *Shell) addEntry(ctx context.Context) error {
	s.println("Enter the type of entry (income/expense): ")
	raw, err := s.readLine()
	if err != nil {
		return err
	}
	entryType, err := models.ParseEntryType(raw)
	if err != nil {
		slog.DebugContext(ctx, "rejected entry type", "input", raw)
		s.println("Invalid entry type. Try again.")
		return nil
	}

	s.println("Enter the category (e.g., food, entertainment): ")
	raw, err = s.readLine()
	if err != nil {
		return err
	}
	category := strings.TrimSpace(raw)

	s.println("Enter the amount: ")
	raw, err = s.readLine()
	if err != nil {
		return err
	}
	amount, err := models.ParseAmount(strings.TrimSpace(raw))
	if err != nil {
		slog.DebugContext(ctx, "rejected amount", "input", raw)
		s.println("Invalid amount. Please enter a number.")
		return nil
	}

	entry := models.NewEntry(s.Now(), entryType, category, amount)

	entries, err := s.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("add entry: %w", err)
	}
	if err := s.Store.Save(ctx, append(entries, entry)); err != nil {
		return fmt.Errorf("add entry: %w", err)
	}

	slog.InfoContext(ctx, "entry added",
		"type", entry.Type,
		"category", entry.Category,
		"amount", entry.Amount.String(),
		"entries_count", len(entries)+1)
	s.println("Entry added successfully!")
	return nil
}
