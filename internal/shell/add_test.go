package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocjay1/budget-tracker/internal/models"
	"github.com/rocjay1/budget-tracker/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	typePrompt     = "Enter the type of entry (income/expense): \n"
	categoryPrompt = "Enter the category (e.g., food, entertainment): \n"
	amountPrompt   = "Enter the amount: \n"
)

func TestAddEntry_Success(t *testing.T) {
	store := &memoryStore{entries: []models.Entry{
		{Date: "2025-01-01 00:00:00", Category: "rent", Amount: decimal.NewFromFloat(800), Type: models.EntryTypeExpense},
	}}

	out, err := runShell(t, store, "1", "expense", "  groceries  ", "12.34", "4")

	require.NoError(t, err)
	assert.Equal(t, menu+typePrompt+categoryPrompt+amountPrompt+
		"Entry added successfully!\n"+
		menu+"Exiting the program. Goodbye!\n", out)

	require.Len(t, store.entries, 2)
	assert.Equal(t, "rent", store.entries[0].Category)
	added := store.entries[1]
	assert.Equal(t, "2025-06-01 14:30:15", added.Date)
	assert.Equal(t, "groceries", added.Category)
	assert.Equal(t, models.EntryTypeExpense, added.Type)
	assert.True(t, added.Amount.Equal(decimal.RequireFromString("12.34")))
}

func TestAddEntry_TypeIsLowercasedBeforeValidation(t *testing.T) {
	store := &memoryStore{}

	out, err := runShell(t, store, "1", "Income", "salary", "100", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Entry added successfully!")
	assert.NotContains(t, out, "Invalid entry type")
	require.Len(t, store.entries, 1)
	assert.Equal(t, models.EntryTypeIncome, store.entries[0].Type)
}

func TestAddEntry_InvalidType(t *testing.T) {
	store := &memoryStore{}

	out, err := runShell(t, store, "1", "gift", "4")

	require.NoError(t, err)
	assert.Equal(t, menu+typePrompt+"Invalid entry type. Try again.\n"+
		menu+"Exiting the program. Goodbye!\n", out)
	assert.Zero(t, store.saves)
}

func TestAddEntry_InvalidAmount(t *testing.T) {
	store := &memoryStore{}

	out, err := runShell(t, store, "1", "expense", "food", "abc", "4")

	require.NoError(t, err)
	assert.Equal(t, menu+typePrompt+categoryPrompt+amountPrompt+
		"Invalid amount. Please enter a number.\n"+
		menu+"Exiting the program. Goodbye!\n", out)
	assert.Zero(t, store.saves)
}

func TestAddEntry_RejectsOutOfRangeExponent(t *testing.T) {
	for _, amount := range []string{"1e999999999", "1e-999999999", "1e65"} {
		t.Run(amount, func(t *testing.T) {
			store := &memoryStore{}

			out, err := runShell(t, store, "1", "expense", "food", amount, "4")

			require.NoError(t, err)
			assert.Contains(t, out, "Invalid amount. Please enter a number.\n")
			assert.Zero(t, store.saves)
		})
	}
}

func TestAddEntry_InvalidAmountLeavesFileUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget_data.csv")
	original := "date,category,amount,type\n2025-01-01 08:00:00,salary,1000,income\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	out, err := runShell(t, services.NewFileStore(path), "1", "expense", "food", "abc", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid amount. Please enter a number.")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestAddEntry_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget_data.csv")

	_, err := runShell(t, services.NewFileStore(path),
		"1", "income", "salary", "1000",
		"1", "expense", "food, takeout", "40.5",
		"4")

	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,category,amount,type\n"+
		"2025-06-01 14:30:15,salary,1000,income\n"+
		"2025-06-01 14:30:15,\"food, takeout\",40.5,expense\n", string(content))
}

func TestAddEntry_PermissiveValues(t *testing.T) {
	store := &memoryStore{}

	out, err := runShell(t, store, "1", "expense", "   ", " -5 ", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Entry added successfully!")
	require.Len(t, store.entries, 1)
	assert.Equal(t, "", store.entries[0].Category)
	assert.True(t, store.entries[0].Amount.Equal(decimal.NewFromInt(-5)))
}

func TestAddEntry_SaveErrorIsFatal(t *testing.T) {
	mockStore := &MockStore{
		SaveFunc: func(ctx context.Context, entries []models.Entry) error {
			return errors.New("disk full")
		},
	}

	out, err := runShell(t, mockStore, "1", "income", "salary", "1", "4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NotContains(t, out, "Entry added successfully!")
}

func TestAddEntry_LoadsAfterValidation(t *testing.T) {
	loads := 0
	mockStore := &MockStore{
		LoadFunc: func(ctx context.Context) ([]models.Entry, error) {
			loads++
			return nil, nil
		},
	}

	_, err := runShell(t, mockStore, "1", "bogus", "1", "expense", "x", "nope", "4")

	require.NoError(t, err)
	assert.Zero(t, loads)
}
