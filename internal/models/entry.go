package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the timestamp format stored in the date column.
const DateLayout = "2006-01-02 15:04:05"

// EntryType tells whether an entry adds to or takes from the balance.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

var (
	ErrInvalidEntryType = errors.New("invalid entry type")
	ErrInvalidAmount    = errors.New("invalid amount")
)

// MaxAmountExponent bounds the decimal exponent of an amount in either
// direction. Rendering a decimal writes every digit its exponent implies.
const MaxAmountExponent = 64

// ParseEntryType lower-cases s and matches it against the known entry types.
func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(strings.ToLower(s)); t {
	case EntryTypeIncome, EntryTypeExpense:
		return t, nil
	default:
		return "", ErrInvalidEntryType
	}
}

// ParseAmount parses a decimal amount such as "12.5", "-3" or "1e3".
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if exp := amount.Exponent(); exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// Entry represents a single income or expense record.
type Entry struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Type     EntryType       `json:"type"`
}

// NewEntry builds an entry stamped with the given time.
func NewEntry(at time.Time, entryType EntryType, category string, amount decimal.Decimal) Entry {
	return Entry{
		Date:     at.Format(DateLayout),
		Category: category,
		Amount:   amount,
		Type:     entryType,
	}
}
