package shell

import (
	"context"

	"github.com/rocjay1/budget-tracker/internal/models"
)

// Store defines the ledger persistence the shell relies on. Both calls move
// the whole table; there is no incremental update.
type Store interface {
	Load(ctx context.Context) ([]models.Entry, error)
	Save(ctx context.Context, entries []models.Entry) error
}
