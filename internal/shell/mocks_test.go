package shell

import (
	"context"

	"github.com/rocjay1/budget-tracker/internal/models"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	LoadFunc func(ctx context.Context) ([]models.Entry, error)
	SaveFunc func(ctx context.Context, entries []models.Entry) error
}

func (m *MockStore) Load(ctx context.Context) ([]models.Entry, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) Save(ctx context.Context, entries []models.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entries)
	}
	return nil
}

// memoryStore keeps a copy of the table between calls, like a file would.
type memoryStore struct {
	entries []models.Entry
	saves   int
}

func (m *memoryStore) Load(_ context.Context) ([]models.Entry, error) {
	return append([]models.Entry(nil), m.entries...), nil
}

func (m *memoryStore) Save(_ context.Context, entries []models.Entry) error {
	m.entries = append([]models.Entry(nil), entries...)
	m.saves++
	return nil
}
