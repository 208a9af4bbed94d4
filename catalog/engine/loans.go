package engine

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// Loan records are not kept. These methods always return empty results and never touch storage.

// ListLoans returns no loans.
func (e *Engine) ListLoans(_ context.Context) recordstore.Documents {
	return make(recordstore.Documents, 0)
}

// SaveLoans discards the given loans.
func (e *Engine) SaveLoans(_ context.Context, _ recordstore.Documents) {}

// OverdueLoans returns no loans.
func (e *Engine) OverdueLoans(_ context.Context) recordstore.Documents {
	return make(recordstore.Documents, 0)
}

// TotalFinesForUser returns zero for every member.
func (e *Engine) TotalFinesForUser(_ context.Context, _ core.RollNoString) float64 {
	return 0
}
