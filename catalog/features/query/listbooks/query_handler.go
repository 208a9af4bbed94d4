package listbooks

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// QueryHandler loads the catalog and projects the listing.
// Queries take no locks; they see the last completed save.
type QueryHandler struct {
	recordStore shell.RecordStore
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(recordStore shell.RecordStore) QueryHandler {
	return QueryHandler{recordStore: recordStore}
}

// Handle executes the query workflow: Load -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookList, error) {
	books, err := shell.LoadBooks(ctx, h.recordStore)
	if err != nil {
		return BookList{}, err
	}

	return Project(books, query), nil
}
