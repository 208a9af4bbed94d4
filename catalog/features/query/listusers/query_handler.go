package listusers

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// QueryHandler loads the members and projects the listing.
type QueryHandler struct {
	recordStore shell.RecordStore
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(recordStore shell.RecordStore) QueryHandler {
	return QueryHandler{recordStore: recordStore}
}

// Handle executes the query workflow: Load -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (UserList, error) {
	users, err := shell.LoadUsers(ctx, h.recordStore)
	if err != nil {
		return UserList{}, err
	}

	return Project(users, query), nil
}
