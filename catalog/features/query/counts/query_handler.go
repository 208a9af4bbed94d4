package counts

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// QueryHandler loads both collections concurrently and projects the summary.
type QueryHandler struct {
	recordStore shell.RecordStore
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(recordStore shell.RecordStore) QueryHandler {
	return QueryHandler{recordStore: recordStore}
}

// Handle executes the query workflow: Load (books and users in parallel) -> Project.
// The first load error cancels the other load.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (Counts, error) {
	var (
		books core.Books
		users core.Users
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		books, err = shell.LoadBooks(gctx, h.recordStore)
		return err
	})

	g.Go(func() error {
		var err error
		users, err = shell.LoadUsers(gctx, h.recordStore)
		return err
	})

	if err := g.Wait(); err != nil {
		return Counts{}, err
	}

	return Project(books, users), nil
}
