package editbook

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// CommandHandler runs the load -> decide -> save workflow for editing books.
type CommandHandler struct {
	recordStore shell.RecordStore
	locks       *shell.CollectionLocks
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithCollectionLocks shares the collection locks of an engine with the handler.
func WithCollectionLocks(locks *shell.CollectionLocks) Option {
	return func(h *CommandHandler) {
		h.locks = locks
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(recordStore shell.RecordStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		recordStore: recordStore,
		locks:       shell.NewCollectionLocks(),
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle edits the book while holding the books lock for the whole cycle.
// Fields skipped while building the command are reported for every outcome except no-match.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	unlock := h.locks.Lock(recordstore.Books)
	defer unlock()

	books, err := shell.LoadBooks(ctx, h.recordStore)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(books, command)

	if result.IsNoMatch() {
		return shell.NewNoMatchResult(), nil
	}

	if handlerResult, done := shell.ResultFromDecision(result); done {
		return handlerResult.WithSkippedFields(command.SkippedFields), nil
	}

	handlerResult, err := shell.SaveDecision(ctx, h.recordStore, result)
	if err != nil {
		return handlerResult, err
	}

	return handlerResult.WithSkippedFields(command.SkippedFields), nil
}
