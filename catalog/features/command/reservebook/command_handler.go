package reservebook

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// CommandHandler runs the load -> decide -> save workflow for reserving books.
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

// Handle reserves the book while holding the users lock for the whole cycle.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	unlock := h.locks.Lock(recordstore.Users)
	defer unlock()

	users, err := shell.LoadUsers(ctx, h.recordStore)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(users, command)

	if handlerResult, done := shell.ResultFromDecision(result); done {
		return handlerResult, nil
	}

	return shell.SaveDecision(ctx, h.recordStore, result)
}
