package addbook

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// CommandHandler runs the load -> decide -> save workflow for adding books.
type CommandHandler struct {
	recordStore shell.RecordStore
	locks       *shell.CollectionLocks
	generateID  core.IDGenerator
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithCollectionLocks shares the collection locks of an engine with the handler.
func WithCollectionLocks(locks *shell.CollectionLocks) Option {
	return func(h *CommandHandler) {
		h.locks = locks
	}
}

// WithIDGenerator replaces the random id generator, mainly for tests.
func WithIDGenerator(generate core.IDGenerator) Option {
	return func(h *CommandHandler) {
		h.generateID = generate
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(recordStore shell.RecordStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		recordStore: recordStore,
		locks:       shell.NewCollectionLocks(),
		generateID:  shell.NewBookID,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle adds the book and reports its id in HandlerResult.CreatedBookID.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	unlock := h.locks.Lock(recordstore.Books)
	defer unlock()

	books, err := shell.LoadBooks(ctx, h.recordStore)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	result := Decide(books, command, shell.UniqueBookID(books, h.generateID))

	handlerResult, err := shell.SaveDecision(ctx, h.recordStore, result)
	if err != nil {
		return handlerResult, err
	}

	return handlerResult.WithCreatedBookID(result.Books[len(result.Books)-1].ItemID), nil
}
