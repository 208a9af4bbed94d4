package engine

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/addbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/deletebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/editbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/issuebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/registeruser"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/reservebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/returnbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/seedcatalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/unreservebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/counts"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listbooks"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listusers"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// ErrNilRecordStore is returned when an Engine is created without a record store.
var ErrNilRecordStore = errors.New("record store must not be nil")

// Engine is the stateless operation facade over a record store.
type Engine struct {
	recordStore      shell.RecordStore
	locks            *shell.CollectionLocks
	generateID       core.IDGenerator
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	handlers         handlers
}

// NewEngine creates an Engine on top of the given record store with optional configuration.
func NewEngine(recordStore shell.RecordStore, options ...Option) (*Engine, error) {
	if recordStore == nil {
		return nil, ErrNilRecordStore
	}

	e := &Engine{
		recordStore: recordStore,
		locks:       shell.NewCollectionLocks(),
		generateID:  shell.NewBookID,
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	if err := e.buildHandlers(); err != nil {
		return nil, err
	}

	return e, nil
}

// ListBooks returns the complete catalog, freshly loaded.
func (e *Engine) ListBooks(ctx context.Context) (core.Books, error) {
	list, err := e.handlers.listBooks.Handle(ctx, listbooks.BuildQuery("", ""))
	if err != nil {
		return nil, err
	}

	return list.Books, nil
}

// SearchBooks returns the books whose title or author contains search, ignoring case, within
// category. An empty category or listbooks.AllCategories matches any category.
func (e *Engine) SearchBooks(ctx context.Context, search string, category string) (listbooks.BookList, error) {
	return e.handlers.listBooks.Handle(ctx, listbooks.BuildQuery(search, category))
}

// SaveBooks replaces the complete catalog.
func (e *Engine) SaveBooks(ctx context.Context, books core.Books) error {
	unlock := e.locks.Lock(recordstore.Books)
	defer unlock()

	return shell.SaveBooks(ctx, e.recordStore, books)
}

// ListUsers returns all members, freshly loaded.
func (e *Engine) ListUsers(ctx context.Context) (core.Users, error) {
	list, err := e.handlers.listUsers.Handle(ctx, listusers.BuildQuery(""))
	if err != nil {
		return nil, err
	}

	return list.Users, nil
}

// SearchUsers returns the members whose name or roll number contains search, ignoring case.
func (e *Engine) SearchUsers(ctx context.Context, search string) (listusers.UserList, error) {
	return e.handlers.listUsers.Handle(ctx, listusers.BuildQuery(search))
}

// SaveUsers replaces all members.
func (e *Engine) SaveUsers(ctx context.Context, users core.Users) error {
	unlock := e.locks.Lock(recordstore.Users)
	defer unlock()

	return shell.SaveUsers(ctx, e.recordStore, users)
}

// AddBook adds a title to the catalog and returns its new id.
func (e *Engine) AddBook(
	ctx context.Context,
	title string,
	author string,
	publisher string,
	year int,
	category string,
	copies int,
) (core.BookIDString, error) {

	result, err := e.handlers.addBook.Handle(ctx, addbook.BuildCommand(title, author, publisher, year, category, copies))
	if err != nil {
		return "", err
	}

	return result.CreatedBookID, nil
}

// RegisterUser adds a member. Roll numbers must be unique.
func (e *Engine) RegisterUser(ctx context.Context, name, email string, rollNo core.RollNoString, contact string) error {
	_, err := e.handlers.registerUser.Handle(ctx, registeruser.BuildCommand(name, email, rollNo, contact))
	return err
}

// IssueBook appends bookID to the borrowed list of the member. periodDays is accepted and unused.
func (e *Engine) IssueBook(
	ctx context.Context,
	bookID core.BookIDString,
	rollNo core.RollNoString,
	periodDays int,
) (shell.HandlerResult, error) {

	return e.handlers.issueBook.Handle(ctx, issuebook.BuildCommand(bookID, rollNo, periodDays))
}

// ReturnBook removes bookID from the borrowed list of the member and reports whether it was there.
func (e *Engine) ReturnBook(ctx context.Context, bookID core.BookIDString, rollNo core.RollNoString) (bool, error) {
	result, err := e.handlers.returnBook.Handle(ctx, returnbook.BuildCommand(bookID, rollNo))
	if err != nil {
		return false, err
	}

	return result.UsersSaved, nil
}

// ReserveBook appends bookID to the reserved list of the member.
func (e *Engine) ReserveBook(
	ctx context.Context,
	bookID core.BookIDString,
	rollNo core.RollNoString,
) (shell.HandlerResult, error) {

	return e.handlers.reserveBook.Handle(ctx, reservebook.BuildCommand(bookID, rollNo))
}

// UnreserveBook removes bookID from the reserved list of the member.
func (e *Engine) UnreserveBook(
	ctx context.Context,
	bookID core.BookIDString,
	rollNo core.RollNoString,
) (shell.HandlerResult, error) {

	return e.handlers.unreserveBook.Handle(ctx, unreservebook.BuildCommand(bookID, rollNo))
}

// DeleteBook removes the book and every reference to it from borrowed and reserved lists.
func (e *Engine) DeleteBook(ctx context.Context, bookID core.BookIDString) (shell.HandlerResult, error) {
	return e.handlers.deleteBook.Handle(ctx, deletebook.BuildCommand(bookID))
}

// EditBook applies loosely typed field values to a book and reports whether the book exists.
// Names outside the editable set fail with core.ErrFieldNotEditable and nothing is changed.
// Fields whose values could not be coerced are returned as skipped.
func (e *Engine) EditBook(
	ctx context.Context,
	bookID core.BookIDString,
	fields map[string]string,
) (found bool, skipped []string, err error) {

	command, err := editbook.BuildCommand(bookID, fields)
	if err != nil {
		return false, nil, err
	}

	result, err := e.handlers.editBook.Handle(ctx, command)
	if err != nil {
		return false, nil, err
	}

	return !result.NoMatch, result.SkippedFields, nil
}

// EditBookTyped applies a typed update to a book and reports whether the book exists.
func (e *Engine) EditBookTyped(ctx context.Context, bookID core.BookIDString, update core.BookUpdate) (bool, error) {
	result, err := e.handlers.editBook.Handle(ctx, editbook.BuildTypedCommand(bookID, update))
	if err != nil {
		return false, err
	}

	return !result.NoMatch, nil
}

// Counts returns the dashboard summary.
func (e *Engine) Counts(ctx context.Context) (counts.Counts, error) {
	return e.handlers.counts.Handle(ctx, counts.BuildQuery())
}

// EnsureSampleData seeds the starter set if the catalog is empty and reports whether it did.
func (e *Engine) EnsureSampleData(ctx context.Context) (bool, error) {
	result, err := e.handlers.seedCatalog.Handle(ctx, seedcatalog.BuildCommand())
	if err != nil {
		return false, err
	}

	return result.BooksSaved, nil
}
