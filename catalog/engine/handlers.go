package engine

import (
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
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/observable"
)

type handlers struct {
	addBook       *observable.CommandWrapper[addbook.Command]
	registerUser  *observable.CommandWrapper[registeruser.Command]
	issueBook     *observable.CommandWrapper[issuebook.Command]
	returnBook    *observable.CommandWrapper[returnbook.Command]
	reserveBook   *observable.CommandWrapper[reservebook.Command]
	unreserveBook *observable.CommandWrapper[unreservebook.Command]
	deleteBook    *observable.CommandWrapper[deletebook.Command]
	editBook      *observable.CommandWrapper[editbook.Command]
	seedCatalog   *observable.CommandWrapper[seedcatalog.Command]
	listBooks     *observable.QueryWrapper[listbooks.Query, listbooks.BookList]
	listUsers     *observable.QueryWrapper[listusers.Query, listusers.UserList]
	counts        *observable.QueryWrapper[counts.Query, counts.Counts]
}

// buildHandlers creates all feature handlers on the shared locks, each wrapped for observability.
func (e *Engine) buildHandlers() error {
	var err error

	if e.handlers.addBook, err = wrapCommand[addbook.Command](e, addbook.NewCommandHandler(
		e.recordStore,
		addbook.WithCollectionLocks(e.locks),
		addbook.WithIDGenerator(e.generateID),
	)); err != nil {
		return err
	}

	if e.handlers.registerUser, err = wrapCommand[registeruser.Command](e, registeruser.NewCommandHandler(
		e.recordStore,
		registeruser.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.issueBook, err = wrapCommand[issuebook.Command](e, issuebook.NewCommandHandler(
		e.recordStore,
		issuebook.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.returnBook, err = wrapCommand[returnbook.Command](e, returnbook.NewCommandHandler(
		e.recordStore,
		returnbook.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.reserveBook, err = wrapCommand[reservebook.Command](e, reservebook.NewCommandHandler(
		e.recordStore,
		reservebook.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.unreserveBook, err = wrapCommand[unreservebook.Command](e, unreservebook.NewCommandHandler(
		e.recordStore,
		unreservebook.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.deleteBook, err = wrapCommand[deletebook.Command](e, deletebook.NewCommandHandler(
		e.recordStore,
		deletebook.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.editBook, err = wrapCommand[editbook.Command](e, editbook.NewCommandHandler(
		e.recordStore,
		editbook.WithCollectionLocks(e.locks),
	)); err != nil {
		return err
	}

	if e.handlers.seedCatalog, err = wrapCommand[seedcatalog.Command](e, seedcatalog.NewCommandHandler(
		e.recordStore,
		seedcatalog.WithCollectionLocks(e.locks),
		seedcatalog.WithIDGenerator(e.generateID),
	)); err != nil {
		return err
	}

	if e.handlers.listBooks, err = wrapQuery[listbooks.Query, listbooks.BookList](e, listbooks.NewQueryHandler(e.recordStore)); err != nil {
		return err
	}

	if e.handlers.listUsers, err = wrapQuery[listusers.Query, listusers.UserList](e, listusers.NewQueryHandler(e.recordStore)); err != nil {
		return err
	}

	if e.handlers.counts, err = wrapQuery[counts.Query, counts.Counts](e, counts.NewQueryHandler(e.recordStore)); err != nil {
		return err
	}

	return nil
}

func wrapCommand[C shell.Command](
	e *Engine,
	coreHandler shell.CoreCommandHandler[C],
) (*observable.CommandWrapper[C], error) {

	return observable.NewCommandWrapper(
		coreHandler,
		observable.WithCommandLogging[C](e.logger),
		observable.WithCommandContextualLogging[C](e.contextualLogger),
		observable.WithCommandMetrics[C](e.metricsCollector),
		observable.WithCommandTracing[C](e.tracingCollector),
	)
}

func wrapQuery[Q shell.Query, R any](
	e *Engine,
	coreHandler shell.CoreQueryHandler[Q, R],
) (*observable.QueryWrapper[Q, R], error) {

	return observable.NewQueryWrapper(
		coreHandler,
		observable.WithQueryLogging[Q, R](e.logger),
		observable.WithQueryContextualLogging[Q, R](e.contextualLogger),
		observable.WithQueryMetrics[Q, R](e.metricsCollector),
		observable.WithQueryTracing[Q, R](e.tracingCollector),
	)
}
