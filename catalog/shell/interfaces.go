package shell

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// RecordStore is the storage contract shared by the JSON file and the Postgres engines.
type RecordStore interface {
	Load(ctx context.Context, collection recordstore.Collection) (recordstore.Documents, error)
	Save(ctx context.Context, collection recordstore.Collection, docs recordstore.Documents) error
}

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Handlers run the load -> decide -> save workflow and return a HandlerResult describing the business outcome.
// Observability is added by wrapping them with observable.CommandWrapper.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CoreQueryHandler defines the contract for components that load records and project a read model.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
