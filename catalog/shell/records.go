package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

// NewBookID generates a random book identifier.
func NewBookID() core.BookIDString {
	return uuid.New().String()
}

// UniqueBookID returns an id generator that never hands out an id already used in books
// or previously returned by the same generator.
func UniqueBookID(books core.Books, generate core.IDGenerator) core.IDGenerator {
	if generate == nil {
		generate = NewBookID
	}

	taken := make(map[core.BookIDString]struct{}, len(books))
	for _, b := range books {
		taken[b.ItemID] = struct{}{}
	}

	return func() core.BookIDString {
		for {
			id := generate()
			if _, exists := taken[id]; !exists {
				taken[id] = struct{}{}
				return id
			}
		}
	}
}

// BooksFromDocuments converts stored documents into books. Documents without item_id get a new id.
func BooksFromDocuments(docs recordstore.Documents) core.Books {
	books := make(core.Books, 0, len(docs))
	for _, doc := range docs {
		books = append(books, core.BookFromDocument(doc, NewBookID))
	}

	return books
}

// DocumentsFromBooks converts books into their stored form, keeping the order.
func DocumentsFromBooks(books core.Books) recordstore.Documents {
	docs := make(recordstore.Documents, 0, len(books))
	for _, b := range books {
		docs = append(docs, b.ToDocument())
	}

	return docs
}

// UsersFromDocuments converts stored documents into users.
func UsersFromDocuments(docs recordstore.Documents) core.Users {
	users := make(core.Users, 0, len(docs))
	for _, doc := range docs {
		users = append(users, core.UserFromDocument(doc))
	}

	return users
}

// DocumentsFromUsers converts users into their stored form, keeping the order.
func DocumentsFromUsers(users core.Users) recordstore.Documents {
	docs := make(recordstore.Documents, 0, len(users))
	for _, u := range users {
		docs = append(docs, u.ToDocument())
	}

	return docs
}

// LoadBooks loads and converts the complete catalog.
func LoadBooks(ctx context.Context, store RecordStore) (core.Books, error) {
	docs, err := store.Load(ctx, recordstore.Books)
	if err != nil {
		return nil, err
	}

	return BooksFromDocuments(docs), nil
}

// LoadUsers loads and converts all members.
func LoadUsers(ctx context.Context, store RecordStore) (core.Users, error) {
	docs, err := store.Load(ctx, recordstore.Users)
	if err != nil {
		return nil, err
	}

	return UsersFromDocuments(docs), nil
}

// SaveBooks replaces the complete catalog.
func SaveBooks(ctx context.Context, store RecordStore, books core.Books) error {
	return store.Save(ctx, recordstore.Books, DocumentsFromBooks(books))
}

// SaveUsers replaces all members.
func SaveUsers(ctx context.Context, store RecordStore, users core.Users) error {
	return store.Save(ctx, recordstore.Users, DocumentsFromUsers(users))
}

// SaveDecision writes the collections a decision changed, catalog first.
// The context is checked before anything is written.
func SaveDecision(ctx context.Context, store RecordStore, result core.DecisionResult) (HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return NewErrorResult(), err
	}

	if result.HasBooksToSave() {
		if err := SaveBooks(ctx, store, result.Books); err != nil {
			return NewErrorResult(), err
		}
	}

	if result.HasUsersToSave() {
		if err := SaveUsers(ctx, store, result.Users); err != nil {
			return NewErrorResult(), err
		}
	}

	return NewSuccessResult(result.HasBooksToSave(), result.HasUsersToSave()), nil
}

// ResultFromDecision maps a decision without changes to its HandlerResult.
// The second return value is false when the decision has changes that must be saved.
func ResultFromDecision(result core.DecisionResult) (HandlerResult, bool) {
	switch {
	case result.IsIdempotent():
		return NewIdempotentResult(), true
	case result.IsNoMatch():
		return NewNoMatchResult(), true
	default:
		return HandlerResult{}, false
	}
}
