package editbook

import (
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of editing a book.
//
// Business Rules:
//
//	GIVEN: A catalog containing BookID
//	WHEN: EditBook command is received
//	THEN: the first book with BookID gets the fields set in the update
//	NO MATCH: the catalog has no book with BookID, nothing changes
//	IDEMPOTENCY: the update would not change any value, nothing changes
func Decide(books core.Books, command Command) core.DecisionResult {
	i := core.IndexOfBook(books, command.BookID)
	if i < 0 {
		return core.NoMatchDecision()
	}

	edited := command.Update.ApplyTo(books[i])
	if edited == books[i] {
		return core.IdempotentDecision()
	}

	updated := slices.Clone(books)
	updated[i] = edited

	return core.BooksChangedDecision(updated)
}
