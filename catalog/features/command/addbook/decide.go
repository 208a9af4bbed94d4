package addbook

import (
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of adding a book.
// newID must only return ids that are not in books.
//
// Business Rules:
//
//	GIVEN: A catalog
//	WHEN: AddBook command is received
//	THEN: a book with a new id is appended to the catalog
func Decide(books core.Books, command Command, newID core.IDGenerator) core.DecisionResult {
	book := core.BuildBook(
		newID(),
		command.Title,
		command.Author,
		command.Publisher,
		command.Year,
		command.Category,
		command.Copies,
	)

	updated := append(slices.Clone(books), book)

	return core.BooksChangedDecision(updated)
}
