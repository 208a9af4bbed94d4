package deletebook

import (
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of deleting a book.
//
// Business Rules:
//
//	GIVEN: A catalog and a member list
//	WHEN: DeleteBook command is received
//	THEN: every book with BookID is removed from the catalog
//	AND: every occurrence of BookID is removed from all borrowed and reserved lists
//	NO MATCH: neither the catalog nor any member references BookID, nothing changes
func Decide(books core.Books, users core.Users, command Command) core.DecisionResult {
	var updatedBooks core.Books
	if core.HasBookID(books, command.BookID) {
		updatedBooks = slices.DeleteFunc(slices.Clone(books), func(b core.Book) bool {
			return b.ItemID == command.BookID
		})
	}

	var updatedUsers core.Users
	if referencedByAnyone(users, command.BookID) {
		updatedUsers = core.CloneUsers(users)
		for i := range updatedUsers {
			updatedUsers[i].Borrowed, _ = core.RemoveAllIDs(updatedUsers[i].Borrowed, command.BookID)
			updatedUsers[i].Reserved, _ = core.RemoveAllIDs(updatedUsers[i].Reserved, command.BookID)
		}
	}

	if updatedBooks == nil && updatedUsers == nil {
		return core.NoMatchDecision()
	}

	return core.CatalogChangedDecision(updatedBooks, updatedUsers)
}

func referencedByAnyone(users core.Users, itemID core.BookIDString) bool {
	return slices.ContainsFunc(users, func(u core.User) bool {
		return u.HasBorrowed(itemID) || u.HasReserved(itemID)
	})
}
