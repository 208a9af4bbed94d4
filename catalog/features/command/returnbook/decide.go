package returnbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of returning a book.
//
// Business Rules:
//
//	GIVEN: A member with RollNo who borrowed BookID
//	WHEN: ReturnBook command is received
//	THEN: the first occurrence of BookID is removed from the borrowed list
//	NO MATCH: no member has the roll number, nothing changes
//	IDEMPOTENCY: the member has not borrowed the book, nothing changes
func Decide(users core.Users, command Command) core.DecisionResult {
	i := core.IndexOfUser(users, command.RollNo)
	if i < 0 {
		return core.NoMatchDecision()
	}

	borrowed, removed := core.RemoveID(users[i].Borrowed, command.BookID)
	if !removed {
		return core.IdempotentDecision()
	}

	updated := core.CloneUsers(users)
	updated[i].Borrowed = borrowed

	return core.UsersChangedDecision(updated)
}
