package issuebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of issuing a book.
// This is a pure function with no side effects - it takes the current members and a command
// and returns the member list that should be saved.
//
// Business Rules:
//
//	GIVEN: A member with RollNo
//	WHEN: IssueBook command is received
//	THEN: BookID is appended to the borrowed list of the first member with that roll number
//	NO MATCH: no member has the roll number, nothing changes
//	IDEMPOTENCY: the member already borrowed the book, nothing changes
func Decide(users core.Users, command Command) core.DecisionResult {
	i := core.IndexOfUser(users, command.RollNo)
	if i < 0 {
		return core.NoMatchDecision()
	}

	if users[i].HasBorrowed(command.BookID) {
		return core.IdempotentDecision()
	}

	updated := core.CloneUsers(users)
	updated[i].Borrowed = append(updated[i].Borrowed, command.BookID)

	return core.UsersChangedDecision(updated)
}
