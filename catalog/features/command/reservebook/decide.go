package reservebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of reserving a book.
//
// Business Rules:
//
//	GIVEN: A member with RollNo
//	WHEN: ReserveBook command is received
//	THEN: BookID is appended to the reserved list of the first member with that roll number
//	NO MATCH: no member has the roll number, nothing changes
//	IDEMPOTENCY: the book is already reserved by the member, nothing changes
func Decide(users core.Users, command Command) core.DecisionResult {
	i := core.IndexOfUser(users, command.RollNo)
	if i < 0 {
		return core.NoMatchDecision()
	}

	if users[i].HasReserved(command.BookID) {
		return core.IdempotentDecision()
	}

	updated := core.CloneUsers(users)
	updated[i].Reserved = append(updated[i].Reserved, command.BookID)

	return core.UsersChangedDecision(updated)
}
