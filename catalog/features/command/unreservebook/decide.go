package unreservebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of cancelling a reservation.
//
// Business Rules:
//
//	GIVEN: A member with RollNo who reserved BookID
//	WHEN: UnreserveBook command is received
//	THEN: the first occurrence of BookID is removed from the reserved list
//	NO MATCH: no member has the roll number, nothing changes
//	IDEMPOTENCY: the book is not reserved by the member, nothing changes
func Decide(users core.Users, command Command) core.DecisionResult {
	i := core.IndexOfUser(users, command.RollNo)
	if i < 0 {
		return core.NoMatchDecision()
	}

	reserved, removed := core.RemoveID(users[i].Reserved, command.BookID)
	if !removed {
		return core.IdempotentDecision()
	}

	updated := core.CloneUsers(users)
	updated[i].Reserved = reserved

	return core.UsersChangedDecision(updated)
}
