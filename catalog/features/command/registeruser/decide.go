package registeruser

import (
	"errors"
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of registering a member.
//
// Business Rules:
//
//	GIVEN: A member list
//	WHEN: RegisterUser command is received
//	THEN: a member without loans or reservations is appended
//	ERROR: the roll number is empty
//	ERROR: a member with the roll number already exists
func Decide(users core.Users, command Command) core.DecisionResult {
	if command.RollNo == "" {
		return core.ErrorDecision(core.ErrEmptyRollNo)
	}

	if core.IndexOfUser(users, command.RollNo) >= 0 {
		return core.ErrorDecision(errors.Join(core.ErrDuplicateRollNo, errors.New(command.RollNo)))
	}

	updated := append(slices.Clone(users), core.BuildUser(command.Name, command.Email, command.RollNo, command.Contact))

	return core.UsersChangedDecision(updated)
}
