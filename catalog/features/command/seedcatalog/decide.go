package seedcatalog

import (
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Decide implements the business logic of seeding.
//
// Business Rules:
//
//	GIVEN: An empty catalog
//	WHEN: SeedCatalog command is received
//	THEN: the starter books are stored with new ids
//	AND: starter members whose roll number is not registered yet are appended
//	IDEMPOTENCY: the catalog is not empty, nothing changes
func Decide(books core.Books, users core.Users, command Command, newID core.IDGenerator) core.DecisionResult {
	if len(books) > 0 {
		return core.IdempotentDecision()
	}

	seededBooks := make(core.Books, 0, len(command.Books))
	for _, b := range command.Books {
		b.ItemID = newID()
		seededBooks = append(seededBooks, b)
	}

	var seededUsers core.Users
	for _, u := range command.Users {
		if core.IndexOfUser(users, u.RollNo) >= 0 || core.IndexOfUser(seededUsers, u.RollNo) >= 0 {
			continue
		}

		seededUsers = append(seededUsers, u.Clone())
	}

	var updatedUsers core.Users
	if len(seededUsers) > 0 {
		updatedUsers = append(slices.Clone(users), seededUsers...)
	}

	return core.CatalogChangedDecision(seededBooks, updatedUsers)
}
