package counts

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Project derives the summary from the catalog and the members.
//
// Query Logic:
//
//	TotalTitles: number of catalog entries, duplicates included
//	TotalCopies: sum of copies
//	TotalUsers: number of members
//	ActiveLoans: sum of the lengths of all borrowed lists
//	Reservations: sum of the lengths of all reserved lists
//	OverdueCount: always 0
func Project(books core.Books, users core.Users) Counts {
	c := Counts{
		TotalTitles: len(books),
		TotalUsers:  len(users),
	}

	for _, b := range books {
		c.TotalCopies += b.Copies
	}

	for _, u := range users {
		c.ActiveLoans += len(u.Borrowed)
		c.Reservations += len(u.Reserved)
	}

	return c
}
