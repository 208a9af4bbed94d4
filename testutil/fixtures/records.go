package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// Stable ids used across tests.
const (
	BookIDMath     = "100000000000001"
	BookIDC        = "100000000000002"
	BookIDNetworks = "100000000000003"

	RollArjun = "IT21B001"
	RollNeha  = "IT21B002"
)

// Book returns a catalog entry with the given id and copies.
func Book(id core.BookIDString, title string, copies int) core.Book {
	return core.BuildBook(id, title, "Some Author", "TechPub", 2019, "Computer Science", copies)
}

// Books returns three books with 3, 1 and 2 copies.
func Books() core.Books {
	return core.Books{
		core.BuildBook(BookIDMath, "Engineering Mathematics", "R. K. Jain", "TechPub", 2019, "Mathematics", 3),
		core.BuildBook(BookIDC, "Programming in C", "Kernighan & Ritchie", "CJ Press", 2018, "Computer Science", 1),
		core.BuildBook(BookIDNetworks, "Computer Networks", "A. S. Tanenbaum", "Pearson", 2018, "Computer Science", 2),
	}
}

// User returns a member with the given lists.
func User(rollNo core.RollNoString, name string, borrowed []string, reserved []string) core.User {
	u := core.BuildUser(name, "member@itcollege.ac.in", rollNo, "+91-9999900000")
	if borrowed != nil {
		u.Borrowed = borrowed
	}

	if reserved != nil {
		u.Reserved = reserved
	}

	return u
}

// Users returns two members without loans or reservations.
func Users() core.Users {
	return core.Users{
		User(RollArjun, "Arjun Sharma", nil, nil),
		User(RollNeha, "Neha Singh", nil, nil),
	}
}

// GivenBooks stores the catalog.
func GivenBooks(t *testing.T, store shell.RecordStore, books core.Books) {
	t.Helper()

	err := shell.SaveBooks(context.Background(), store, books)
	require.NoError(t, err, "error in arranging test data")
}

// GivenUsers stores the member list.
func GivenUsers(t *testing.T, store shell.RecordStore, users core.Users) {
	t.Helper()

	err := shell.SaveUsers(context.Background(), store, users)
	require.NoError(t, err, "error in arranging test data")
}

// StoredBooks loads the catalog.
func StoredBooks(t *testing.T, store shell.RecordStore) core.Books {
	t.Helper()

	books, err := shell.LoadBooks(context.Background(), store)
	require.NoError(t, err, "error in loading stored books")

	return books
}

// StoredUsers loads the member list.
func StoredUsers(t *testing.T, store shell.RecordStore) core.Users {
	t.Helper()

	users, err := shell.LoadUsers(context.Background(), store)
	require.NoError(t, err, "error in loading stored users")

	return users
}

// FixedIDs returns an id generator handing out the given ids in order, then repeating the last one.
func FixedIDs(ids ...core.BookIDString) core.IDGenerator {
	next := 0

	return func() core.BookIDString {
		id := ids[next]
		if next < len(ids)-1 {
			next++
		}

		return id
	}
}
