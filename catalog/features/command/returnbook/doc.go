// Package returnbook implements the Return Book use case.
//
// Returning removes the first occurrence of a book id from the borrowed list of a member.
// The handler reports whether anything was removed; unknown members and books that are not
// borrowed are not errors.
package returnbook
