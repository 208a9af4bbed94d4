// Package addbook implements the Add Book use case.
//
// A new catalog entry gets a freshly generated id that is not used by any stored book.
// Titles need not be unique. An empty category is stored as the default category.
package addbook
