// Package issuebook implements the Issue Book use case.
//
// Issuing appends a book id to the borrowed list of the member with the given roll number.
// The book id is not checked against the catalog and copies are never decremented.
// An unknown roll number changes nothing and is reported as a no-match outcome, an id that is
// already borrowed by the member is an idempotent no-op. In both cases nothing is written.
package issuebook
