// Package reservebook implements the Reserve Book use case.
//
// A reservation appends a book id to the reserved list of a member. Reservations are
// independent of loans: a member may reserve a book they currently borrow.
package reservebook
