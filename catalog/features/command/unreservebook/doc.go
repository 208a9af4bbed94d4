// Package unreservebook implements the Unreserve Book use case: it removes the first
// occurrence of a book id from the reserved list of a member.
package unreservebook
