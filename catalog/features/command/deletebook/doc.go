// Package deletebook implements the Delete Book use case.
//
// Deleting removes the book from the catalog and strips every reference to its id from the
// borrowed and reserved lists of all members. It is the only command that touches both
// collections; the handler takes the books lock before the users lock.
//
// Only changed collections are written. References to an id that is no longer in the catalog
// are still cleaned up, so a repeated delete repairs dangling references left by older data.
package deletebook
