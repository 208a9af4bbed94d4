package shell

import (
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// HandlerResult represents the outcome of a command handler execution.
// Unknown references and repeated operations are business outcomes, not errors.
type HandlerResult struct {
	// Idempotent indicates that the requested state was already in place and nothing was written.
	Idempotent bool

	// NoMatch indicates that the command referenced an unknown book or user and nothing was written.
	NoMatch bool

	// SkippedFields lists edit fields whose values could not be coerced and were left unchanged.
	SkippedFields []string

	// BooksSaved and UsersSaved tell which collections were rewritten.
	BooksSaved bool
	UsersSaved bool

	// CreatedBookID is the id assigned to a book added by the command.
	CreatedBookID core.BookIDString
}

// NewSuccessResult creates a HandlerResult for an operation that wrote the given collections.
func NewSuccessResult(booksSaved, usersSaved bool) HandlerResult {
	return HandlerResult{BooksSaved: booksSaved, UsersSaved: usersSaved}
}

// NewIdempotentResult creates a HandlerResult for idempotent operations.
func NewIdempotentResult() HandlerResult {
	return HandlerResult{Idempotent: true}
}

// NewNoMatchResult creates a HandlerResult for operations on unknown references.
func NewNoMatchResult() HandlerResult {
	return HandlerResult{NoMatch: true}
}

// NewErrorResult creates a HandlerResult for failed operations.
func NewErrorResult() HandlerResult {
	return HandlerResult{}
}

// WithSkippedFields returns a copy of the result that reports the given skipped fields.
func (r HandlerResult) WithSkippedFields(fields []string) HandlerResult {
	r.SkippedFields = slices.Clone(fields)
	return r
}

// WithCreatedBookID returns a copy of the result that reports the id of a newly added book.
func (r HandlerResult) WithCreatedBookID(id core.BookIDString) HandlerResult {
	r.CreatedBookID = id
	return r
}

// BusinessOutcome classifies the result for logs, metrics and spans.
func (r HandlerResult) BusinessOutcome() string {
	switch {
	case r.Idempotent:
		return StatusIdempotent
	case r.NoMatch:
		return StatusNoMatch
	default:
		return StatusSuccess
	}
}
