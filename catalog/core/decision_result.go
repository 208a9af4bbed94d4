package core

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods.
// Books and Users carry the complete new collections; a nil collection means "unchanged, do not save".
type DecisionResult struct {
	Outcome string // "idempotent", "no_match", "success", or "error"
	Books   Books
	Users   Users
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	noMatchOutcome    = "no_match"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: idempotentOutcome}
}

// NoMatchDecision creates a DecisionResult for a reference to an unknown book or user.
// Nothing changes and nothing is saved.
func NoMatchDecision() DecisionResult {
	return DecisionResult{Outcome: noMatchOutcome}
}

// BooksChangedDecision creates a DecisionResult replacing the catalog.
func BooksChangedDecision(books Books) DecisionResult {
	return DecisionResult{Outcome: successOutcome, Books: nonNilBooks(books)}
}

// UsersChangedDecision creates a DecisionResult replacing the member list.
func UsersChangedDecision(users Users) DecisionResult {
	return DecisionResult{Outcome: successOutcome, Users: nonNilUsers(users)}
}

// CatalogChangedDecision creates a DecisionResult replacing the catalog, the member list, or both.
// A nil collection is left unchanged.
func CatalogChangedDecision(books Books, users Users) DecisionResult {
	return DecisionResult{Outcome: successOutcome, Books: books, Users: users}
}

// ErrorDecision creates a DecisionResult for a rejected command.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{Outcome: errorOutcome, Err: err}
}

// IsIdempotent reports whether the command was already satisfied.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// IsNoMatch reports whether the command referenced nothing that exists.
func (r DecisionResult) IsNoMatch() bool {
	return r.Outcome == noMatchOutcome
}

// HasBooksToSave returns true if the catalog must be written.
func (r DecisionResult) HasBooksToSave() bool {
	return r.Outcome == successOutcome && r.Books != nil
}

// HasUsersToSave returns true if the member list must be written.
func (r DecisionResult) HasUsersToSave() bool {
	return r.Outcome == successOutcome && r.Users != nil
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}

func nonNilBooks(books Books) Books {
	if books == nil {
		return make(Books, 0)
	}

	return books
}

func nonNilUsers(users Users) Users {
	if users == nil {
		return make(Users, 0)
	}

	return users
}
