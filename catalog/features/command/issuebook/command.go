package issuebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "IssueBook"

	// DefaultPeriodDays is the loan period used when none is given.
	DefaultPeriodDays = 14
)

// Command represents the intent to issue a book to a member.
type Command struct {
	BookID core.BookIDString
	RollNo core.RollNoString

	// PeriodDays is accepted for compatibility; no due date is derived from it.
	PeriodDays int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. A non-positive period falls back to DefaultPeriodDays.
func BuildCommand(bookID core.BookIDString, rollNo core.RollNoString, periodDays int) Command {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}

	return Command{
		BookID:     bookID,
		RollNo:     rollNo,
		PeriodDays: periodDays,
	}
}
