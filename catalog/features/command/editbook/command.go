package editbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "EditBook"
)

// Command represents the intent to change fields of a book.
type Command struct {
	BookID core.BookIDString
	Update core.BookUpdate

	// SkippedFields lists the fields given as text that could not be coerced.
	SkippedFields []string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command from loosely typed field values as they come from a form
// or the command line.
func BuildCommand(bookID core.BookIDString, fields map[string]string) (Command, error) {
	update, skipped, err := core.ParseBookUpdate(fields)
	if err != nil {
		return Command{}, err
	}

	return Command{
		BookID:        bookID,
		Update:        update,
		SkippedFields: skipped,
	}, nil
}

// BuildTypedCommand creates a new Command from a typed update.
func BuildTypedCommand(bookID core.BookIDString, update core.BookUpdate) Command {
	return Command{
		BookID:        bookID,
		Update:        update,
		SkippedFields: make([]string, 0),
	}
}
