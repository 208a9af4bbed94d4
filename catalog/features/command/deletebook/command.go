package deletebook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "DeleteBook"
)

// Command represents the intent to remove a book from the catalog.
type Command struct {
	BookID core.BookIDString
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString) Command {
	return Command{
		BookID: bookID,
	}
}
