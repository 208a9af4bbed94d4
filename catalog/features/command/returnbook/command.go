package returnbook

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to take a borrowed book back from a member.
type Command struct {
	BookID core.BookIDString
	RollNo core.RollNoString
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, rollNo core.RollNoString) Command {
	return Command{
		BookID: bookID,
		RollNo: rollNo,
	}
}
