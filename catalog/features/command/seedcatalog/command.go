package seedcatalog

import (
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "SeedCatalog"
)

// Command represents the intent to fill an empty installation with a starter set.
// Book ids in Books are ignored; every seeded book gets a new id.
type Command struct {
	Books core.Books
	Users core.Users
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command carrying the built-in starter set.
func BuildCommand() Command {
	return BuildCommandWith(StarterBooks(), StarterUsers())
}

// BuildCommandWith creates a new Command carrying the given starter set.
func BuildCommandWith(books core.Books, users core.Users) Command {
	return Command{
		Books: slices.Clone(books),
		Users: core.CloneUsers(users),
	}
}
