package registeruser

import (
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to register a library member.
type Command struct {
	Name    string
	Email   string
	RollNo  core.RollNoString
	Contact string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. Surrounding whitespace of the roll number is dropped.
func BuildCommand(name string, email string, rollNo core.RollNoString, contact string) Command {
	return Command{
		Name:    name,
		Email:   email,
		RollNo:  strings.TrimSpace(rollNo),
		Contact: contact,
	}
}
