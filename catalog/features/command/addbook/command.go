package addbook

const (
	commandType = "AddBook"
)

// Command represents the intent to add a title to the catalog.
type Command struct {
	Title     string
	Author    string
	Publisher string
	Year      int
	Category  string
	Copies    int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	title string,
	author string,
	publisher string,
	year int,
	category string,
	copies int,
) Command {

	return Command{
		Title:     title,
		Author:    author,
		Publisher: publisher,
		Year:      year,
		Category:  category,
		Copies:    copies,
	}
}
