package listbooks

import (
	"strings"
)

const (
	queryType = "ListBooks"

	// AllCategories selects books of any category, like an empty category.
	AllCategories = "All"
)

// Query represents the intent to list catalog books.
type Query struct {
	Search   string
	Category string
}

// BuildQuery creates a new Query. Surrounding whitespace of the search term is ignored.
func BuildQuery(search string, category string) Query {
	return Query{
		Search:   strings.TrimSpace(search),
		Category: category,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
