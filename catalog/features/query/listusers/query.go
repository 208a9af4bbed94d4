package listusers

import (
	"strings"
)

const (
	queryType = "ListUsers"
)

// Query represents the intent to list members.
type Query struct {
	Search string
}

// BuildQuery creates a new Query.
func BuildQuery(search string) Query {
	return Query{Search: strings.TrimSpace(search)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
