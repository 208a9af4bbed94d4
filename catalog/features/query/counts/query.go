package counts

const (
	queryType = "Counts"
)

// Query represents the intent to summarize the catalog.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
