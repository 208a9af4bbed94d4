package listusers

import (
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Project returns the members matching the query in stored order.
func Project(users core.Users, query Query) UserList {
	needle := strings.ToLower(query.Search)

	matches := make(core.Users, 0, len(users))
	for _, u := range users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.RollNo), needle) {

			matches = append(matches, u)
		}
	}

	return UserList{
		Users: matches,
		Count: len(matches),
	}
}
