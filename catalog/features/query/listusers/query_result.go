package listusers

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// UserList is the result of the member listing query.
type UserList struct {
	Users core.Users
	Count int
}
