package listbooks

import (
	"maps"
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// BookList is the result of the listing query.
type BookList struct {
	// Books holds the matching books in catalog order.
	Books core.Books
	Count int

	// Total is the size of the whole catalog.
	Total int

	categories []string
	titlesByID map[core.BookIDString]string
}

// Categories returns every category of the catalog, sorted and without duplicates.
func (l BookList) Categories() []string {
	return slices.Clone(l.categories)
}

// TitlesByID maps the id of every catalog book to its title.
func (l BookList) TitlesByID() map[core.BookIDString]string {
	return maps.Clone(l.titlesByID)
}
