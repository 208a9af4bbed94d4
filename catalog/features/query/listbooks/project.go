package listbooks

import (
	"slices"
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Project implements the query logic of the catalog listing.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The complete catalog
//	WHEN: ListBooks query is executed
//	THEN: the books matching search and category are returned in catalog order
//	INCLUDES: books whose title or author contains the search term, ignoring case
//	INCLUDES: books of the category; an empty category or "All" matches any
func Project(books core.Books, query Query) BookList {
	needle := strings.ToLower(query.Search)

	matches := make(core.Books, 0, len(books))
	categories := make([]string, 0)
	titles := make(map[core.BookIDString]string, len(books))

	for _, b := range books {
		titles[b.ItemID] = b.Title

		if !slices.Contains(categories, b.Category) {
			categories = append(categories, b.Category)
		}

		if matchesSearch(b, needle) && matchesCategory(b, query.Category) {
			matches = append(matches, b)
		}
	}

	slices.Sort(categories)

	return BookList{
		Books:      matches,
		Count:      len(matches),
		Total:      len(books),
		categories: categories,
		titlesByID: titles,
	}
}

func matchesSearch(b core.Book, needle string) bool {
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Author), needle)
}

func matchesCategory(b core.Book, category string) bool {
	return category == "" || category == AllCategories || b.Category == category
}
