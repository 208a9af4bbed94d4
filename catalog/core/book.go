package core

import "slices"

// Document keys of a stored book.
const (
	KeyItemID    = "item_id"
	KeyTitle     = "title"
	KeyAuthor    = "author"
	KeyPublisher = "publisher"
	KeyYear      = "year"
	KeyCategory  = "category"
	KeyCopies    = "copies"
)

// Book is one catalog title. Copies is informational and is not decremented by lending.
type Book struct {
	ItemID    BookIDString
	Title     string
	Author    string
	Publisher string
	Year      int
	Category  string
	Copies    int
}

// Books is an ordered catalog.
type Books = []Book

// BuildBook creates a new Book with the given identifier.
// An empty category falls back to DefaultCategory.
func BuildBook(
	itemID BookIDString,
	title string,
	author string,
	publisher string,
	year int,
	category string,
	copies int,
) Book {

	if category == "" {
		category = DefaultCategory
	}

	return Book{
		ItemID:    itemID,
		Title:     title,
		Author:    author,
		Publisher: publisher,
		Year:      year,
		Category:  category,
		Copies:    copies,
	}
}

// BookFromDocument converts a stored document into a Book, applying the catalog defaults
// for missing or uncoercible values. A document without item_id gets a fresh one from newID.
func BookFromDocument(doc map[string]any, newID IDGenerator) Book {
	itemID := stringField(doc, KeyItemID, "")
	if _, hasID := doc[KeyItemID]; !hasID && newID != nil {
		itemID = newID()
	}

	return Book{
		ItemID:    itemID,
		Title:     stringField(doc, KeyTitle, ""),
		Author:    stringField(doc, KeyAuthor, ""),
		Publisher: stringField(doc, KeyPublisher, ""),
		Year:      intField(doc, KeyYear, DefaultYear),
		Category:  stringField(doc, KeyCategory, DefaultCategory),
		Copies:    intField(doc, KeyCopies, DefaultCopies),
	}
}

// ToDocument converts the Book into its stored form.
func (b Book) ToDocument() map[string]any {
	return map[string]any{
		KeyItemID:    b.ItemID,
		KeyTitle:     b.Title,
		KeyAuthor:    b.Author,
		KeyPublisher: b.Publisher,
		KeyYear:      b.Year,
		KeyCategory:  b.Category,
		KeyCopies:    b.Copies,
	}
}

// IndexOfBook returns the position of the book with the given id, or -1.
func IndexOfBook(books Books, itemID BookIDString) int {
	return slices.IndexFunc(books, func(b Book) bool {
		return b.ItemID == itemID
	})
}

// HasBookID reports whether any book carries the given id.
func HasBookID(books Books, itemID BookIDString) bool {
	return IndexOfBook(books, itemID) >= 0
}
