package core

import (
	"errors"
	"slices"
	"sort"
)

// EditableBookFields lists the field names an edit may touch, in document key order.
func EditableBookFields() []string {
	return []string{KeyTitle, KeyAuthor, KeyPublisher, KeyYear, KeyCategory, KeyCopies}
}

// BookUpdate is a typed partial update of a book. Nil fields stay unchanged.
type BookUpdate struct {
	Title     *string
	Author    *string
	Publisher *string
	Year      *int
	Category  *string
	Copies    *int
}

// IsEmpty reports whether the update would change nothing.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Publisher == nil &&
		u.Year == nil && u.Category == nil && u.Copies == nil
}

// ApplyTo returns the book with all set fields replaced.
func (u BookUpdate) ApplyTo(b Book) Book {
	if u.Title != nil {
		b.Title = *u.Title
	}

	if u.Author != nil {
		b.Author = *u.Author
	}

	if u.Publisher != nil {
		b.Publisher = *u.Publisher
	}

	if u.Year != nil {
		b.Year = *u.Year
	}

	if u.Category != nil {
		b.Category = *u.Category
	}

	if u.Copies != nil {
		b.Copies = *u.Copies
	}

	return b
}

// ParseBookUpdate converts loosely typed field values (as typed into a form) into a BookUpdate.
//
// Unknown field names fail with ErrFieldNotEditable and nothing is applied.
// Values for year and copies that are not integers are left out of the update;
// their field names are returned as skipped, sorted.
func ParseBookUpdate(fields map[string]string) (BookUpdate, []string, error) {
	update := BookUpdate{}
	skipped := make([]string, 0)
	editable := EditableBookFields()

	for name, raw := range fields {
		if !slices.Contains(editable, name) {
			return BookUpdate{}, nil, errors.Join(ErrFieldNotEditable, errors.New(name))
		}

		value := raw

		switch name {
		case KeyTitle:
			update.Title = &value
		case KeyAuthor:
			update.Author = &value
		case KeyPublisher:
			update.Publisher = &value
		case KeyCategory:
			update.Category = &value
		case KeyYear:
			if n, ok := ParseInt(raw); ok {
				update.Year = &n
			} else {
				skipped = append(skipped, name)
			}
		case KeyCopies:
			if n, ok := ParseInt(raw); ok {
				update.Copies = &n
			} else {
				skipped = append(skipped, name)
			}
		}
	}

	sort.Strings(skipped)

	return update, skipped, nil
}
