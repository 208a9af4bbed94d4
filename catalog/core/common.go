package core

import "errors"

// Instead of implementing full value objects, I'm using some alias types here ...

// BookIDString represents a book identifier. Identifiers are opaque, older catalogs use numeric strings.
type BookIDString = string

// RollNoString represents the roll number that identifies a library member.
type RollNoString = string

const (
	// DefaultYear is used when a stored book has no usable year.
	DefaultYear = 2023

	// DefaultCategory is used when a stored book has no category.
	DefaultCategory = "General"

	// DefaultCopies is used when a stored book has no usable copy count.
	DefaultCopies = 1

	shortIDLength = 6
)

var (
	// ErrFieldNotEditable is returned when an edit names a field outside the editable set.
	ErrFieldNotEditable = errors.New("field is not editable")

	// ErrDuplicateRollNo is returned when a member with the same roll number already exists.
	ErrDuplicateRollNo = errors.New("a user with this roll number already exists")

	// ErrEmptyRollNo is returned when a member is registered without a roll number.
	ErrEmptyRollNo = errors.New("roll number must not be empty")
)

// IDGenerator produces new book identifiers.
type IDGenerator func() BookIDString

// ShortID returns the last six characters of an identifier for display.
// Shorter identifiers are returned unchanged.
func ShortID(id BookIDString) string {
	runes := []rune(id)
	if len(runes) <= shortIDLength {
		return id
	}

	return string(runes[len(runes)-shortIDLength:])
}
