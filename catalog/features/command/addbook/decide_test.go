package addbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/addbook"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
)

func Test_Decide_Success_AppendsTheBook(t *testing.T) {
	// arrange
	command := addbook.BuildCommand("Compiler Design", "Aho & Ullman", "Pearson", 2013, "Computer Science", 3)

	// act
	result := addbook.Decide(fixtures.Books(), command, fixtures.FixedIDs("200000000000001"))

	// assert
	require.True(t, result.HasBooksToSave())
	require.Len(t, result.Books, 4)
	assert.Equal(t,
		core.Book{
			ItemID:    "200000000000001",
			Title:     "Compiler Design",
			Author:    "Aho & Ullman",
			Publisher: "Pearson",
			Year:      2013,
			Category:  "Computer Science",
			Copies:    3,
		},
		result.Books[3],
	)
}

func Test_Decide_EmptyCategory_FallsBackToDefault(t *testing.T) {
	result := addbook.Decide(core.Books{}, addbook.BuildCommand("T", "A", "P", 2023, "", 1), fixtures.FixedIDs("x"))

	assert.Equal(t, core.DefaultCategory, result.Books[0].Category)
}

func Test_Decide_AllowsDuplicateTitles(t *testing.T) {
	// arrange
	books := fixtures.Books()
	command := addbook.BuildCommand(books[0].Title, books[0].Author, "Other", 2020, "Mathematics", 1)

	// act
	result := addbook.Decide(books, command, fixtures.FixedIDs("200000000000002"))

	// assert
	assert.Len(t, result.Books, 4)
	assert.Equal(t, result.Books[0].Title, result.Books[3].Title)
}
