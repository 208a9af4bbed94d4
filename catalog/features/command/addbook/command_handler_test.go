package addbook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/addbook"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-catalog-go/testutil/memstore"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	store := memstore.New()
	handler := addbook.NewCommandHandler(store)
	command := addbook.BuildCommand("Machine Learning", "Tom M. Mitchell", "McGraw-Hill", 2017, "Computer Science", 4)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.BooksSaved)
	assert.NotEmpty(t, result.CreatedBookID)
	stored := fixtures.StoredBooks(t, store)
	require.Len(t, stored, 1)
	assert.Equal(t, result.CreatedBookID, stored[0].ItemID)
	assert.Equal(t, "Machine Learning", stored[0].Title)
}

func Test_CommandHandler_Handle_SkipsIDsAlreadyInTheCatalog(t *testing.T) {
	// arrange
	store := memstore.New()
	fixtures.GivenBooks(t, store, fixtures.Books())
	handler := addbook.NewCommandHandler(
		store,
		addbook.WithIDGenerator(fixtures.FixedIDs(fixtures.BookIDMath, fixtures.BookIDC, "300000000000001")),
	)

	// act
	result, err := handler.Handle(context.Background(), addbook.BuildCommand("T", "A", "P", 2020, "General", 1))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "300000000000001", result.CreatedBookID)
	stored := fixtures.StoredBooks(t, store)
	assert.Len(t, stored, 4)
	assert.True(t, core.HasBookID(stored, "300000000000001"))
}
