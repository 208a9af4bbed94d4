package reservebook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/reservebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-catalog-go/testutil/memstore"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	store := memstore.New()
	fixtures.GivenUsers(t, store, fixtures.Users())
	handler := reservebook.NewCommandHandler(store, reservebook.WithCollectionLocks(shell.NewCollectionLocks()))

	// act
	result, err := handler.Handle(context.Background(), reservebook.BuildCommand(fixtures.BookIDC, fixtures.RollNeha))

	// assert
	require.NoError(t, err)
	assert.True(t, result.UsersSaved)
	assert.Equal(t, []string{fixtures.BookIDC}, fixtures.StoredUsers(t, store)[1].Reserved)
}

func Test_CommandHandler_Handle_UnknownRollNumber_WritesNothing(t *testing.T) {
	// arrange
	store := memstore.New()
	fixtures.GivenUsers(t, store, fixtures.Users())
	before := store.Raw(recordstore.Users)
	handler := reservebook.NewCommandHandler(store)

	// act
	result, err := handler.Handle(context.Background(), reservebook.BuildCommand(fixtures.BookIDC, "IT99X999"))

	// assert
	require.NoError(t, err)
	assert.True(t, result.NoMatch)
	assert.Equal(t, before, store.Raw(recordstore.Users))
}
