package listbooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listbooks"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-catalog-go/testutil/memstore"
)

func Test_QueryHandler_Handle_ReturnsFreshlyLoadedBooks(t *testing.T) {
	// arrange
	store := memstore.New()
	fixtures.GivenBooks(t, store, fixtures.Books())
	handler := listbooks.NewQueryHandler(store)

	// act
	list, err := handler.Handle(context.Background(), listbooks.BuildQuery("", ""))

	// assert
	require.NoError(t, err)
	assert.Equal(t, fixtures.Books(), list.Books)
}

func Test_QueryHandler_Handle_LoadFailure_ShouldFail(t *testing.T) {
	// arrange
	store := memstore.New()
	store.FailLoad(recordstore.Books)
	handler := listbooks.NewQueryHandler(store)

	// act
	list, err := handler.Handle(context.Background(), listbooks.BuildQuery("", ""))

	// assert
	assert.ErrorIs(t, err, recordstore.ErrLoadingCollectionFailed)
	assert.Empty(t, list.Books)
}
