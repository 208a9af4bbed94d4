package listusers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listusers"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-catalog-go/testutil/memstore"
)

func Test_QueryHandler_Handle_ReturnsAllMembers(t *testing.T) {
	// arrange
	store := memstore.New()
	fixtures.GivenUsers(t, store, fixtures.Users())
	handler := listusers.NewQueryHandler(store)

	// act
	list, err := handler.Handle(context.Background(), listusers.BuildQuery(""))

	// assert
	require.NoError(t, err)
	assert.Equal(t, fixtures.Users(), list.Users)
	assert.Equal(t, 2, list.Count)
}

func Test_QueryHandler_Handle_EmptyStore_ReturnsNoMembers(t *testing.T) {
	list, err := listusers.NewQueryHandler(memstore.New()).Handle(context.Background(), listusers.BuildQuery(""))

	require.NoError(t, err)
	assert.Empty(t, list.Users)
}

func Test_Project_SearchesNameAndRollNumber(t *testing.T) {
	byName := listusers.Project(fixtures.Users(), listusers.BuildQuery("neha"))
	byRoll := listusers.Project(fixtures.Users(), listusers.BuildQuery("it21b001"))

	require.Len(t, byName.Users, 1)
	assert.Equal(t, fixtures.RollNeha, byName.Users[0].RollNo)
	require.Len(t, byRoll.Users, 1)
	assert.Equal(t, fixtures.RollArjun, byRoll.Users[0].RollNo)
}
