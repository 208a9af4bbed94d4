package postgresengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/engine"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
	"github.com/AntonStoeckl/library-catalog-go/recordstore/postgresengine"
	"github.com/AntonStoeckl/library-catalog-go/testutil/pgtest"
)

func Test_Postgres_Load_When_CollectionWasNeverSaved_ReturnsEmpty(t *testing.T) {
	// arrange
	rs := pgtest.CreateWrapper(t).RecordStore()

	// act
	docs, err := rs.Load(context.Background(), recordstore.Users)

	// assert
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func Test_Postgres_SaveThenLoad_RoundTripsDocuments(t *testing.T) {
	// arrange
	ctx := context.Background()
	rs := pgtest.CreateWrapper(t).RecordStore()
	users := recordstore.Documents{
		{"name": "Arjun Sharma", "roll_no": "IT21B001", "borrowed": []any{"b1", "b2"}, "reserved": []any{}},
	}

	// act
	saveErr := rs.Save(ctx, recordstore.Users, users)
	docs, loadErr := rs.Load(ctx, recordstore.Users)

	// assert
	require.NoError(t, saveErr)
	require.NoError(t, loadErr)
	require.Len(t, docs, 1)
	assert.Equal(t, "IT21B001", docs[0]["roll_no"])
	assert.Equal(t, []any{"b1", "b2"}, docs[0]["borrowed"])
	assert.Equal(t, []any{}, docs[0]["reserved"])
}

func Test_Postgres_Save_ReplacesTheWholeCollection(t *testing.T) {
	ctx := context.Background()
	rs := pgtest.CreateWrapper(t).RecordStore()
	require.NoError(t, rs.Save(ctx, recordstore.Books, recordstore.Documents{{"item_id": "1"}, {"item_id": "2"}}))

	require.NoError(t, rs.Save(ctx, recordstore.Books, recordstore.Documents{{"item_id": "3"}}))
	docs, err := rs.Load(ctx, recordstore.Books)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "3", docs[0]["item_id"])
}

func Test_Postgres_Engine_IssueAndCounts(t *testing.T) {
	// arrange
	ctx := context.Background()
	rs := pgtest.CreateWrapper(t, postgresengine.WithStrictDecoding()).RecordStore()
	e, err := engine.NewEngine(rs)
	require.NoError(t, err)

	seeded, err := e.EnsureSampleData(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	books, err := e.ListBooks(ctx)
	require.NoError(t, err)

	// act
	result, err := e.IssueBook(ctx, books[0].ItemID, "IT21B001", 0)
	require.NoError(t, err)
	c, err := e.Counts(ctx)

	// assert
	require.NoError(t, err)
	assert.False(t, result.NoMatch)
	assert.Equal(t, 24, c.TotalTitles)
	assert.Equal(t, 20, c.TotalUsers)
	assert.Equal(t, 1, c.ActiveLoans)
}
