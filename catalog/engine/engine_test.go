package engine_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/engine"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/counts"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/recordstore/jsonfileengine"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
	"github.com/AntonStoeckl/library-catalog-go/testutil/observability/testdoubles"
)

func Test_NewEngine_ShouldFail_WithoutRecordStore(t *testing.T) {
	_, err := engine.NewEngine(nil)

	assert.ErrorIs(t, err, engine.ErrNilRecordStore)
}

func Test_SaveBooksThenListBooks_RoundTripsEveryField(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)

	// act
	require.NoError(t, eng.SaveBooks(ctx, fixtures.Books()))
	books, err := eng.ListBooks(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, fixtures.Books(), books)
}

func Test_SaveUsersThenListUsers_RoundTripsTheEmptySequence(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)

	// act
	require.NoError(t, eng.SaveUsers(ctx, core.Users{}))
	users, err := eng.ListUsers(ctx)

	// assert
	require.NoError(t, err)
	assert.Empty(t, users)
}

func Test_Counts_ThreeBooksAndOneBorrower(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	books := core.Books{
		fixtures.Book("idA", "A", 3),
		fixtures.Book("idB", "B", 1),
		fixtures.Book("idC", "C", 2),
	}
	require.NoError(t, eng.SaveBooks(ctx, books))
	require.NoError(t, eng.SaveUsers(ctx, core.Users{
		fixtures.User(fixtures.RollArjun, "Arjun Sharma", []string{"idA", "idB"}, nil),
	}))

	// act
	c, err := eng.Counts(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, c.TotalTitles)
	assert.Equal(t, 6, c.TotalCopies)
	assert.Equal(t, 2, c.ActiveLoans)
	assert.Equal(t, 0, c.Reservations)
	assert.Equal(t, 0, c.OverdueCount)
	assert.Equal(t, 1, c.AsMap()[counts.KeyTotalUsers])
}

func Test_IssueBook_IsIdempotent(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	require.NoError(t, eng.SaveUsers(ctx, fixtures.Users()))

	// act
	first, err := eng.IssueBook(ctx, fixtures.BookIDMath, fixtures.RollArjun, 14)
	require.NoError(t, err)
	second, err := eng.IssueBook(ctx, fixtures.BookIDMath, fixtures.RollArjun, 14)
	require.NoError(t, err)

	// assert
	assert.True(t, first.UsersSaved)
	assert.True(t, second.Idempotent)
	users, err := eng.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{fixtures.BookIDMath}, users[0].Borrowed)
}

func Test_UnknownRollNumber_LeavesUsersFileByteForByteUnchanged(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, dataDir := givenEngine(t)
	require.NoError(t, eng.SaveUsers(ctx, fixtures.Users()))
	before := readFile(t, dataDir, "users.json")

	// act
	issued, issueErr := eng.IssueBook(ctx, fixtures.BookIDMath, "IT99X999", 14)
	returned, returnErr := eng.ReturnBook(ctx, fixtures.BookIDMath, "IT99X999")
	reserved, reserveErr := eng.ReserveBook(ctx, fixtures.BookIDMath, "IT99X999")
	unreserved, unreserveErr := eng.UnreserveBook(ctx, fixtures.BookIDMath, "IT99X999")

	// assert
	require.NoError(t, issueErr)
	require.NoError(t, returnErr)
	require.NoError(t, reserveErr)
	require.NoError(t, unreserveErr)
	assert.True(t, issued.NoMatch)
	assert.False(t, returned)
	assert.True(t, reserved.NoMatch)
	assert.True(t, unreserved.NoMatch)
	assert.Equal(t, before, readFile(t, dataDir, "users.json"))
}

func Test_ReturnBook_ReportsWhetherTheBookWasRemoved(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	require.NoError(t, eng.SaveUsers(ctx, fixtures.Users()))
	_, err := eng.IssueBook(ctx, fixtures.BookIDC, fixtures.RollNeha, 0)
	require.NoError(t, err)

	// act
	returned, err := eng.ReturnBook(ctx, fixtures.BookIDC, fixtures.RollNeha)
	require.NoError(t, err)
	returnedAgain, err := eng.ReturnBook(ctx, fixtures.BookIDC, fixtures.RollNeha)
	require.NoError(t, err)

	// assert
	assert.True(t, returned)
	assert.False(t, returnedAgain)
}

func Test_DeleteBook_CascadesToBorrowedAndReserved(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	require.NoError(t, eng.SaveBooks(ctx, fixtures.Books()))
	require.NoError(t, eng.SaveUsers(ctx, core.Users{
		fixtures.User(fixtures.RollArjun, "Arjun Sharma", []string{fixtures.BookIDMath, fixtures.BookIDC}, []string{fixtures.BookIDMath}),
		fixtures.User(fixtures.RollNeha, "Neha Singh", nil, []string{fixtures.BookIDMath}),
	}))

	// act
	result, err := eng.DeleteBook(ctx, fixtures.BookIDMath)

	// assert
	require.NoError(t, err)
	assert.True(t, result.BooksSaved)
	assert.True(t, result.UsersSaved)

	books, err := eng.ListBooks(ctx)
	require.NoError(t, err)
	assert.False(t, core.HasBookID(books, fixtures.BookIDMath))

	users, err := eng.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		assert.False(t, u.HasBorrowed(fixtures.BookIDMath), "borrowed list of %s", u.RollNo)
		assert.False(t, u.HasReserved(fixtures.BookIDMath), "reserved list of %s", u.RollNo)
	}
	assert.Equal(t, []string{fixtures.BookIDC}, users[0].Borrowed)
}

func Test_EditBook_CoercesYear(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	require.NoError(t, eng.SaveBooks(ctx, fixtures.Books()))

	// act
	foundBad, skipped, errBad := eng.EditBook(ctx, fixtures.BookIDMath, map[string]string{core.KeyYear: "not-a-number"})
	booksAfterBad, err := eng.ListBooks(ctx)
	require.NoError(t, err)
	foundGood, _, errGood := eng.EditBook(ctx, fixtures.BookIDMath, map[string]string{core.KeyYear: "1999"})
	booksAfterGood, err := eng.ListBooks(ctx)
	require.NoError(t, err)

	// assert
	require.NoError(t, errBad)
	require.NoError(t, errGood)
	assert.True(t, foundBad)
	assert.True(t, foundGood)
	assert.Equal(t, []string{core.KeyYear}, skipped)
	assert.Equal(t, 2019, booksAfterBad[0].Year)
	assert.Equal(t, 1999, booksAfterGood[0].Year)
}

func Test_EditBook_ShouldFail_ForFieldsOutsideTheEditableSet(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	require.NoError(t, eng.SaveBooks(ctx, fixtures.Books()))

	// act
	found, _, err := eng.EditBook(ctx, fixtures.BookIDMath, map[string]string{core.KeyTitle: "New", "isbn": "123"})

	// assert
	assert.ErrorIs(t, err, core.ErrFieldNotEditable)
	assert.False(t, found)
	books, listErr := eng.ListBooks(ctx)
	require.NoError(t, listErr)
	assert.Equal(t, "Engineering Mathematics", books[0].Title)
}

func Test_EditBookTyped_UnknownBook_IsNotFound(t *testing.T) {
	ctx := context.Background()
	eng, _ := givenEngine(t)
	copies := 2

	found, err := eng.EditBookTyped(ctx, "gone", core.BookUpdate{Copies: &copies})

	require.NoError(t, err)
	assert.False(t, found)
}

func Test_MalformedFile_LoadsAsEmpty(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, dataDir := givenEngine(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "books.json"), []byte(`{"oops": `), 0o600))

	// act
	books, err := eng.ListBooks(ctx)

	// assert
	require.NoError(t, err)
	assert.Empty(t, books)
}

func Test_AddBook_And_RegisterUser(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t, engine.WithIDGenerator(fixtures.FixedIDs("400000000000001")))

	// act
	id, addErr := eng.AddBook(ctx, "VLSI Design", "Wayne Wolf", "Pearson", 2016, "Electronics", 3)
	registerErr := eng.RegisterUser(ctx, "Rina Das", "rina.das@itcollege.ac.in", "IT21B018", "+91-9999900018")
	duplicateErr := eng.RegisterUser(ctx, "Rina Again", "", "IT21B018", "")

	// assert
	require.NoError(t, addErr)
	require.NoError(t, registerErr)
	assert.ErrorIs(t, duplicateErr, core.ErrDuplicateRollNo)
	assert.Equal(t, "400000000000001", id)
	list, err := eng.SearchBooks(ctx, "vlsi", "Electronics")
	require.NoError(t, err)
	require.Len(t, list.Books, 1)
	assert.Equal(t, id, list.Books[0].ItemID)
	users, err := eng.SearchUsers(ctx, "rina")
	require.NoError(t, err)
	assert.Equal(t, 1, users.Count)
}

func Test_EnsureSampleData_SeedsOnlyAnEmptyCatalog(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)

	// act
	seeded, err := eng.EnsureSampleData(ctx)
	require.NoError(t, err)
	seededAgain, err := eng.EnsureSampleData(ctx)
	require.NoError(t, err)

	// assert
	assert.True(t, seeded)
	assert.False(t, seededAgain)
	c, err := eng.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, c.TotalTitles)
	assert.Equal(t, 20, c.TotalUsers)
}

func Test_ConcurrentIssues_AreAllKept(t *testing.T) {
	// arrange
	ctx := context.Background()
	eng, _ := givenEngine(t)
	require.NoError(t, eng.SaveUsers(ctx, fixtures.Users()))
	const issues = 20

	// act
	var wg sync.WaitGroup
	errs := make(chan error, issues)
	for i := 0; i < issues; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := eng.IssueBook(ctx, fmt.Sprintf("book-%02d", n), fixtures.RollArjun, 14)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	// assert
	for err := range errs {
		require.NoError(t, err)
	}
	users, err := eng.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users[0].Borrowed, issues)
}

func Test_LoanStubs_ReturnNothing(t *testing.T) {
	ctx := context.Background()
	eng, dataDir := givenEngine(t)

	eng.SaveLoans(ctx, nil)

	assert.Empty(t, eng.ListLoans(ctx))
	assert.Empty(t, eng.OverdueLoans(ctx))
	assert.Zero(t, eng.TotalFinesForUser(ctx, fixtures.RollArjun))
	_, err := os.Stat(filepath.Join(dataDir, "loans.json"))
	assert.True(t, os.IsNotExist(err))
}

func Test_Engine_ReportsHandlerMetricsAndLogs(t *testing.T) {
	// arrange
	ctx := context.Background()
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	logger, logSpy := testdoubles.NewLogger()
	eng, _ := givenEngine(t, engine.WithMetrics(metricsSpy), engine.WithLogger(logger))

	// act
	_, err := eng.IssueBook(ctx, fixtures.BookIDMath, "IT99X999", 14)

	// assert
	require.NoError(t, err)
	assert.True(t, metricsSpy.HasCounterRecordWithLabel(shell.CommandHandlerNoMatchMetric, shell.LogAttrCommandType, "IssueBook"))
	assert.True(t, logSpy.HasLog(slog.LevelInfo, shell.LogMsgCommandCompleted))
}

func givenEngine(t *testing.T, options ...engine.Option) (*engine.Engine, string) {
	t.Helper()

	dataDir := t.TempDir()
	store, err := jsonfileengine.NewRecordStore(dataDir)
	require.NoError(t, err, "error in arranging test data")

	eng, err := engine.NewEngine(store, options...)
	require.NoError(t, err, "error in arranging test data")

	return eng, dataDir
}

func readFile(t *testing.T, dir, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	return data
}
