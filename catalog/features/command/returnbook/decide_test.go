package returnbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/returnbook"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
)

func Test_Decide_Success_RemovesOnlyTheFirstOccurrence(t *testing.T) {
	// arrange
	users := core.Users{
		fixtures.User(fixtures.RollArjun, "Arjun Sharma", []string{fixtures.BookIDMath, fixtures.BookIDC, fixtures.BookIDMath}, nil),
	}

	// act
	result := returnbook.Decide(users, returnbook.BuildCommand(fixtures.BookIDMath, fixtures.RollArjun))

	// assert
	assert.True(t, result.HasUsersToSave())
	assert.Equal(t, []string{fixtures.BookIDC, fixtures.BookIDMath}, result.Users[0].Borrowed)
}

func Test_Decide_Idempotent_WhenBookIsNotBorrowed(t *testing.T) {
	users := core.Users{fixtures.User(fixtures.RollArjun, "Arjun Sharma", []string{fixtures.BookIDC}, nil)}

	result := returnbook.Decide(users, returnbook.BuildCommand(fixtures.BookIDMath, fixtures.RollArjun))

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_NoMatch_WhenRollNumberIsUnknown(t *testing.T) {
	result := returnbook.Decide(fixtures.Users(), returnbook.BuildCommand(fixtures.BookIDMath, "IT99X999"))

	assert.True(t, result.IsNoMatch())
}

func Test_Decide_DoesNotTouchReservations(t *testing.T) {
	// arrange
	users := core.Users{
		fixtures.User(fixtures.RollArjun, "Arjun Sharma", []string{fixtures.BookIDMath}, []string{fixtures.BookIDMath}),
	}

	// act
	result := returnbook.Decide(users, returnbook.BuildCommand(fixtures.BookIDMath, fixtures.RollArjun))

	// assert
	assert.Empty(t, result.Users[0].Borrowed)
	assert.Equal(t, []string{fixtures.BookIDMath}, result.Users[0].Reserved)
}
