package reservebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/reservebook"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
)

func Test_Decide_Success_AppendsToReservedList(t *testing.T) {
	// arrange
	users := core.Users{
		fixtures.User(fixtures.RollArjun, "Arjun Sharma", []string{fixtures.BookIDMath}, []string{fixtures.BookIDC}),
	}

	// act
	result := reservebook.Decide(users, reservebook.BuildCommand(fixtures.BookIDMath, fixtures.RollArjun))

	// assert
	assert.True(t, result.HasUsersToSave())
	assert.Equal(t, []string{fixtures.BookIDC, fixtures.BookIDMath}, result.Users[0].Reserved)
	assert.Equal(t, []string{fixtures.BookIDMath}, result.Users[0].Borrowed)
}

func Test_Decide_Idempotent_WhenAlreadyReserved(t *testing.T) {
	users := core.Users{fixtures.User(fixtures.RollArjun, "Arjun Sharma", nil, []string{fixtures.BookIDMath})}

	result := reservebook.Decide(users, reservebook.BuildCommand(fixtures.BookIDMath, fixtures.RollArjun))

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_NoMatch_WhenRollNumberIsUnknown(t *testing.T) {
	result := reservebook.Decide(core.Users{}, reservebook.BuildCommand(fixtures.BookIDMath, fixtures.RollArjun))

	assert.True(t, result.IsNoMatch())
}
