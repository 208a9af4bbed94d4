package seedcatalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/seedcatalog"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
)

func Test_Decide_Success_SeedsAnEmptyInstallation(t *testing.T) {
	// act
	result := seedcatalog.Decide(core.Books{}, core.Users{}, seedcatalog.BuildCommand(), sequentialIDs())

	// assert
	require.True(t, result.HasBooksToSave())
	require.True(t, result.HasUsersToSave())
	assert.Len(t, result.Books, 24)
	assert.Len(t, result.Users, 20)
	assert.Equal(t, "id-1", result.Books[0].ItemID)
	assert.Equal(t, "Engineering Mathematics", result.Books[0].Title)
	assert.Equal(t, "IT21B001", result.Users[0].RollNo)
	assert.Equal(t, "Tina Kapoor", result.Users[19].Name)
}

func Test_Decide_Idempotent_WhenCatalogIsNotEmpty(t *testing.T) {
	result := seedcatalog.Decide(fixtures.Books(), core.Users{}, seedcatalog.BuildCommand(), sequentialIDs())

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_KeepsRegisteredMembersAndSkipsTheirRollNumbers(t *testing.T) {
	// arrange
	users := core.Users{fixtures.User("IT21B001", "Already Registered", []string{"b"}, nil)}

	// act
	result := seedcatalog.Decide(core.Books{}, users, seedcatalog.BuildCommand(), sequentialIDs())

	// assert
	require.Len(t, result.Users, 20)
	assert.Equal(t, "Already Registered", result.Users[0].Name)
	assert.Equal(t, []string{"b"}, result.Users[0].Borrowed)
	assert.Equal(t, "IT21B002", result.Users[1].RollNo)
}

func Test_Decide_LeavesUsersUnchanged_WhenAllStarterMembersExist(t *testing.T) {
	result := seedcatalog.Decide(core.Books{}, seedcatalog.StarterUsers(), seedcatalog.BuildCommand(), sequentialIDs())

	assert.True(t, result.HasBooksToSave())
	assert.False(t, result.HasUsersToSave())
}

func Test_StarterUsers_HaveUniqueRollNumbers(t *testing.T) {
	seen := make(map[string]bool)
	for _, u := range seedcatalog.StarterUsers() {
		assert.False(t, seen[u.RollNo], "duplicate roll number %s", u.RollNo)
		seen[u.RollNo] = true
	}
}

func sequentialIDs() core.IDGenerator {
	n := 0

	return func() core.BookIDString {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
