package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

func Test_UserFromDocument_DefaultsMissingListsToEmpty(t *testing.T) {
	// arrange
	doc := map[string]any{"name": "Arjun Sharma", "roll_no": "IT21B001"}

	// act
	user := core.UserFromDocument(doc)

	// assert
	assert.Equal(t, "Arjun Sharma", user.Name)
	assert.Equal(t, "IT21B001", user.RollNo)
	assert.NotNil(t, user.Borrowed)
	assert.Empty(t, user.Borrowed)
	assert.NotNil(t, user.Reserved)
	assert.Empty(t, user.Reserved)
}

func Test_UserFromDocument_FormatsNumericListEntriesAsStrings(t *testing.T) {
	doc := map[string]any{"borrowed": []any{float64(123456789012345), "b2"}, "reserved": "not-a-list"}

	user := core.UserFromDocument(doc)

	assert.Equal(t, []string{"123456789012345", "b2"}, user.Borrowed)
	assert.Empty(t, user.Reserved)
}

func Test_User_DocumentRoundTrip_KeepsEveryFieldAndListOrder(t *testing.T) {
	// arrange
	original := core.User{
		Name:     "Bhavya Patel",
		Email:    "bhavya.patel@itcollege.ac.in",
		RollNo:   "IT21B002",
		Contact:  "+91-9999900002",
		Borrowed: []string{"b3", "b1", "b2"},
		Reserved: []string{"b1"},
	}

	// act
	doc := original.ToDocument()
	restored := core.UserFromDocument(map[string]any{
		"name":     doc["name"],
		"email":    doc["email"],
		"roll_no":  doc["roll_no"],
		"contact":  doc["contact"],
		"borrowed": toAnySlice(doc["borrowed"].([]string)),
		"reserved": toAnySlice(doc["reserved"].([]string)),
	})

	// assert
	assert.Equal(t, original, restored)
}

func Test_User_ToDocument_StoresNilListsAsEmpty(t *testing.T) {
	doc := core.User{Name: "X"}.ToDocument()

	assert.Equal(t, []string{}, doc["borrowed"])
	assert.Equal(t, []string{}, doc["reserved"])
}

func Test_User_Clone_DoesNotAliasLists(t *testing.T) {
	original := core.BuildUser("A", "a@x", "R1", "1")
	original.Borrowed = append(original.Borrowed, "b1")

	clone := original.Clone()
	clone.Borrowed[0] = "changed"

	assert.Equal(t, "b1", original.Borrowed[0])
}

func Test_IndexOfUser_ReturnsFirstMatch(t *testing.T) {
	users := core.Users{
		core.BuildUser("First", "", "R1", ""),
		core.BuildUser("Second", "", "R1", ""),
	}

	assert.Equal(t, 0, core.IndexOfUser(users, "R1"))
	assert.Equal(t, -1, core.IndexOfUser(users, "R2"))
}

func Test_RemoveID_RemovesOnlyTheFirstOccurrence(t *testing.T) {
	ids := []string{"a", "b", "a"}

	remaining, removed := core.RemoveID(ids, "a")

	assert.True(t, removed)
	assert.Equal(t, []string{"b", "a"}, remaining)
	assert.Equal(t, []string{"a", "b", "a"}, ids, "input must not be modified")
}

func Test_RemoveAllIDs(t *testing.T) {
	remaining, count := core.RemoveAllIDs([]string{"a", "b", "a"}, "a")

	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"b"}, remaining)
}

func toAnySlice(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}

	return out
}
