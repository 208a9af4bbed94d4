package registeruser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/registeruser"
	"github.com/AntonStoeckl/library-catalog-go/testutil/fixtures"
)

func Test_Decide_Success_AppendsTheMember(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand("Rohit Kumar", "rohit.kumar@itcollege.ac.in", " IT21B003 ", "+91-9999900003")

	// act
	result := registeruser.Decide(fixtures.Users(), command)

	// assert
	assert.True(t, result.HasUsersToSave())
	assert.Len(t, result.Users, 3)
	assert.Equal(t, "IT21B003", result.Users[2].RollNo)
	assert.Empty(t, result.Users[2].Borrowed)
	assert.Empty(t, result.Users[2].Reserved)
}

func Test_Decide_Error_WhenRollNumberIsTaken(t *testing.T) {
	result := registeruser.Decide(fixtures.Users(), registeruser.BuildCommand("Other", "", fixtures.RollArjun, ""))

	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateRollNo)
	assert.False(t, result.HasUsersToSave())
}

func Test_Decide_Error_WhenRollNumberIsEmpty(t *testing.T) {
	result := registeruser.Decide(fixtures.Users(), registeruser.BuildCommand("Nobody", "", "  ", ""))

	assert.ErrorIs(t, result.HasError(), core.ErrEmptyRollNo)
}
