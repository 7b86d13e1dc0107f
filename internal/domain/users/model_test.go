package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAccountStatus(t *testing.T) {
	assert.True(t, IsValidAccountStatus(AccountActive))
	assert.True(t, IsValidAccountStatus(AccountBlocked))
	assert.False(t, IsValidAccountStatus(""))
	assert.False(t, IsValidAccountStatus("suspended"))
	assert.False(t, IsValidAccountStatus("Active"))
}
