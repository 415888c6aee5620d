package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveQuotesIfAny(t *testing.T) {
	assert.Equal(t, "stable", RemoveSingleQuotesIfAny("'stable'"))
	assert.Equal(t, "stable", RemoveDoubleQuotesIfAny("\"stable\""))
	assert.Equal(t, "stable", RemoveSingleQuotesIfAny("stable"))
	assert.Equal(t, "stable", RemoveDoubleQuotesIfAny("stable"))
	// Mismatched or lone quotes are left alone
	assert.Equal(t, "'stable", RemoveSingleQuotesIfAny("'stable"))
	assert.Equal(t, "''", RemoveSingleQuotesIfAny("''"))
}
