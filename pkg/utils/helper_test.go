package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 15, ParseInt("", 15))
	assert.Equal(t, 15, ParseInt("abc", 15))
	assert.Equal(t, 15, ParseInt("0", 15))
	assert.Equal(t, 3, ParseInt("3", 15))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("on", false))
	assert.True(t, ParseBool("TRUE", false))
	assert.False(t, ParseBool("0", true))
	assert.True(t, ParseBool("", true))
}

func TestCompactStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CompactStrings([]string{" a ", "", "  ", "b"}))
	assert.Empty(t, CompactStrings(nil))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 15))
	assert.Equal(t, 1, CalculateTotalPages(15, 15))
	assert.Equal(t, 2, CalculateTotalPages(16, 15))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}
