package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(20)
	require.NoError(t, err)
	assert.Len(t, s, 20)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(randomAlphabet, r), string(r))
	}

	// Karışmaya açık karakterler alfabede yok.
	assert.NotContains(t, randomAlphabet, "0")
	assert.NotContains(t, randomAlphabet, "O")
	assert.NotContains(t, randomAlphabet, "1")
	assert.NotContains(t, randomAlphabet, "l")
}

func TestGenerateSecureRandomString_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := GenerateSecureRandomString(12)
		require.NoError(t, err)
		assert.False(t, seen[s], s)
		seen[s] = true
	}
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Ayse Yilmaz", "ayse-yilmaz"},
		{"  Ali   Veli  ", "ali-veli"},
		{"Hello, World!", "hello-world"},
		{"UPPER case", "upper-case"},
		{"abc123", "abc123"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Slugify(tc.input), tc.input)
	}
}
