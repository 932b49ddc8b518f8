package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEventID_Length(t *testing.T) {
	id := GenerateEventID()

	assert.Len(t, id, EventIDLength)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(charset, r))
	}
}

func TestGenerateRandomString_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[GenerateRandomString(16)] = true
	}

	assert.Len(t, seen, 100)
}

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "42", FormatUint(42))
}
