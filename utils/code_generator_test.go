// file: utils/code_generator_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSecretCode(t *testing.T) {
	code := GenerateSecretCode(8)
	assert.Len(t, code, 8)
	for _, ch := range code {
		assert.True(t, strings.ContainsRune(charset, ch), "unexpected character %q", ch)
	}
	// Codes are already in canonical (upper-case) form.
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestGenerateIdempotencyKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := GenerateIdempotencyKey()
		assert.NotEmpty(t, key)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
