// file: utils/code_generator.go
package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateSecretCode returns a random upper-case signup code of the given length.
func GenerateSecretCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(charset[seededRand.Intn(len(charset))])
	}
	return sb.String()
}

// GenerateIdempotencyKey mints the per-form key embedded in each rendered
// registration page; a resubmit of the same form carries the same key and
// collapses into one record.
func GenerateIdempotencyKey() string {
	return uuid.New().String()
}
