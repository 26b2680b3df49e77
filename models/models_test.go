// file: models/models_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeCode("abc123"))
	assert.Equal(t, "ABC123", NormalizeCode("  Abc123 "))
	assert.Equal(t, "ABC123", NormalizeCode("ABC123"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestSecretCodeNormalizedOnSave(t *testing.T) {
	code := SecretCode{Code: " xy7 kq "}
	require.NoError(t, code.BeforeSave(nil))
	assert.Equal(t, "XY7 KQ", code.Code)
}

func TestAdminPasswordHashing(t *testing.T) {
	admin := Admin{Name: "Test", Email: "t@t.com", Password: "hunter22"}
	// ID is zero, so the hook hashes without consulting the statement.
	require.NoError(t, admin.BeforeSave(nil))

	assert.NotEqual(t, "hunter22", admin.Password)
	assert.True(t, admin.CheckPassword("hunter22"))
	assert.False(t, admin.CheckPassword("hunter23"))
}
