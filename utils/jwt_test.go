// file: utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedantwankhade123/Roborace/models"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	admin := models.Admin{ID: 7, Name: "Shreyash", Role: models.RoleOrganiser}
	token, err := GenerateToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), claims.AdminID)
	assert.Equal(t, "Shreyash", claims.Name)
	assert.Equal(t, models.RoleOrganiser, claims.Role)
}

func TestParseTokenRejectsTamperedSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateToken(models.Admin{ID: 1, Name: "x"})
	require.NoError(t, err)

	InitJWT("secret-two")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
