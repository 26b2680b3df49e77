// file: utils/jwt.go
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vedantwankhade123/Roborace/models"
)

var jwtSecret []byte

// InitJWT must be called once at startup before any token is issued or parsed.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

type Claims struct {
	AdminID uint32           `json:"admin_id"`
	Name    string           `json:"name"`
	Role    models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(admin models.Admin) (string, error) {
	claims := Claims{
		AdminID: admin.ID,
		Name:    admin.Name,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, err
}
