package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"educore_backend/internals/features/users/auth/model"
)

const tokenTTL = 12 * time.Hour

// CreateAccessToken signs an HS256 token carrying the claims the JWT
// middleware hydrates into Locals.
func CreateAccessToken(user model.UserModel, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
