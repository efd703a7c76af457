package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var jwtSecret = []byte("secret")

// SetSecret allows injecting the secret from config
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// contextKey keeps claims from colliding with other context values.
type contextKey string

const UserClaimsKey contextKey = "user_claims"

type UserClaims struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	Role             string `json:"role"`
	AssignedLocation string `json:"assigned_location,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(userID primitive.ObjectID, username, role, assignedLocation string) (string, error) {
	claims := UserClaims{
		UserID:           userID.Hex(),
		Username:         username,
		Role:             role,
		AssignedLocation: assignedLocation,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenSignatureInvalid
}
