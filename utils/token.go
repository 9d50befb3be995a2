package authUtils

import (
	"fmt"
	"os"
	"time"

	"ecotrack-be/models"

	"github.com/dgrijalva/jwt-go"
)

// GenerateAndSetToken generates a JWT token carrying the session identity.
// The role claim is self-declared identity, not a verified credential.
func GenerateAndSetToken(user models.User) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Token expires in 72 hours
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
