package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash used when the account does not exist, so that login always pays the
// bcrypt cost regardless of whether the email resolved to a user.
const DummyHash = "$2a$10$7EqJtq98hPqEXt/wYRnOeHuSNtUl3mSqMoshgYz7Ihbi8eOvTAaSS"

// HashPassword creates a bcrypt hash from the given plaintext password.
// bcrypt.DefaultCost is 10; raise it only with a performance budget in hand.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided plaintext password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}
