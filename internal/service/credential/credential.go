package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const HashCost = 10

// Hash derives a salted bcrypt hash from a raw password. The work factor and
// salt are embedded in the returned string so verification needs no
// out-of-band parameters.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("generating encoded password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A mismatch is not
// an error; only a malformed stored hash is.
func Verify(password string, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("comparing password hash: %w", err)
}
