package service

import "golang.org/x/crypto/bcrypt"

// bcrypt only hashes the first 72 bytes of input. Truncate deterministically
// on both the hash and verify paths; if only one side truncated, passwords
// whose UTF-8 encoding crosses the boundary would intermittently fail.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword returns the bcrypt hash of password. The output embeds the
// algorithm identifier, cost, and salt, so it is self-describing.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A wrong password is a false return, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
