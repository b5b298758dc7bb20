package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from the plaintext using the
// default work factor of 10. The produced hash encodes its own cost and
// salt, so the factor can be raised later without invalidating old hashes.
func HashPassword(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plaintext matches hash. A malformed hash
// counts as a mismatch, never an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
