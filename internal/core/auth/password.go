// Package auth holds the credential primitives: password hashing and
// signed-token issuance/verification. Both are pure leaf components with no
// storage access.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way hash of plaintext. bcrypt embeds a
// fresh random salt on every call, so hashing the same password twice yields
// two different strings.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. Any
// failure (wrong password, malformed or truncated hash) yields false; the
// caller never has to distinguish them.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
