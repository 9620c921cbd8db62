// Package auth covers credential handling: one-way password hashing for
// stored secrets and HS256 JWTs handed to the transport layer on login.
package auth

import "golang.org/x/crypto/bcrypt"

// HashSecret returns a bcrypt hash of the plaintext secret. Only the hash is
// ever persisted.
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckSecret reports whether the plaintext secret matches the stored hash.
func CheckSecret(hash string, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
