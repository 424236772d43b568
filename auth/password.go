package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 16
	keyLength  = 32

	// Interactive-login scrypt cost parameters.
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a scrypt key from the password under a fresh random
// salt. Hash and salt are stored in separate columns.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	hash, err = scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, nil, err
	}
	return hash, salt, nil
}

// VerifyPassword re-derives the key and compares it in constant time.
func VerifyPassword(password string, hash, salt []byte) bool {
	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
