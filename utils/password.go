package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// HashPass hashes a password with argon2id and returns it encoded as
// "{salt}.{hash}", both segments base64.
func HashPass(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("unable to create salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	saltBase64 := base64.StdEncoding.EncodeToString(salt)
	hashBase64 := base64.StdEncoding.EncodeToString(hash)

	return fmt.Sprintf("%s.%s", saltBase64, hashBase64), nil
}

// ComparePass checks password against a stored "{salt}.{hash}" value.
// Returns nil on match.
func ComparePass(password, hashPassword string) error {
	parts := strings.Split(hashPassword, ".")
	if len(parts) != 2 {
		return errors.New("invalid password hash format")
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return fmt.Errorf("invalid salt encoding: %w", err)
	}
	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("invalid hash encoding: %w", err)
	}

	candidate := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	if len(hash) != len(candidate) || subtle.ConstantTimeCompare(hash, candidate) != 1 {
		return errors.New("incorrect password")
	}
	return nil
}
