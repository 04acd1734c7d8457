package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character classes for generated passwords.
const (
	classAlnum   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	classSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// GeneratePassword returns a random password of the given length drawn
// from letters and digits, plus punctuation unless noSymbols is set.
// Randomness comes from crypto/rand; length must be positive.
func GeneratePassword(length int, noSymbols bool) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	alphabet := classAlnum
	if !noSymbols {
		alphabet += classSymbols
	}

	max := big.NewInt(int64(len(alphabet)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("reading randomness: %w", err)
		}
		password[i] = alphabet[n.Int64()]
	}

	return string(password), nil
}
