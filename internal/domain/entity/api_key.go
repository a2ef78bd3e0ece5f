package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultAPIKeyLength is the length of keys handed out on registration
const DefaultAPIKeyLength = 32

const apiKeyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateAPIKey returns a random key of length characters drawn from [0-9a-zA-Z]
func GenerateAPIKey(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("api key length must be positive, got %d", length)
	}

	alphabetSize := big.NewInt(int64(len(apiKeyAlphabet)))
	key := make([]byte, length)
	for i := range key {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate api key: %w", err)
		}
		key[i] = apiKeyAlphabet[n.Int64()]
	}
	return string(key), nil
}
