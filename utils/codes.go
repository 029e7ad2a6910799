package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

const referenceDigits = "0123456789"

// GenerateReferenceCode builds a human-facing code like "BK034921":
// prefix followed by `digits` random decimal digits.
func GenerateReferenceCode(prefix string, digits int) (string, error) {
	if digits <= 0 {
		return "", errors.New("invalid reference code length")
	}

	b := make([]byte, digits)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceDigits))))
		if err != nil {
			return "", fmt.Errorf("generate reference code: %w", err)
		}
		b[i] = referenceDigits[n.Int64()]
	}
	return prefix + string(b), nil
}

// CustomerCode formats a sequential customer id as "CM001".
func CustomerCode(id uint) string {
	return fmt.Sprintf("CM%03d", id)
}
