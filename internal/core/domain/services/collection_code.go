package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const collectionCodeDigits = 6

// GenerateCollectionCode returns a random zero-padded numeric code for buyer
// collection. Codes come from crypto/rand so they cannot be predicted from
// issue order.
func GenerateCollectionCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < collectionCodeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate collection code: %w", err)
	}

	return fmt.Sprintf("%0*d", collectionCodeDigits, n), nil
}
