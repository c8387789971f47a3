// Package slug provides the random suffix source used to resolve slug collisions.
package slug

import (
	"crypto/rand"
	"math/big"

	"tienda/internal/domain/service"
)

const (
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 5
)

// randomSuffixer draws suffixes from crypto/rand over the 36^5 suffix space.
type randomSuffixer struct{}

// NewRandomSuffixer is the constructor for randomSuffixer.
func NewRandomSuffixer() service.SlugSuffixer {
	return &randomSuffixer{}
}

// Suffix returns a fresh 5-character lowercase-alphanumeric string.
func (s *randomSuffixer) Suffix() string {
	max := big.NewInt(int64(len(suffixAlphabet)))
	buf := make([]byte, suffixLength)

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform's entropy source is
			// broken; there is no reasonable recovery at this level.
			panic(err)
		}
		buf[i] = suffixAlphabet[n.Int64()]
	}

	return string(buf)
}
