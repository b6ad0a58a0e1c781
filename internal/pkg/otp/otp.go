package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits is the length of a generated code.
const Digits = 6

var upper = big.NewInt(1000000)

// New generates a cryptographically random zero-padded 6-digit code.
func New() (string, error) {
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
