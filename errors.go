package cipherlab

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidParameter is returned when an argument is outside its
	// permitted range, such as primeBits below 16 or a plaintext integer
	// outside (0, n).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoInverse is returned when a modular inverse does not exist.
	// The exponent selector guarantees gcd(e, phi) = 1, so hitting this
	// during keypair construction indicates an internal invariant
	// violation rather than bad input.
	ErrNoInverse = errors.New("modular inverse does not exist")

	// ErrMessageTooLarge is returned when the message integer is not
	// strictly less than the modulus. No chunking is performed; the
	// caller must shorten or reject the message.
	ErrMessageTooLarge = errors.New("message too large for modulus")

	// ErrDecoding is returned when decrypted bytes are not valid UTF-8,
	// which signals a key mismatch, corruption, or a wrong ciphertext.
	ErrDecoding = errors.New("decrypted bytes are not valid UTF-8")
)

// ParameterError reports which parameter was invalid and why.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
