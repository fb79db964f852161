package classical

import "errors"

// Errors shared by the ciphers in this package.
var (
	// ErrEmptyAlphabet is returned by ciphers that cannot degrade
	// gracefully when given a zero-length alphabet.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")

	// ErrEmptyKey is returned when a key contains no alphabet characters.
	ErrEmptyKey = errors.New("key must contain at least one alphabet character")

	// ErrNotCoprime is returned when a multiplicative key parameter
	// shares a factor with the alphabet length.
	ErrNotCoprime = errors.New("key parameter is not coprime with alphabet length")
)

// indexMap returns rune -> position lookup for an alphabet.
func indexMap(alphabet []rune) map[rune]int {
	m := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		m[r] = i
	}
	return m
}

// normalizeShift maps an arbitrary shift into [0, n-1].
func normalizeShift(shift, n int) int {
	if n == 0 {
		return 0
	}
	return ((shift % n) + n) % n
}
