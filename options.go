package cipherlab

import (
	"io"

	"github.com/tOtiana23/cipherlab-go/internal/prime"
)

// keyConfig holds configuration for keypair generation.
type keyConfig struct {
	random       io.Reader
	rounds       int
	randomE      bool
	exponentBits int
}

func defaultKeyConfig() keyConfig {
	return keyConfig{
		random: nil, // crypto/rand
		rounds: prime.DefaultRounds,
	}
}

// KeyOption configures keypair generation.
type KeyOption func(*keyConfig)

// WithRand sets the random source used for prime generation, primality
// witnesses, and randomized exponent selection. It defaults to
// crypto/rand; overriding it with a deterministic source makes key
// generation reproducible and voids every security guarantee, so do
// that only in tests.
func WithRand(r io.Reader) KeyOption {
	return func(c *keyConfig) {
		c.random = r
	}
}

// WithRounds sets the Miller–Rabin round count used when testing prime
// candidates. Default: 40, bounding the false-positive probability by
// 4^-40.
func WithRounds(rounds int) KeyOption {
	return func(c *keyConfig) {
		c.rounds = rounds
	}
}

// WithRandomExponent selects a random public exponent coprime to phi
// instead of the fixed 65537.
func WithRandomExponent() KeyOption {
	return func(c *keyConfig) {
		c.randomE = true
	}
}

// WithExponentBits sets the bit-length of the randomized public
// exponent. It implies WithRandomExponent.
func WithExponentBits(bits int) KeyOption {
	return func(c *keyConfig) {
		c.randomE = true
		c.exponentBits = bits
	}
}
