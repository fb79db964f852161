package cipherlab

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/tOtiana23/cipherlab-go/internal/numtheory"
	"github.com/tOtiana23/cipherlab-go/internal/prime"
)

// MinPrimeBits is the smallest accepted prime bit-length. Anything
// smaller cannot reliably yield two distinct primes and a usable
// modulus.
const MinPrimeBits = 16

// DefaultExponent is the fixed public exponent used unless randomized
// selection is requested.
const DefaultExponent = 65537

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// KeyPair holds a complete RSA keypair. It is immutable once
// constructed; treat all fields as read-only.
//
// Invariants: P != Q, both probable primes; N = P*Q; Phi = (P-1)(Q-1);
// gcd(E, Phi) = 1; E*D ≡ 1 (mod Phi); N has a bit-length of roughly
// twice the requested prime bit-length.
type KeyPair struct {
	// P and Q are the two prime factors of the modulus.
	P *big.Int
	Q *big.Int
	// N is the modulus P*Q.
	N *big.Int
	// Phi is Euler's totient (P-1)*(Q-1).
	Phi *big.Int
	// E is the public exponent.
	E *big.Int
	// D is the private exponent, the inverse of E modulo Phi.
	D *big.Int
}

// PublicKey is the public half of a keypair: the modulus and the public
// exponent. It is a read-only projection of a KeyPair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the private half of a keypair: the modulus and the
// private exponent. It is a read-only projection of a KeyPair.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// Public returns the public-key view of the keypair. The view shares
// the same modulus as the private view.
func (kp *KeyPair) Public() PublicKey {
	return PublicKey{N: kp.N, E: kp.E}
}

// Private returns the private-key view of the keypair.
func (kp *KeyPair) Private() PrivateKey {
	return PrivateKey{N: kp.N, D: kp.D}
}

// Fingerprint returns a hex-encoded SHA3-256 digest over the big-endian
// encodings of N and E, for identifying a key in logs and reports
// without exposing private material.
func (kp *KeyPair) Fingerprint() string {
	h := sha3.New256()
	h.Write(kp.N.Bytes())
	h.Write(kp.E.Bytes())
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateKeyPair constructs a fresh RSA keypair with primes of
// primeBits bits each. primeBits below MinPrimeBits is rejected with
// ErrInvalidParameter.
//
// The two primes are drawn independently; the second draw retries while
// it collides with the first. The public exponent is the fixed 65537
// unless WithRandomExponent or WithExponentBits is given, with a
// fall-through to randomized selection in the rare case that 65537
// shares a factor with phi.
//
// Prime search is probabilistic and unbounded, so expected duration
// grows with primeBits and the worst case is unbounded; ctx is checked
// throughout and cancelling it aborts generation.
func GenerateKeyPair(ctx context.Context, primeBits int, opts ...KeyOption) (*KeyPair, error) {
	if primeBits < MinPrimeBits {
		return nil, &ParameterError{
			Param:  "primeBits",
			Reason: fmt.Sprintf("must be at least %d, got %d", MinPrimeBits, primeBits),
		}
	}

	cfg := defaultKeyConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := prime.Generate(ctx, primeBits, cfg.rounds, cfg.random)
	if err != nil {
		return nil, fmt.Errorf("generating p: %w", err)
	}

	q, err := prime.Generate(ctx, primeBits, cfg.rounds, cfg.random)
	if err != nil {
		return nil, fmt.Errorf("generating q: %w", err)
	}
	for q.Cmp(p) == 0 {
		if q, err = prime.Generate(ctx, primeBits, cfg.rounds, cfg.random); err != nil {
			return nil, fmt.Errorf("generating q: %w", err)
		}
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	e, err := selectExponent(ctx, phi, cfg)
	if err != nil {
		return nil, fmt.Errorf("selecting exponent: %w", err)
	}

	d, err := numtheory.ModInverse(e, phi)
	if err != nil {
		if errors.Is(err, numtheory.ErrNoInverse) {
			// Unreachable given the selector's coprimality contract.
			return nil, fmt.Errorf("computing d: %w", ErrNoInverse)
		}
		return nil, fmt.Errorf("computing d: %w", err)
	}

	return &KeyPair{P: p, Q: q, N: n, Phi: phi, E: e, D: d}, nil
}

// selectExponent picks the public exponent. Fixed mode returns 65537
// when it is coprime to phi and otherwise falls back to randomized
// selection; randomized mode draws odd candidates until one is coprime.
func selectExponent(ctx context.Context, phi *big.Int, cfg keyConfig) (*big.Int, error) {
	if !cfg.randomE {
		e := big.NewInt(DefaultExponent)
		if numtheory.GCD(e, phi).Cmp(one) == 0 {
			return e, nil
		}
		// Rare: 65537 divides phi. Fall through to a random coprime.
	}
	return randomCoprime(ctx, phi, cfg.exponentBits, cfg.random)
}

// randomCoprime draws random odd candidates until one satisfies
// 2 <= e < phi and gcd(e, phi) = 1. With bits == 0 candidates are
// uniform in [3, phi-1]; otherwise they have the requested bit-length.
func randomCoprime(ctx context.Context, phi *big.Int, bits int, random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}

	if bits == 0 {
		span := new(big.Int).Sub(phi, three)
		if span.Sign() <= 0 {
			return nil, &ParameterError{Param: "phi", Reason: "too small for exponent selection"}
		}
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			e, err := rand.Int(random, span)
			if err != nil {
				return nil, fmt.Errorf("drawing exponent: %w", err)
			}
			e.Add(e, three)
			e.SetBit(e, 0, 1)
			if e.Cmp(two) >= 0 && e.Cmp(phi) < 0 && numtheory.GCD(e, phi).Cmp(one) == 0 {
				return e, nil
			}
		}
	}

	if bits < 2 {
		return nil, &ParameterError{Param: "exponentBits", Reason: "must be at least 2"}
	}
	bytes := make([]byte, (bits+7)/8)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(random, bytes); err != nil {
			return nil, fmt.Errorf("drawing exponent: %w", err)
		}
		bytes[0] &= 0xFF >> (len(bytes)*8 - bits)
		e := new(big.Int).SetBytes(bytes)
		e.SetBit(e, bits-1, 1)
		e.SetBit(e, 0, 1)
		if e.Cmp(two) >= 0 && e.Cmp(phi) < 0 && numtheory.GCD(e, phi).Cmp(one) == 0 {
			return e, nil
		}
	}
}
