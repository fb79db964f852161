package prime

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/tOtiana23/cipherlab-go/internal/numtheory"
)

// DefaultRounds is the Miller–Rabin round count used for keypair
// generation. Forty rounds bound the false-positive probability by
// 4^-40, which is the conventional margin for cryptographic use.
const DefaultRounds = 40

// ErrBitsTooSmall is returned when a prime of fewer than 2 bits is requested.
var ErrBitsTooSmall = errors.New("prime bit-length must be at least 2")

// smallPrimes are used for trial division before Miller–Rabin. This is a
// performance filter only; the statistical contract comes from the
// Miller–Rabin rounds.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsProbablePrime reports whether n is a probable prime after the given
// number of Miller–Rabin rounds. Witness bases are drawn from random,
// which must be a cryptographically secure source in production; nil
// selects crypto/rand. Any n below 2 is not prime.
func IsProbablePrime(n *big.Int, rounds int, random io.Reader) (bool, error) {
	if random == nil {
		random = rand.Reader
	}

	if n.Cmp(two) < 0 {
		return false, nil
	}

	mod := new(big.Int)
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if mod.Mod(n, p).Sign() == 0 {
			return n.Cmp(p) == 0, nil
		}
	}

	// Write n-1 = 2^s * d with d odd.
	d := new(big.Int).Sub(n, one)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinusOne := new(big.Int).Sub(n, one)
	nMinusThree := new(big.Int).Sub(n, big.NewInt(3))

	for i := 0; i < rounds; i++ {
		// Uniform witness a in [2, n-2].
		a, err := rand.Int(random, nMinusThree)
		if err != nil {
			return false, fmt.Errorf("drawing witness: %w", err)
		}
		a.Add(a, two)

		x := numtheory.ModExp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < s-1; j++ {
			x = numtheory.ModExp(x, two, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}

// Generate returns a probable prime of exactly the requested bit-length.
// The top bit is forced so the bit-length is exact and the bottom bit is
// forced so every candidate is odd. Candidates are drawn from random
// (nil selects crypto/rand) and filtered through IsProbablePrime with the
// given round count.
//
// The search is unbounded; ctx is checked each iteration so a caller can
// impose a deadline.
func Generate(ctx context.Context, bits, rounds int, random io.Reader) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrBitsTooSmall
	}
	if random == nil {
		random = rand.Reader
	}

	bytes := make([]byte, (bits+7)/8)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := io.ReadFull(random, bytes); err != nil {
			return nil, fmt.Errorf("drawing candidate: %w", err)
		}

		// Mask excess high bits so the candidate has at most `bits` bits,
		// then force the top bit (exact bit-length) and the bottom bit (odd).
		bytes[0] &= 0xFF >> (len(bytes)*8 - bits)
		p := new(big.Int).SetBytes(bytes)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, 0, 1)

		ok, err := IsProbablePrime(p, rounds, random)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}
