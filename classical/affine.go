package classical

import (
	"math/big"
	"strings"

	"github.com/tOtiana23/cipherlab-go/internal/numtheory"
)

// AffineEncrypt maps every alphabet character through E(x) = a*x + b
// (mod N), where N is the alphabet length. The multiplier a must be
// coprime with N or the mapping is not a bijection; ErrNotCoprime is
// returned in that case. Characters outside the alphabet pass through.
//
// Unlike the Caesar and Vigenère ciphers, matching is exact: no case
// folding is applied, so alphabets of upper-case letters work as-is.
func AffineEncrypt(text string, a, b int, alphabet string) (string, error) {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return "", ErrEmptyAlphabet
	}
	if numtheory.GCD(big.NewInt(int64(a)), big.NewInt(int64(n))).Cmp(big.NewInt(1)) != 0 {
		return "", ErrNotCoprime
	}

	idx := indexMap(runes)
	var sb strings.Builder
	for _, r := range text {
		x, ok := idx[r]
		if !ok {
			sb.WriteRune(r)
			continue
		}
		y := normalizeShift(a*x+b, n)
		sb.WriteRune(runes[y])
	}
	return sb.String(), nil
}

// AffineDecrypt inverts AffineEncrypt: D(y) = a^-1 * (y - b) (mod N).
func AffineDecrypt(text string, a, b int, alphabet string) (string, error) {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return "", ErrEmptyAlphabet
	}

	aInv, err := numtheory.ModInverse(
		big.NewInt(int64(normalizeShift(a, n))),
		big.NewInt(int64(n)),
	)
	if err != nil {
		return "", ErrNotCoprime
	}
	inv := int(aInv.Int64())

	idx := indexMap(runes)
	var sb strings.Builder
	for _, r := range text {
		y, ok := idx[r]
		if !ok {
			sb.WriteRune(r)
			continue
		}
		x := normalizeShift(inv*(y-b), n)
		sb.WriteRune(runes[x])
	}
	return sb.String(), nil
}

// AffineGuess is one candidate decryption from a brute-force sweep.
type AffineGuess struct {
	A, B int
	Text string
}

// AffineBruteForce decrypts text under every valid (a, b) pair — those
// with gcd(a, N) = 1 — and returns all candidates.
func AffineBruteForce(text, alphabet string) []AffineGuess {
	n := len([]rune(alphabet))
	if n == 0 {
		return nil
	}

	var guesses []AffineGuess
	for a := 0; a < n; a++ {
		if numtheory.GCD(big.NewInt(int64(a)), big.NewInt(int64(n))).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		for b := 0; b < n; b++ {
			plain, err := AffineDecrypt(text, a, b, alphabet)
			if err != nil {
				continue
			}
			guesses = append(guesses, AffineGuess{A: a, B: b, Text: plain})
		}
	}
	return guesses
}
