package classical

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/tOtiana23/cipherlab-go/internal/numtheory"
)

// ErrNotInvertible is returned when the Hill key matrix has no inverse
// modulo the alphabet length.
var ErrNotInvertible = errors.New("key matrix is not invertible modulo alphabet length")

// ErrNotSquare is returned when the Hill key matrix is not square.
var ErrNotSquare = errors.New("key matrix must be square")

// HillEncrypt encrypts text with a square integer key matrix over the
// alphabet: the text is mapped to alphabet indices, split into blocks of
// the matrix dimension, and each block is multiplied by the key modulo
// the alphabet length. Characters outside the alphabet are dropped, and
// the last block is padded with the final alphabet rune.
func HillEncrypt(text string, key *mat.Dense, alphabet string) (string, error) {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return "", ErrEmptyAlphabet
	}
	rows, cols := key.Dims()
	if rows != cols {
		return "", ErrNotSquare
	}

	nums := textToNumbers(text, runes)
	for len(nums)%rows != 0 {
		nums = append(nums, n-1)
	}

	k := intMatrix(key, n)
	out := make([]int, 0, len(nums))
	for i := 0; i < len(nums); i += rows {
		block := nums[i : i+rows]
		for r := 0; r < rows; r++ {
			sum := 0
			for c := 0; c < cols; c++ {
				sum += k[r][c] * block[c]
			}
			out = append(out, normalizeShift(sum, n))
		}
	}
	return numbersToText(out, runes), nil
}

// HillDecrypt inverts HillEncrypt by multiplying each block with the
// modular inverse of the key matrix. Padding added during encryption is
// not stripped.
func HillDecrypt(cipher string, key *mat.Dense, alphabet string) (string, error) {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return "", ErrEmptyAlphabet
	}
	rows, cols := key.Dims()
	if rows != cols {
		return "", ErrNotSquare
	}

	inv, err := modMatrixInverse(key, n)
	if err != nil {
		return "", err
	}

	nums := textToNumbers(cipher, runes)
	out := make([]int, 0, len(nums))
	for i := 0; i+rows <= len(nums); i += rows {
		block := nums[i : i+rows]
		for r := 0; r < rows; r++ {
			sum := 0
			for c := 0; c < cols; c++ {
				sum += inv[r][c] * block[c]
			}
			out = append(out, normalizeShift(sum, n))
		}
	}
	return numbersToText(out, runes), nil
}

// modMatrixInverse computes the inverse of an integer matrix modulo mod
// through the adjugate: inv = det^-1 * adj (mod mod). The determinant
// and the float inverse come from gonum and are rounded back to
// integers, which is exact for the small key matrices this cipher uses.
func modMatrixInverse(m *mat.Dense, mod int) ([][]int, error) {
	rows, _ := m.Dims()

	det := int(math.Round(mat.Det(m)))
	detInv, err := numtheory.ModInverse(
		big.NewInt(int64(normalizeShift(det, mod))),
		big.NewInt(int64(mod)),
	)
	if err != nil {
		return nil, ErrNotInvertible
	}
	dInv := int(detInv.Int64())

	var floatInv mat.Dense
	if err := floatInv.Inverse(m); err != nil {
		return nil, ErrNotInvertible
	}

	// adj = det * m^-1, entrywise rounded; then inv = det^-1 * adj.
	inv := make([][]int, rows)
	for r := 0; r < rows; r++ {
		inv[r] = make([]int, rows)
		for c := 0; c < rows; c++ {
			adj := int(math.Round(float64(det) * floatInv.At(r, c)))
			inv[r][c] = normalizeShift(dInv*normalizeShift(adj, mod), mod)
		}
	}
	return inv, nil
}

func intMatrix(m *mat.Dense, mod int) [][]int {
	rows, cols := m.Dims()
	out := make([][]int, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = normalizeShift(int(math.Round(m.At(r, c))), mod)
		}
	}
	return out
}

func textToNumbers(text string, alphabet []rune) []int {
	idx := indexMap(alphabet)
	var nums []int
	for _, r := range text {
		if i, ok := idx[r]; ok {
			nums = append(nums, i)
		}
	}
	return nums
}

func numbersToText(nums []int, alphabet []rune) string {
	var b strings.Builder
	for _, v := range nums {
		b.WriteRune(alphabet[normalizeShift(v, len(alphabet))])
	}
	return b.String()
}
