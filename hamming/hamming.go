package hamming

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrSymbolNotInAlphabet is returned when a message contains a
	// symbol outside the configured alphabet.
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

	// ErrPositionOutOfRange is returned when a bit position is outside
	// the codeword.
	ErrPositionOutOfRange = errors.New("bit position out of range")

	// ErrEmptyAlphabet is returned when a code is requested for an
	// empty alphabet.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
)

// Code describes a Hamming code: n = 2^k - 1 total bits, k parity bits,
// m = n - k data bits.
type Code struct {
	K int
	N int
	M int
}

// ChooseCode returns the minimal Hamming code with at least mRequired
// data bits.
func ChooseCode(mRequired int) Code {
	k := 1
	for {
		n := (1 << k) - 1
		m := n - k
		if m >= mRequired {
			return Code{K: k, N: n, M: m}
		}
		k++
	}
}

// symbolBits is the minimal bit width covering size distinct values.
func symbolBits(size int) int {
	bits := 1
	for 1<<bits < size {
		bits++
	}
	return bits
}

func isPowerOfTwo(x int) bool {
	return x != 0 && x&(x-1) == 0
}

// Codeword is one encoded symbol. Positions are 1-based, matching the
// classical Hamming description: index 0 is unused, parity bits sit at
// the power-of-two positions.
type Codeword []int

// Bits renders positions 1..n as a '0'/'1' string.
func (cw Codeword) Bits() string {
	out := make([]byte, len(cw)-1)
	for i := 1; i < len(cw); i++ {
		out[i-1] = '0' + byte(cw[i])
	}
	return string(out)
}

// Flip inverts the bit at a 1-based position.
func (cw Codeword) Flip(position int) error {
	if position < 1 || position >= len(cw) {
		return ErrPositionOutOfRange
	}
	cw[position] ^= 1
	return nil
}

// FlipRandom inverts one uniformly chosen bit and returns its position.
// random defaults to crypto/rand when nil.
func (cw Codeword) FlipRandom(random io.Reader) (int, error) {
	if random == nil {
		random = rand.Reader
	}
	n := len(cw) - 1
	idx, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("drawing position: %w", err)
	}
	pos := int(idx.Int64()) + 1
	cw[pos] ^= 1
	return pos, nil
}

// clone returns an independent copy of the codeword.
func (cw Codeword) clone() Codeword {
	out := make(Codeword, len(cw))
	copy(out, cw)
	return out
}

// Encoder maps symbols of one alphabet to Hamming codewords.
type Encoder struct {
	code     Code
	alphabet []rune
	index    map[rune]int
}

// NewEncoder builds an encoder for the alphabet, choosing the minimal
// code that fits its size.
func NewEncoder(alphabet []rune) (*Encoder, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		index[r] = i
	}

	return &Encoder{
		code:     ChooseCode(symbolBits(len(alphabet))),
		alphabet: alphabet,
		index:    index,
	}, nil
}

// Code returns the (n, m) parameters the encoder selected.
func (e *Encoder) Code() Code {
	return e.code
}

// Encode maps every symbol of message to one codeword.
func (e *Encoder) Encode(message string) ([]Codeword, error) {
	var codewords []Codeword
	for _, r := range message {
		val, ok := e.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, r)
		}
		codewords = append(codewords, e.encodeValue(val))
	}
	return codewords, nil
}

// encodeValue places the value's data bits (MSB first, zero-padded to
// the code's data width) into the non-power-of-two positions and fills
// in the parity bits.
func (e *Encoder) encodeValue(val int) Codeword {
	cw := make(Codeword, e.code.N+1)

	dataPos := 0
	for i := 1; i <= e.code.N; i++ {
		if isPowerOfTwo(i) {
			continue
		}
		bit := (val >> (e.code.M - 1 - dataPos)) & 1
		cw[i] = bit
		dataPos++
	}

	for j := 0; j < e.code.K; j++ {
		p := 1 << j
		s := 0
		for i := 1; i <= e.code.N; i++ {
			if i != p && i&p != 0 {
				s ^= cw[i]
			}
		}
		cw[p] = s
	}
	return cw
}

// Syndrome computes the error syndrome of a received codeword. Zero
// means no detected error; otherwise the value is the 1-based position
// of the flipped bit.
func (e *Encoder) Syndrome(cw Codeword) int {
	syn := 0
	for j := 0; j < e.code.K; j++ {
		p := 1 << j
		s := 0
		for i := 1; i <= e.code.N; i++ {
			if i&p != 0 {
				s ^= cw[i]
			}
		}
		if s != 0 {
			syn |= p
		}
	}
	return syn
}

// Correct returns a corrected copy of the codeword and the error
// position, or 0 when no error was detected. The input is not mutated.
func (e *Encoder) Correct(cw Codeword) (Codeword, int) {
	out := cw.clone()
	syn := e.Syndrome(out)
	if syn == 0 {
		return out, 0
	}
	if syn >= 1 && syn <= e.code.N {
		out[syn] ^= 1
	}
	return out, syn
}

// Report describes the decoding of one codeword.
type Report struct {
	// Index is the 0-based position of the codeword in the message.
	Index int
	// Corrected reports whether a bit was flipped back.
	Corrected bool
	// ErrorPosition is the 1-based corrected position, 0 if none.
	ErrorPosition int
	// SymbolIndex is the decoded alphabet index.
	SymbolIndex int
	// Symbol is the decoded rune, or utf8.RuneError when SymbolIndex
	// falls outside the alphabet.
	Symbol rune
	// Valid reports whether SymbolIndex mapped back into the alphabet.
	Valid bool
}

// Decode corrects and decodes a sequence of received codewords. Symbols
// whose decoded index falls outside the alphabet render as '?' in the
// returned text, with Valid unset in the matching report.
func (e *Encoder) Decode(codewords []Codeword) (string, []Report) {
	out := make([]rune, 0, len(codewords))
	reports := make([]Report, 0, len(codewords))

	for idx, received := range codewords {
		corrected, errPos := e.Correct(received)

		val := 0
		for i := 1; i <= e.code.N; i++ {
			if !isPowerOfTwo(i) {
				val = val<<1 | corrected[i]
			}
		}

		r := Report{
			Index:         idx,
			Corrected:     errPos != 0,
			ErrorPosition: errPos,
			SymbolIndex:   val,
		}
		if val < len(e.alphabet) {
			r.Symbol = e.alphabet[val]
			r.Valid = true
			out = append(out, r.Symbol)
		} else {
			r.Symbol = '?'
			out = append(out, '?')
		}
		reports = append(reports, r)
	}

	return string(out), reports
}
