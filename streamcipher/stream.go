package streamcipher

import (
	"errors"
	"math/rand"

	"golang.org/x/text/encoding/unicode"
)

// KeySize is the length of a keystream key: a permutation of 0..255.
const KeySize = 256

var (
	// ErrBadKeySize is returned when a key is not 256 bytes long.
	ErrBadKeySize = errors.New("key must be a 256-byte permutation")

	// ErrLengthMismatch is returned when XOR operands differ in length.
	ErrLengthMismatch = errors.New("data and gamma must have the same length")
)

// utf16be encodes text for EncryptText/DecryptText. Big-endian, no BOM,
// matching the lab's on-the-wire format.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// GenerateKey returns a permutation of 0..255 produced by the given
// number of random pairwise swaps. The generator is seeded, so the same
// seed always yields the same key.
func GenerateKey(seed int64, swaps int) []byte {
	rng := rand.New(rand.NewSource(seed))

	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	for s := 0; s < swaps; s++ {
		i, j := rng.Intn(KeySize), rng.Intn(KeySize)
		key[i], key[j] = key[j], key[i]
	}
	return key
}

// InitState runs the key-scheduling mix: the generator state starts as
// a copy of the key and is swapped through all 256 positions, folding
// the key in a second time.
func InitState(key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrBadKeySize
	}

	gen := make([]byte, KeySize)
	copy(gen, key)

	j := 0
	for i := 0; i < KeySize; i++ {
		j = (j + int(gen[i]) + int(key[i])) & 0xFF
		gen[i], gen[j] = gen[j], gen[i]
	}
	return gen, nil
}

// Gamma runs the pseudo-random generation phase over a copy of the
// initialized state and returns length keystream bytes.
func Gamma(state []byte, length int) ([]byte, error) {
	if len(state) != KeySize {
		return nil, ErrBadKeySize
	}

	gen := make([]byte, KeySize)
	copy(gen, state)

	out := make([]byte, length)
	i, j := 0, 0
	for k := 0; k < length; k++ {
		i = (i + 1) & 0xFF
		j = (j + int(gen[i])) & 0xFF
		gen[i], gen[j] = gen[j], gen[i]
		t := (int(gen[i]) + int(gen[j])) & 0xFF
		out[k] = gen[t]
	}
	return out, nil
}

// XORBytes returns the byte-wise XOR of two equal-length slices.
func XORBytes(data, gamma []byte) ([]byte, error) {
	if len(data) != len(gamma) {
		return nil, ErrLengthMismatch
	}

	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ gamma[i]
	}
	return out, nil
}

// EncryptBytes encrypts message under key: KSA, then a gamma of the
// message length, then XOR.
func EncryptBytes(message, key []byte) ([]byte, error) {
	state, err := InitState(key)
	if err != nil {
		return nil, err
	}
	gamma, err := Gamma(state, len(message))
	if err != nil {
		return nil, err
	}
	return XORBytes(message, gamma)
}

// DecryptBytes decrypts ciphertext produced by EncryptBytes. XOR with
// the same gamma restores the plaintext, so this is EncryptBytes again.
func DecryptBytes(cipher, key []byte) ([]byte, error) {
	return EncryptBytes(cipher, key)
}

// EncryptText encodes text as UTF-16BE and encrypts the resulting bytes.
func EncryptText(text string, key []byte) ([]byte, error) {
	data, err := utf16be.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	return EncryptBytes(data, key)
}

// DecryptText decrypts bytes produced by EncryptText and decodes them
// back from UTF-16BE.
func DecryptText(cipher, key []byte) (string, error) {
	data, err := DecryptBytes(cipher, key)
	if err != nil {
		return "", err
	}
	text, err := utf16be.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
