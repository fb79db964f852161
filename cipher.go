package cipherlab

import (
	"math/big"
	"unicode/utf8"

	"github.com/tOtiana23/cipherlab-go/internal/numtheory"
)

// BytesToInt interprets b as a big-endian unsigned integer.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes returns the minimal big-endian encoding of i, i.e.
// ceil(bitlen/8) bytes. Zero encodes to an empty slice; BytesToInt of
// an empty slice is zero, so the round-trip is consistent.
func IntToBytes(i *big.Int) []byte {
	return i.Bytes()
}

// EncryptInt encrypts the integer m under (e, n): c = m^e mod n.
// m must satisfy 0 < m < n, otherwise ErrInvalidParameter is returned.
func EncryptInt(m, e, n *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 || m.Cmp(n) >= 0 {
		return nil, &ParameterError{Param: "m", Reason: "must be in range 1..n-1"}
	}
	return numtheory.ModExp(m, e, n), nil
}

// DecryptInt decrypts the integer c under (d, n): m = c^d mod n.
//
// No range check is performed on c: any value, in range or not, is
// reduced implicitly by the exponentiation. That leniency is inherent
// to raw RSA — nothing proves c came from a real encryption.
func DecryptInt(c, d, n *big.Int) *big.Int {
	return numtheory.ModExp(c, d, n)
}

// EncodeMessage UTF-8-encodes text and maps it to a single big-endian
// integer m. It returns ErrMessageTooLarge when m >= n; no chunking is
// performed, so the message byte-length is bounded by
// floor((bitlen(n)-1)/8).
func EncodeMessage(text string, n *big.Int) (*big.Int, error) {
	m := BytesToInt([]byte(text))
	if m.Cmp(n) >= 0 {
		return nil, ErrMessageTooLarge
	}
	return m, nil
}

// DecodeMessage maps a decrypted integer back to text. It returns
// ErrDecoding when the bytes are not valid UTF-8, which signals a key
// mismatch, corruption, or a wrong ciphertext.
func DecodeMessage(m *big.Int) (string, error) {
	b := IntToBytes(m)
	if !utf8.Valid(b) {
		return "", ErrDecoding
	}
	return string(b), nil
}

// EncryptMessage encrypts a UTF-8 string as a single integer under
// (e, n). Encryption is deterministic: the same text under the same key
// always yields the same ciphertext.
func EncryptMessage(text string, e, n *big.Int) (*big.Int, error) {
	m, err := EncodeMessage(text, n)
	if err != nil {
		return nil, err
	}
	return EncryptInt(m, e, n)
}

// DecryptMessage decrypts a ciphertext integer under (d, n) and decodes
// the result back to a UTF-8 string.
func DecryptMessage(c, d, n *big.Int) (string, error) {
	return DecodeMessage(DecryptInt(c, d, n))
}

// Encrypt encrypts a UTF-8 string under the public key.
func (k PublicKey) Encrypt(text string) (*big.Int, error) {
	return EncryptMessage(text, k.E, k.N)
}

// EncryptInt encrypts an integer in (0, n) under the public key.
func (k PublicKey) EncryptInt(m *big.Int) (*big.Int, error) {
	return EncryptInt(m, k.E, k.N)
}

// Decrypt decrypts a ciphertext integer under the private key back to
// a UTF-8 string.
func (k PrivateKey) Decrypt(c *big.Int) (string, error) {
	return DecryptMessage(c, k.D, k.N)
}

// DecryptInt decrypts a ciphertext integer under the private key.
func (k PrivateKey) DecryptInt(c *big.Int) *big.Int {
	return DecryptInt(c, k.D, k.N)
}
