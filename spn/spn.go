package spn

import (
	"errors"
	"fmt"
	"math/rand"
)

// BlockBits is the size of one cipher block: two 16-bit characters.
const BlockBits = 32

// SBoxSize is the number of entries in the 4-bit S-block substitution.
const SBoxSize = 16

var (
	// ErrBadBlockLength is returned when a bit block is not 32 bits long.
	ErrBadBlockLength = errors.New("block must be exactly 32 bits")

	// ErrBadPermutation is returned when a permutation does not cover
	// the expected index range.
	ErrBadPermutation = errors.New("permutation has wrong length")

	// ErrPermutationSupply is returned when the requested number of
	// distinct permutations cannot be generated.
	ErrPermutationSupply = errors.New("could not generate enough distinct permutations")

	// ErrNonBMPRune is returned for characters outside the basic
	// multilingual plane, which do not fit in 16 bits.
	ErrNonBMPRune = errors.New("character does not fit in 16 bits")
)

// Bits is a sequence of bit values, each element 0 or 1.
type Bits []byte

// String renders the bits as a '0'/'1' string for teaching output.
func (b Bits) String() string {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = '0' + v
	}
	return string(out)
}

// BlockToBits packs the first two characters of s into a 32-bit block,
// 16 bits per character, most significant bit first. A shorter string is
// padded with NUL characters; anything past two characters is ignored.
func BlockToBits(s string) (Bits, error) {
	runes := []rune(s)
	for len(runes) < 2 {
		runes = append(runes, 0)
	}

	bits := make(Bits, 0, BlockBits)
	for _, r := range runes[:2] {
		if r > 0xFFFF {
			return nil, fmt.Errorf("%w: %q", ErrNonBMPRune, r)
		}
		for i := 15; i >= 0; i-- {
			bits = append(bits, byte(r>>i)&1)
		}
	}
	return bits, nil
}

// BitsToBlock unpacks a 32-bit block back into its two characters.
func BitsToBlock(bits Bits) (string, error) {
	if len(bits) != BlockBits {
		return "", ErrBadBlockLength
	}

	out := make([]rune, 2)
	for c := 0; c < 2; c++ {
		var v rune
		for i := 0; i < 16; i++ {
			v = v<<1 | rune(bits[c*16+i])
		}
		out[c] = v
	}
	return string(out), nil
}

// GeneratePermutations returns count distinct permutations of
// 0..size-1, each produced by the given number of random pairwise swaps
// of the identity. The generator is seeded, so the key schedule is
// reproducible. Every returned permutation differs from the identity;
// generation fails if the supply of distinct permutations runs out.
func GeneratePermutations(size, count, swaps int, seed int64) ([][]int, error) {
	rng := rand.New(rand.NewSource(seed))

	identity := make([]int, size)
	for i := range identity {
		identity[i] = i
	}

	var perms [][]int
	for attempts := 0; len(perms) < count && attempts < count*10; attempts++ {
		p := swapPermutation(identity, swaps, rng)
		if equalPerm(p, identity) || containsPerm(perms, p) {
			continue
		}
		perms = append(perms, p)
	}
	if len(perms) < count {
		return nil, ErrPermutationSupply
	}
	return perms, nil
}

func swapPermutation(base []int, swaps int, rng *rand.Rand) []int {
	p := make([]int, len(base))
	copy(p, base)
	for s := 0; s < swaps; s++ {
		i, j := rng.Intn(len(p)), rng.Intn(len(p))
		p[i], p[j] = p[j], p[i]
	}
	return p
}

func equalPerm(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsPerm(perms [][]int, p []int) bool {
	for _, q := range perms {
		if equalPerm(q, p) {
			return true
		}
	}
	return false
}

// PBlockEncrypt permutes a 32-bit block: output position i receives the
// bit at input position perm[i].
func PBlockEncrypt(bits Bits, perm []int) (Bits, error) {
	if len(bits) != BlockBits {
		return nil, ErrBadBlockLength
	}
	if len(perm) != BlockBits {
		return nil, ErrBadPermutation
	}

	out := make(Bits, BlockBits)
	for i := range out {
		out[i] = bits[perm[i]]
	}
	return out, nil
}

// PBlockDecrypt applies the inverse of the permutation used by
// PBlockEncrypt.
func PBlockDecrypt(bits Bits, perm []int) (Bits, error) {
	if len(bits) != BlockBits {
		return nil, ErrBadBlockLength
	}
	if len(perm) != BlockBits {
		return nil, ErrBadPermutation
	}

	inv := make([]int, BlockBits)
	for i, src := range perm {
		inv[src] = i
	}

	out := make(Bits, BlockBits)
	for i := range out {
		out[i] = bits[inv[i]]
	}
	return out, nil
}

// SBlockEncrypt substitutes one 4-bit value through a 16-entry mapping.
func SBlockEncrypt(nibble Bits, sbox []int) (Bits, error) {
	if len(nibble) != 4 {
		return nil, ErrBadBlockLength
	}
	if len(sbox) != SBoxSize {
		return nil, ErrBadPermutation
	}

	v := int(nibble[0])<<3 | int(nibble[1])<<2 | int(nibble[2])<<1 | int(nibble[3])
	return nibbleBits(sbox[v]), nil
}

// SBlockDecrypt applies the inverse of the S-block mapping.
func SBlockDecrypt(nibble Bits, sbox []int) (Bits, error) {
	if len(nibble) != 4 {
		return nil, ErrBadBlockLength
	}
	if len(sbox) != SBoxSize {
		return nil, ErrBadPermutation
	}

	inv := make([]int, SBoxSize)
	for i, v := range sbox {
		inv[v] = i
	}

	v := int(nibble[0])<<3 | int(nibble[1])<<2 | int(nibble[2])<<1 | int(nibble[3])
	return nibbleBits(inv[v]), nil
}

func nibbleBits(v int) Bits {
	return Bits{byte(v>>3) & 1, byte(v>>2) & 1, byte(v>>1) & 1, byte(v) & 1}
}

// SBatteryEncrypt splits a 32-bit block into eight nibbles and pushes
// each through the same S-block.
func SBatteryEncrypt(bits Bits, sbox []int) (Bits, error) {
	return sBattery(bits, sbox, SBlockEncrypt)
}

// SBatteryDecrypt inverts SBatteryEncrypt.
func SBatteryDecrypt(bits Bits, sbox []int) (Bits, error) {
	return sBattery(bits, sbox, SBlockDecrypt)
}

func sBattery(bits Bits, sbox []int, f func(Bits, []int) (Bits, error)) (Bits, error) {
	if len(bits) != BlockBits {
		return nil, ErrBadBlockLength
	}

	out := make(Bits, 0, BlockBits)
	for i := 0; i < 8; i++ {
		part, err := f(bits[i*4:(i+1)*4], sbox)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// Trace records the intermediate bit patterns of one block operation,
// for step-by-step teaching output.
type Trace struct {
	Input  Bits
	AfterP Bits
	AfterS Bits
	Output Bits
}

// EncryptBlock encrypts a two-character block through the P → S → P
// pipeline and reports the intermediate states.
func EncryptBlock(plain string, pPerm, sbox []int) (string, *Trace, error) {
	bits, err := BlockToBits(plain)
	if err != nil {
		return "", nil, err
	}

	afterP1, err := PBlockEncrypt(bits, pPerm)
	if err != nil {
		return "", nil, err
	}
	afterS, err := SBatteryEncrypt(afterP1, sbox)
	if err != nil {
		return "", nil, err
	}
	afterP2, err := PBlockEncrypt(afterS, pPerm)
	if err != nil {
		return "", nil, err
	}

	cipher, err := BitsToBlock(afterP2)
	if err != nil {
		return "", nil, err
	}
	return cipher, &Trace{Input: bits, AfterP: afterP1, AfterS: afterS, Output: afterP2}, nil
}

// DecryptBlock inverts EncryptBlock with the same permutations.
func DecryptBlock(cipher string, pPerm, sbox []int) (string, *Trace, error) {
	bits, err := BlockToBits(cipher)
	if err != nil {
		return "", nil, err
	}

	afterP1, err := PBlockDecrypt(bits, pPerm)
	if err != nil {
		return "", nil, err
	}
	afterS, err := SBatteryDecrypt(afterP1, sbox)
	if err != nil {
		return "", nil, err
	}
	afterP2, err := PBlockDecrypt(afterS, pPerm)
	if err != nil {
		return "", nil, err
	}

	plain, err := BitsToBlock(afterP2)
	if err != nil {
		return "", nil, err
	}
	return plain, &Trace{Input: bits, AfterP: afterP1, AfterS: afterS, Output: afterP2}, nil
}
