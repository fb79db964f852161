package classical

import (
	"strings"
	"unicode"
)

// ShiftedAlphabet returns the alphabet rotated left by shift positions.
// An empty alphabet yields an empty string.
func ShiftedAlphabet(shift int, alphabet string) string {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return ""
	}

	shift = normalizeShift(shift, n)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(runes[(i+shift)%n])
	}
	return b.String()
}

// CaesarEncrypt shifts every alphabet letter of text forward by shift
// positions. The alphabet is expected in lower case; upper-case input
// letters keep their case. Characters outside the alphabet pass through
// unchanged, and an empty alphabet leaves the text untouched.
func CaesarEncrypt(text string, shift int, alphabet string) string {
	return caesarShift(text, shift, alphabet)
}

// CaesarDecrypt shifts every alphabet letter of text backward by shift
// positions, inverting CaesarEncrypt.
func CaesarDecrypt(text string, shift int, alphabet string) string {
	return caesarShift(text, -shift, alphabet)
}

func caesarShift(text string, shift int, alphabet string) string {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return text
	}

	shift = normalizeShift(shift, n)
	idx := indexMap(runes)

	var b strings.Builder
	for _, r := range text {
		lower := unicode.ToLower(r)
		i, ok := idx[lower]
		if !ok {
			b.WriteRune(r)
			continue
		}
		out := runes[(i+shift)%n]
		if unicode.IsUpper(r) {
			out = unicode.ToUpper(out)
		}
		b.WriteRune(out)
	}
	return b.String()
}

// ShiftGuess is one candidate decryption from a brute-force sweep.
type ShiftGuess struct {
	Shift int
	Text  string
}

// CaesarBruteForce decrypts text under every possible shift and returns
// all candidates; picking the readable one is left to the caller.
func CaesarBruteForce(text, alphabet string) []ShiftGuess {
	n := len([]rune(alphabet))
	if n == 0 {
		return []ShiftGuess{{Shift: 0, Text: text}}
	}

	guesses := make([]ShiftGuess, 0, n)
	for shift := 0; shift < n; shift++ {
		guesses = append(guesses, ShiftGuess{Shift: shift, Text: CaesarDecrypt(text, shift, alphabet)})
	}
	return guesses
}
