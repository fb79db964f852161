package classical

import (
	"strings"
	"unicode"
)

// normalizeKey keeps only the key characters present in the alphabet,
// lower-cased. An empty result is an error: the cipher would degenerate.
func normalizeKey(key string, idx map[rune]int) ([]int, error) {
	var shifts []int
	for _, r := range key {
		if i, ok := idx[unicode.ToLower(r)]; ok {
			shifts = append(shifts, i)
		}
	}
	if len(shifts) == 0 {
		return nil, ErrEmptyKey
	}
	return shifts, nil
}

// VigenereEncrypt applies a running key: the i-th alphabet letter of the
// text is shifted by the position of the i-th key letter. The key index
// advances only on alphabet letters, so punctuation does not desync the
// key stream. Case is preserved and unknown characters pass through.
func VigenereEncrypt(text, key, alphabet string) (string, error) {
	return vigenereShift(text, key, alphabet, 1)
}

// VigenereDecrypt inverts VigenereEncrypt under the same key.
func VigenereDecrypt(text, key, alphabet string) (string, error) {
	return vigenereShift(text, key, alphabet, -1)
}

func vigenereShift(text, key, alphabet string, dir int) (string, error) {
	runes := []rune(alphabet)
	n := len(runes)
	if n == 0 {
		return text, nil
	}

	idx := indexMap(runes)
	shifts, err := normalizeKey(key, idx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	ki := 0
	for _, r := range text {
		lower := unicode.ToLower(r)
		i, ok := idx[lower]
		if !ok {
			b.WriteRune(r)
			continue
		}
		shift := shifts[ki%len(shifts)] * dir
		ki++
		out := runes[normalizeShift(i+shift, n)]
		if unicode.IsUpper(r) {
			out = unicode.ToUpper(out)
		}
		b.WriteRune(out)
	}
	return b.String(), nil
}
