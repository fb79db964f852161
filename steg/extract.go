package steg

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrNotEnoughSizes is returned when the document uses fewer than two
// distinct font sizes, leaving nothing to decode.
var ErrNotEnoughSizes = errors.New("need at least two distinct font sizes to decode")

// ExtractBits recovers the hidden bit stream from a sequence of runs.
// The two most frequent font sizes (weighted by character count) form
// the bit alphabet, the smaller one meaning '0' and the larger '1'.
// Characters in runs of any other size are skipped, as are newlines.
func ExtractBits(runs []Run) (string, error) {
	weights := make(map[float64]int)
	for _, r := range runs {
		weights[r.SizePt] += len([]rune(r.Text))
	}
	if len(weights) < 2 {
		return "", ErrNotEnoughSizes
	}

	type sizeCount struct {
		size  float64
		count int
	}
	stats := make([]sizeCount, 0, len(weights))
	for size, count := range weights {
		stats = append(stats, sizeCount{size, count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].size < stats[j].size
	})

	zeroSize, oneSize := stats[0].size, stats[1].size
	if zeroSize > oneSize {
		zeroSize, oneSize = oneSize, zeroSize
	}

	var bits strings.Builder
	for _, r := range runs {
		var bit byte
		switch r.SizePt {
		case zeroSize:
			bit = '0'
		case oneSize:
			bit = '1'
		default:
			continue
		}
		for _, ch := range r.Text {
			if ch != '\n' {
				bits.WriteByte(bit)
			}
		}
	}
	return bits.String(), nil
}

// BitsToBytes packs a '0'/'1' string into bytes, MSB first. A trailing
// partial byte is discarded.
func BitsToBytes(bits string) []byte {
	bits = bits[:len(bits)-len(bits)%8]

	out := make([]byte, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if bits[i+j] == '1' {
				b |= 1
			}
		}
		out = append(out, b)
	}
	return out
}

// candidateEncodings are the text encodings a lab message plausibly
// uses: Unicode transformation formats plus the common Cyrillic code
// pages. A nil encoding means raw UTF-8.
var candidateEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", nil},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"utf-16-le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{"utf-16-be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{"windows-1251", charmap.Windows1251},
	{"koi8-r", charmap.KOI8R},
	{"koi8-u", charmap.KOI8U},
	{"iso-8859-5", charmap.ISO8859_5},
}

// CandidateDecodings decodes data under every candidate encoding and
// returns the results keyed by encoding name. Undecodable input maps to
// a replacement-character rendition rather than an error; picking the
// readable candidate is the caller's job.
func CandidateDecodings(data []byte) map[string]string {
	out := make(map[string]string, len(candidateEncodings))
	for _, c := range candidateEncodings {
		if c.enc == nil {
			out[c.name] = strings.ToValidUTF8(string(data), "�")
			continue
		}
		decoded, err := c.enc.NewDecoder().Bytes(data)
		if err != nil {
			out[c.name] = "<decode error>"
			continue
		}
		out[c.name] = string(decoded)
	}
	return out
}

// ExtractMessage is the full pipeline: read runs from a .docx file,
// recover the bit stream, pack it into bytes, and return the candidate
// decodings.
func ExtractMessage(path string) (map[string]string, error) {
	runs, err := ReadRunsFromFile(path)
	if err != nil {
		return nil, err
	}
	bits, err := ExtractBits(runs)
	if err != nil {
		return nil, err
	}
	return CandidateDecodings(BitsToBytes(bits)), nil
}
