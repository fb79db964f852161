package classical

import "testing"

const (
	latin    = "abcdefghijklmnopqrstuvwxyz"
	cyrillic = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
)

func TestShiftedAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		shift    int
		alphabet string
		want     string
	}{
		{"by three", 3, "abcdef", "defabc"},
		{"zero", 0, "abcdef", "abcdef"},
		{"full cycle", 6, "abcdef", "abcdef"},
		{"negative", -1, "abcdef", "fabcde"},
		{"over length", 8, "abcdef", "cdefab"},
		{"empty", 5, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShiftedAlphabet(tt.shift, tt.alphabet); got != tt.want {
				t.Errorf("ShiftedAlphabet(%d, %q) = %q, want %q", tt.shift, tt.alphabet, got, tt.want)
			}
		})
	}
}

func TestCaesarEncrypt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		shift    int
		alphabet string
		want     string
	}{
		{"classic", "hello", 3, latin, "khoor"},
		{"case preserved", "Hello World!", 3, latin, "Khoor Zruog!"},
		{"wrap around", "xyz", 3, latin, "abc"},
		{"unknown chars pass", "a-b c!", 1, latin, "b-c d!"},
		{"cyrillic", "привет", 3, cyrillic, "тулезх"},
		{"empty alphabet", "hello", 3, "", "hello"},
		{"shift over length", "abc", 27, latin, "bcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaesarEncrypt(tt.text, tt.shift, tt.alphabet)
			if got != tt.want {
				t.Errorf("CaesarEncrypt(%q, %d) = %q, want %q", tt.text, tt.shift, got, tt.want)
			}

			if back := CaesarDecrypt(got, tt.shift, tt.alphabet); back != tt.text {
				t.Errorf("decrypt(encrypt) = %q, want %q", back, tt.text)
			}
		})
	}
}

func TestCaesarBruteForce(t *testing.T) {
	const plain = "приветики пистолетики"
	const shift = 3

	cipher := CaesarEncrypt(plain, shift, cyrillic)
	guesses := CaesarBruteForce(cipher, cyrillic)

	if len(guesses) != len([]rune(cyrillic)) {
		t.Fatalf("got %d guesses, want %d", len(guesses), len([]rune(cyrillic)))
	}
	if guesses[shift].Text != plain {
		t.Errorf("guess at shift %d = %q, want %q", shift, guesses[shift].Text, plain)
	}
}

func TestCaesarBruteForce_EmptyAlphabet(t *testing.T) {
	guesses := CaesarBruteForce("text", "")
	if len(guesses) != 1 || guesses[0].Text != "text" {
		t.Errorf("got %v, want single zero-shift identity guess", guesses)
	}
}
