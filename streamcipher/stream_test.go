package streamcipher

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKey_IsPermutation(t *testing.T) {
	key := GenerateKey(12345, 4096)

	if len(key) != KeySize {
		t.Fatalf("key length = %d, want %d", len(key), KeySize)
	}

	var seen [KeySize]bool
	for _, v := range key {
		if seen[v] {
			t.Fatalf("value %d repeats; key is not a permutation", v)
		}
		seen[v] = true
	}
}

func TestGenerateKey_Deterministic(t *testing.T) {
	a := GenerateKey(12345, 4096)
	b := GenerateKey(12345, 4096)
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different keys")
	}

	c := GenerateKey(54321, 4096)
	if bytes.Equal(a, c) {
		t.Error("different seeds produced the same key")
	}
}

func TestInitState_BadKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 255, 257} {
		if _, err := InitState(make([]byte, size)); !errors.Is(err, ErrBadKeySize) {
			t.Errorf("key size %d: error = %v, want ErrBadKeySize", size, err)
		}
	}
}

func TestGamma_Deterministic(t *testing.T) {
	state, err := InitState(GenerateKey(1, 1024))
	if err != nil {
		t.Fatal(err)
	}

	g1, err := Gamma(state, 64)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Gamma(state, 64)
	if err != nil {
		t.Fatal(err)
	}

	// Gamma must not mutate the passed state.
	if !bytes.Equal(g1, g2) {
		t.Error("two gammas from the same state differ")
	}
}

func TestXORBytes(t *testing.T) {
	out, err := XORBytes([]byte{0x00, 0xFF, 0xAA}, []byte{0xFF, 0xFF, 0x55})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0xFF, 0x00, 0xFF}) {
		t.Errorf("XOR = %x, want ff00ff", out)
	}

	if _, err := XORBytes([]byte{1, 2}, []byte{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestEncryptBytes_RoundTrip(t *testing.T) {
	key := GenerateKey(12345, 4096)

	tests := []struct {
		name    string
		message []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("Hello, world!")},
		{"binary", []byte{0x00, 0xFF, 0x7F, 0x80}},
		{"long", bytes.Repeat([]byte("streamcipher"), 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher, err := EncryptBytes(tt.message, key)
			if err != nil {
				t.Fatalf("EncryptBytes() error = %v", err)
			}
			if len(tt.message) > 0 && bytes.Equal(cipher, tt.message) {
				t.Error("ciphertext equals plaintext")
			}

			plain, err := DecryptBytes(cipher, key)
			if err != nil {
				t.Fatalf("DecryptBytes() error = %v", err)
			}
			if !bytes.Equal(plain, tt.message) {
				t.Errorf("round trip = %x, want %x", plain, tt.message)
			}
		})
	}
}

func TestEncryptText_RoundTrip(t *testing.T) {
	key := GenerateKey(12345, 4096)

	tests := []struct {
		name string
		text string
	}{
		{"ascii", "Hello, world!"},
		{"cyrillic", "Привет, мир"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher, err := EncryptText(tt.text, key)
			if err != nil {
				t.Fatalf("EncryptText() error = %v", err)
			}

			// UTF-16BE: two bytes per BMP character.
			if want := 2 * len([]rune(tt.text)); len(cipher) != want {
				t.Errorf("ciphertext length = %d, want %d", len(cipher), want)
			}

			plain, err := DecryptText(cipher, key)
			if err != nil {
				t.Fatalf("DecryptText() error = %v", err)
			}
			if plain != tt.text {
				t.Errorf("round trip = %q, want %q", plain, tt.text)
			}
		})
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	cipher, err := EncryptText("Привет, мир", GenerateKey(1, 4096))
	if err != nil {
		t.Fatal(err)
	}

	// A different key must not reproduce the plaintext bytes.
	plain, err := DecryptBytes(cipher, GenerateKey(2, 4096))
	if err != nil {
		t.Fatal(err)
	}
	want, err := utf16be.NewEncoder().Bytes([]byte("Привет, мир"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(plain, want) {
		t.Error("wrong key decrypted successfully")
	}
}
