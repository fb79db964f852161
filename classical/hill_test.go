package classical

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestHillEncrypt_RoundTrip(t *testing.T) {
	key := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 5,
	})

	tests := []struct {
		name     string
		text     string
		alphabet string
		padded   string // expected decrypt output, including padding
	}{
		{"lab worksheet", labPlain, labAlphabet, labPlain + "_"},
		{"block aligned", "НИТК", labAlphabet, "НИТК"},
		{"latin", "attackatdawn", latin, "attackatdawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher, err := HillEncrypt(tt.text, key, tt.alphabet)
			if err != nil {
				t.Fatalf("HillEncrypt() error = %v", err)
			}

			back, err := HillDecrypt(cipher, key, tt.alphabet)
			if err != nil {
				t.Fatalf("HillDecrypt() error = %v", err)
			}
			if back != tt.padded {
				t.Errorf("round trip = %q, want %q", back, tt.padded)
			}
		})
	}
}

func TestHillEncrypt_DropsUnknownRunes(t *testing.T) {
	key := mat.NewDense(2, 2, []float64{1, 2, 3, 5})

	withJunk, err := HillEncrypt("at!ta ck", key, latin)
	if err != nil {
		t.Fatal(err)
	}
	clean, err := HillEncrypt("attack", key, latin)
	if err != nil {
		t.Fatal(err)
	}
	if withJunk != clean {
		t.Errorf("junk characters affected the ciphertext: %q vs %q", withJunk, clean)
	}
}

func TestHill_NotInvertible(t *testing.T) {
	// det = 0: no inverse modulo anything.
	singular := mat.NewDense(2, 2, []float64{2, 4, 1, 2})

	if _, err := HillDecrypt("aabb", singular, latin); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("error = %v, want ErrNotInvertible", err)
	}
}

func TestHill_DetNotCoprime(t *testing.T) {
	// det = 2 shares a factor with 26.
	key := mat.NewDense(2, 2, []float64{4, 3, 2, 2})

	if _, err := HillDecrypt("aabb", key, latin); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("error = %v, want ErrNotInvertible", err)
	}
}

func TestHill_NotSquare(t *testing.T) {
	key := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	if _, err := HillEncrypt("abc", key, latin); !errors.Is(err, ErrNotSquare) {
		t.Errorf("error = %v, want ErrNotSquare", err)
	}
}
