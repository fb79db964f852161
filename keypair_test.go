package cipherlab

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/tOtiana23/cipherlab-go/internal/numtheory"
	"github.com/tOtiana23/cipherlab-go/internal/prime"
	"github.com/tOtiana23/cipherlab-go/internal/randtest"
)

// testPrimeBits keeps unit-test key generation fast while staying above
// MinPrimeBits.
const testPrimeBits = 64

func mustKeyPair(t *testing.T, bits int, opts ...KeyOption) *KeyPair {
	t.Helper()
	kp, err := GenerateKeyPair(context.Background(), bits, opts...)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	return kp
}

func TestGenerateKeyPair_Invariants(t *testing.T) {
	kp := mustKeyPair(t, testPrimeBits)

	if kp.P.Cmp(kp.Q) == 0 {
		t.Error("p == q")
	}

	for _, f := range []struct {
		name string
		v    *big.Int
	}{{"p", kp.P}, {"q", kp.Q}} {
		ok, err := prime.IsProbablePrime(f.v, prime.DefaultRounds, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("%s fails the primality oracle", f.name)
		}
	}

	if got := new(big.Int).Mul(kp.P, kp.Q); got.Cmp(kp.N) != 0 {
		t.Error("n != p*q")
	}

	wantPhi := new(big.Int).Mul(
		new(big.Int).Sub(kp.P, big.NewInt(1)),
		new(big.Int).Sub(kp.Q, big.NewInt(1)),
	)
	if wantPhi.Cmp(kp.Phi) != 0 {
		t.Error("phi != (p-1)(q-1)")
	}

	if numtheory.GCD(kp.E, kp.Phi).Cmp(big.NewInt(1)) != 0 {
		t.Error("gcd(e, phi) != 1")
	}

	ed := new(big.Int).Mul(kp.E, kp.D)
	ed.Mod(ed, kp.Phi)
	if ed.Cmp(big.NewInt(1)) != 0 {
		t.Error("e*d mod phi != 1")
	}

	// Both primes have the top bit forced, so n has 2b-1 or 2b bits.
	if bl := kp.N.BitLen(); bl != 2*testPrimeBits && bl != 2*testPrimeBits-1 {
		t.Errorf("n bit length = %d, want %d or %d", bl, 2*testPrimeBits-1, 2*testPrimeBits)
	}
}

func TestGenerateKeyPair_FixedExponent(t *testing.T) {
	kp := mustKeyPair(t, testPrimeBits)
	if kp.E.Cmp(big.NewInt(DefaultExponent)) != 0 {
		t.Errorf("e = %v, want %d", kp.E, DefaultExponent)
	}
}

func TestGenerateKeyPair_RandomExponent(t *testing.T) {
	kp := mustKeyPair(t, testPrimeBits, WithRandomExponent())

	if kp.E.Cmp(big.NewInt(2)) < 0 || kp.E.Cmp(kp.Phi) >= 0 {
		t.Errorf("e = %v outside [2, phi)", kp.E)
	}
	if numtheory.GCD(kp.E, kp.Phi).Cmp(big.NewInt(1)) != 0 {
		t.Error("gcd(e, phi) != 1")
	}
}

func TestGenerateKeyPair_ExponentBits(t *testing.T) {
	kp := mustKeyPair(t, testPrimeBits, WithExponentBits(17))

	if kp.E.BitLen() != 17 {
		t.Errorf("e bit length = %d, want 17", kp.E.BitLen())
	}
	if kp.E.Bit(0) != 1 {
		t.Error("e is even")
	}
	if numtheory.GCD(kp.E, kp.Phi).Cmp(big.NewInt(1)) != 0 {
		t.Error("gcd(e, phi) != 1")
	}
}

func TestGenerateKeyPair_PrimeBitsTooSmall(t *testing.T) {
	tests := []struct {
		name string
		bits int
	}{
		{"zero", 0},
		{"negative", -8},
		{"fifteen", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateKeyPair(context.Background(), tt.bits)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestGenerateKeyPair_MinimumBits(t *testing.T) {
	kp := mustKeyPair(t, MinPrimeBits)
	if kp.P.BitLen() != MinPrimeBits || kp.Q.BitLen() != MinPrimeBits {
		t.Errorf("prime bit lengths = %d, %d; want %d", kp.P.BitLen(), kp.Q.BitLen(), MinPrimeBits)
	}
}

func TestGenerateKeyPair_Deterministic(t *testing.T) {
	kp1 := mustKeyPair(t, testPrimeBits, WithRand(randtest.NewReader("keypair")))
	kp2 := mustKeyPair(t, testPrimeBits, WithRand(randtest.NewReader("keypair")))

	if kp1.N.Cmp(kp2.N) != 0 || kp1.D.Cmp(kp2.D) != 0 {
		t.Error("same seed produced different keypairs")
	}
}

func TestGenerateKeyPair_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateKeyPair(ctx, testPrimeBits)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestKeyPair_Views(t *testing.T) {
	kp := mustKeyPair(t, testPrimeBits)

	pub, priv := kp.Public(), kp.Private()
	if pub.N != priv.N {
		t.Error("public and private views do not share the modulus")
	}
	if pub.E.Cmp(kp.E) != 0 || priv.D.Cmp(kp.D) != 0 {
		t.Error("views do not match keypair exponents")
	}
}

func TestKeyPair_Fingerprint(t *testing.T) {
	kp1 := mustKeyPair(t, testPrimeBits, WithRand(randtest.NewReader("fp-a")))
	kp2 := mustKeyPair(t, testPrimeBits, WithRand(randtest.NewReader("fp-b")))

	fp1, fp2 := kp1.Fingerprint(), kp2.Fingerprint()
	if len(fp1) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(fp1))
	}
	if fp1 == fp2 {
		t.Error("distinct keys share a fingerprint")
	}
	if fp1 != kp1.Fingerprint() {
		t.Error("fingerprint is not stable")
	}
}
