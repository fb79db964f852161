// Package cipherlab provides an educational RSA key-generation and
// encryption engine built on arbitrary-precision arithmetic, together
// with a set of independent classical-cipher demonstrations in its
// subpackages.
//
// Basic usage:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	kp, err := cipherlab.GenerateKeyPair(ctx, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := cipherlab.EncryptMessage("Hi", kp.E, kp.N)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := cipherlab.DecryptMessage(c, kp.D, kp.N)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text) // "Hi"
//
// # Security Model
//
// This is a keypair-and-transform engine, not a production RSA
// implementation. There is no padding scheme, so encryption is
// deterministic: the same plaintext always yields the same ciphertext
// under a given key, and callers must account for that when reasoning
// about chosen-plaintext security. Decryption accepts any ciphertext in
// range without proof that it came from a real encryption; raw RSA
// provides no authentication. No side-channel hardening is attempted
// beyond defaulting to a cryptographically secure randomness source.
//
// Messages are encoded as a single big-endian integer and are not
// chunked, which bounds the plaintext length by the modulus bit-length;
// see [EncodeMessage].
//
// # Subpackages
//
// The classical, spn, streamcipher, hamming and steg packages are
// stateless, self-contained demonstrations. None of them feeds into or
// consumes the RSA engine.
package cipherlab
