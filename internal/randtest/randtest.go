// Package randtest provides deterministic random sources for tests.
//
// Production code draws from crypto/rand; tests that need reproducible
// prime and keypair generation inject a SHAKE128 reader seeded with a
// fixed string instead. An extendable-output function gives an unbounded,
// uniformly distributed byte stream from a short seed, which is exactly
// the shape the prime-search loops consume.
package randtest

import (
	"io"

	"github.com/cloudflare/circl/xof"
)

// NewReader returns a deterministic io.Reader whose output stream is a
// SHAKE128 expansion of seed. The same seed always yields the same stream.
func NewReader(seed string) io.Reader {
	x := xof.SHAKE128.New()
	// Write on a fresh XOF never fails.
	_, _ = x.Write([]byte(seed))
	return x
}
