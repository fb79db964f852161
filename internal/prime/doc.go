// Package prime implements probabilistic primality testing and random
// prime generation for RSA keypair construction.
//
// # Primality Oracle
//
// [IsProbablePrime] is a Miller–Rabin test preceded by trial division
// against the primes up to 29. With k rounds the probability of accepting
// a composite is at most 4^-k; a prime is never rejected. Witness bases
// are drawn uniformly from [2, n-2] out of the caller-supplied random
// source, so the statistical contract is only as good as that source.
//
// # Prime Generator
//
// [Generate] draws random odd candidates of an exact bit-length (top and
// bottom bits forced) and filters them through the oracle. The expected
// number of candidates is about bits·ln2/2 by the prime number theorem,
// but termination is a liveness expectation, not a hard bound: the search
// loop runs until a probable prime appears or the context is cancelled.
package prime
