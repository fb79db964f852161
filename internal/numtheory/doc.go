// Package numtheory provides the modular-arithmetic primitives underlying
// the RSA engine: the extended Euclidean algorithm, modular inversion, and
// modular exponentiation on arbitrary-precision integers.
//
// All functions operate on non-negative inputs unless noted; intermediate
// Bézout coefficients inside the extended Euclidean algorithm may be
// negative, and callers normalize results into [0, m-1] via [ModInverse].
//
// None of the operations here make any timing-safety claim. They are
// mathematically correct implementations, not hardened ones.
package numtheory
