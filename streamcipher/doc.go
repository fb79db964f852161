// Package streamcipher implements an RC4-class keystream cipher for
// study: a 256-byte permutation key, a key-scheduling mix, and a
// pseudo-random generation phase whose output gamma is XORed with the
// plaintext. Encryption and decryption are the same transform.
//
// Keys are generated by seeded pairwise swaps so that lab runs are
// reproducible. RC4-style generators have well-known statistical biases
// and this construction must not protect real data.
package streamcipher
