// Package spn implements a toy substitution–permutation network over
// two-character blocks, for demonstrating how P-blocks and S-blocks
// compose into a block cipher.
//
// A block is the 32-bit concatenation of the 16-bit code points of two
// characters (basic multilingual plane only). Encryption applies a
// 32-position P-block permutation, then a battery of eight 4-bit
// S-blocks sharing one 16-entry substitution, then the P-block again;
// decryption inverts the three stages in reverse order.
//
// Keys are permutations generated by seeded pairwise swaps, so the same
// seed always reproduces the same key schedule. This is a teaching
// construction with no diffusion across rounds and no security value.
package spn
