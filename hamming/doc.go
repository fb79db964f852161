// Package hamming simulates a single-error-correcting Hamming code over
// an arbitrary symbol alphabet.
//
// Given an alphabet, the package picks the minimal (n, m) Hamming code
// whose data width covers the alphabet, encodes each symbol into a
// codeword with parity bits at the power-of-two positions, and can then
// flip bits, compute syndromes, correct single-bit errors and decode
// back to text with a per-codeword report. Double-bit errors are out of
// the code's reach and decode to the wrong symbol, which is part of the
// lesson.
package hamming
