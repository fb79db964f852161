// Package classical implements substitution ciphers over caller-supplied
// alphabets: the Caesar shift, the Vigenère polyalphabetic cipher, the
// affine cipher, and the Hill matrix cipher.
//
// An alphabet is a string of unique runes in order. Characters outside
// the alphabet pass through unchanged for Caesar, Vigenère and affine;
// the Hill cipher drops them, since it operates on fixed-size blocks of
// alphabet indices.
//
// Every cipher here is trivially breakable and provided for study only;
// the brute-force helpers exist to make that point.
package classical
