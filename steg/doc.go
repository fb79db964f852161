// Package steg extracts messages hidden in .docx files through font
// sizes: a document whose visible text alternates between two nearly
// identical sizes carries one bit per character, the smaller size
// meaning 0 and the larger meaning 1.
//
// Extraction collects per-run font-size statistics from the document,
// maps the two most frequent sizes to bits, assembles the bit stream
// into bytes, and offers candidate decodings across the encodings a lab
// message is likely to use (UTF-8, UTF-16 variants, and the common
// Cyrillic code pages).
package steg
