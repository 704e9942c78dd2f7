// Package level implements the core conversion pipeline: parsing a text
// stream of 2-bit level tokens, padding the sequence to a multiple of four,
// and packing each group of four values into one byte, most-significant
// value first.
package level
