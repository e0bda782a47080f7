// Package codec is the bijection between host integers and fixed-width
// two's-complement bit vectors, plus the width-change operations: sign
// extension, zero extension, and hardware bit-select truncation.
package codec
