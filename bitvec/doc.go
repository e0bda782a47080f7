// Package bitvec implements fixed-width bit vectors and the gate-level
// primitives the rest of the core is built on.
//
// A Bits value is an MSB-first sequence of 0/1 bytes; index 0 is the sign
// bit of a two's-complement view. Values are immutable by convention: every
// operation returns a fresh vector and never resizes its inputs. Addition
// is a ripple-carry chain of full adders, and negation is invert-plus-one
// through that same adder, so carry and overflow behavior has a single
// source of truth.
package bitvec
