// Package alu implements the integer ALU and the shifter.
//
// Arithmetic goes through the bitvec ripple-carry adder: SUB is ADD of the
// negated operand, so the C flag is the adder's raw carry out of the MSB
// (carry convention, not borrow). The V flag follows the two's-complement
// rule: ADD overflows when both operand signs agree and the result sign
// differs; SUB overflows when the operand signs differ and the result sign
// differs from the first operand's. Logic and compare operations report
// N/Z only.
package alu
