// Package mdu implements the multiply/divide unit.
//
// Multiplication is 32 shift-add steps over magnitudes into a 64-bit
// accumulator; division is 32 restoring-division steps with a 33-bit
// partial remainder. Both return a per-step trace alongside the result.
// The RISC-V singularities are defined results, never errors: division by
// zero yields an all-ones quotient and the dividend as remainder, and
// INT_MIN/-1 yields INT_MIN with remainder zero.
package mdu
