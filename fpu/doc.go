// Package fpu implements the IEEE-754 binary32 unit: field pack/unpack,
// classification, add/sub/multiply with round-to-nearest-even, and the
// floating-point control/status register (FCSR).
//
// Every operation returns the result bits together with the five exception
// flags (NV, DZ, OF, UF, NX) and a pedagogical trace. The flags are
// per-operation; accumulating them into a caller-owned FCSR is the
// caller's job. No numeric input is an error: NaNs, infinities, zeros, and
// subnormals all produce defined results.
package fpu
