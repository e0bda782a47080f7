// Package engine is the integrated execute unit: the datapath hands it an
// operation tag and two operand bit vectors, and it dispatches to the
// matching unit and hands back result bits and flags.
//
// Each Engine owns one FCSR; floating-point flags accumulate into it on
// every floating operation. Everything else is stateless.
package engine
