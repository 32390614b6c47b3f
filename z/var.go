// Package z defines the opaque identifier types shared between the
// engine and its enclosing solver: variables, literals, and clause
// handles. None of these types carry any interval-set semantics; they
// are the borrowed vocabulary the engine receives its justifications
// in (spec §6 "Opaque types").
package z

import "fmt"

// Var is an integer variable identifier. The zero value is not a valid
// variable; variables are 1-indexed, following dimacs convention.
type Var uint32

// VarNull is the sentinel invalid variable.
const VarNull Var = 0

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1) | 1
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
