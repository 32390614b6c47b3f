package z

import "fmt"

// Lit is a literal: a variable paired with a sign. The low bit carries
// the sign (0 = positive, 1 = negative); the remaining bits carry the
// variable, matching the packing `Var.Pos`/`Var.Neg` produce. Two
// literals compare equal iff they carry the same variable and sign —
// callers must never conflate a literal with its negation when testing
// justification equality (spec §9 "Justification equality").
type Lit uint32

// LitNull is the sentinel invalid literal.
const LitNull Lit = 0

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos returns true if m is a positive literal.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Sign returns 1 for a positive literal, -1 for a negative literal.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Index returns a dense, zero-based index distinguishing m from every
// other literal, including its own negation.
func (m Lit) Index() uint32 {
	return uint32(m)
}

// Dimacs2Lit converts a non-zero dimacs literal (signed variable index)
// into a Lit.
func Dimacs2Lit(d int) Lit {
	if d < 0 {
		return Var(-d).Neg()
	}
	return Var(d).Pos()
}

// Dimacs returns the dimacs (signed variable index) form of m.
func (m Lit) Dimacs() int {
	d := int(m.Var())
	if !m.IsPos() {
		d = -d
	}
	return d
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%s", m.Var())
	}
	return fmt.Sprintf("-%s", m.Var())
}
