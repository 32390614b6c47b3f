// Package algnum stands in for the algebraic-number manager `AM` the
// engine's design treats as an external collaborator (spec §1, §6):
// arbitrary-precision real algebraic numbers, compared and displayed
// through a manager, never through language-level operators. A full
// computer-algebra implementation (root isolation over integer
// polynomials) is explicitly out of scope for this module — the engine
// only ever calls through the Manager contract listed in spec §6 — so
// this package restricts AN to the rationals, with a lightweight marker
// for simulating an irrational value in the rare seam-selection paths
// that need to tell rational and irrational endpoints apart (spec
// §4.5.2). See DESIGN.md for why a full algebraic closure was not built.
package algnum

import (
	"fmt"
	"math/big"
)

// Num is a value in the (restricted) algebraic-number domain AN: either
// an exact rational, or a marked "irrational" placeholder carrying a
// float64 tag used only to order and display it. Num is a plain value
// type; Manager.Del exists only to satisfy the external contract (spec
// §3 "each node owns the algebraic-number storage of its endpoints").
type Num struct {
	rat        *big.Rat
	irrational bool
	tag        float64 // approximate value, used only when irrational
}

// Rat returns the exact rational value of x. Zero returns
// (nil, false) if x is marked irrational.
func (x Num) Rat() (*big.Rat, bool) {
	if x.irrational {
		return nil, false
	}
	return x.rat, true
}

// FromInt builds a rational Num from an int64.
func FromInt(i int64) Num {
	return Num{rat: new(big.Rat).SetInt64(i)}
}

// FromRat builds a rational Num, taking ownership of a copy of r.
func FromRat(r *big.Rat) Num {
	return Num{rat: new(big.Rat).Set(r)}
}

// Irrational builds a placeholder Num that reports IsRational() ==
// false; approx is used only for ordering and display.
func Irrational(approx float64) Num {
	return Num{irrational: true, tag: approx}
}

// Float64 returns an approximate double value of x, used by display
// and by the sampling distribution's decimal round-trip (spec §4.6).
func (x Num) Float64() float64 {
	if x.irrational {
		return x.tag
	}
	f, _ := x.rat.Float64()
	return f
}

func (x Num) String() string {
	if x.irrational {
		return fmt.Sprintf("%g~", x.tag)
	}
	return x.rat.RatString()
}
