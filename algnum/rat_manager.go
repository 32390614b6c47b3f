package algnum

import (
	"fmt"
	"io"
	"math/big"
)

// RatManager is the default Manager: AN restricted to exact rationals,
// plus the irrational placeholder from Num.Irrational. It has no
// internal state and no lifetime of its own — Del only resets x to the
// zero Num, releasing nothing, because Go's garbage collector, not the
// manager, owns Num's backing
// *big.Rat; the original AM instead frees nodes from its own private
// arena, a responsibility this stand-in does not need to replicate
// (see DESIGN.md).
type RatManager struct{}

// NewRatManager returns a ready-to-use rational number manager.
func NewRatManager() *RatManager {
	return &RatManager{}
}

func (RatManager) Set(dst *Num, src Num) {
	*dst = src
}

func (RatManager) Del(x *Num) {
	*x = Num{}
}

func (RatManager) Compare(a, b Num) int {
	if a.irrational || b.irrational {
		af, bf := a.Float64(), b.Float64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return a.rat.Cmp(b.rat)
}

func (m RatManager) Eq(a, b Num) bool {
	return m.Compare(a, b) == 0
}

func (m RatManager) Lt(a, b Num) bool {
	return m.Compare(a, b) < 0
}

func (RatManager) IsRational(x Num) bool {
	return !x.irrational
}

// floorRat returns the largest integer <= x, as a *big.Int. big.Rat's
// denominator is always positive, so Euclidean div/mod of numerator by
// denominator already computes the floor.
func floorRat(r *big.Rat) *big.Int {
	num := r.Num()
	den := r.Denom()
	q, m := new(big.Int), new(big.Int)
	q.DivMod(num, den, m)
	return q
}

func (RatManager) IntLt(x Num) Num {
	if x.irrational {
		f := x.tag
		fl := big.NewFloat(f)
		i, _ := fl.Int(nil)
		r := new(big.Rat).SetInt(i)
		if r.Cmp(new(big.Rat).SetFloat64(f)) >= 0 {
			i.Sub(i, big.NewInt(1))
		}
		return FromRat(new(big.Rat).SetInt(i))
	}
	q := floorRat(x.rat)
	if new(big.Rat).SetInt(q).Cmp(x.rat) == 0 {
		q.Sub(q, big.NewInt(1))
	}
	return FromRat(new(big.Rat).SetInt(q))
}

func (RatManager) IntGt(x Num) Num {
	if x.irrational {
		fl := big.NewFloat(x.tag)
		i, _ := fl.Int(nil)
		if new(big.Rat).SetInt(i).Cmp(new(big.Rat).SetFloat64(x.tag)) <= 0 {
			i.Add(i, big.NewInt(1))
		}
		return FromRat(new(big.Rat).SetInt(i))
	}
	// floor(x)+1 is always strictly greater than x.
	q := floorRat(x.rat)
	q.Add(q, big.NewInt(1))
	return FromRat(new(big.Rat).SetInt(q))
}

// Select returns the midpoint of a and b, an exact rational strictly
// between them whenever a < b.
func (RatManager) Select(a, b Num) Num {
	if a.irrational || b.irrational {
		mid := (a.Float64() + b.Float64()) / 2
		return FromRat(new(big.Rat).SetFloat64(mid))
	}
	sum := new(big.Rat).Add(a.rat, b.rat)
	half := new(big.Rat).Quo(sum, big.NewRat(2, 1))
	return FromRat(half)
}

func (RatManager) DisplayDecimal(w io.Writer, x Num) {
	if x.irrational {
		fmt.Fprintf(w, "%g~", x.tag)
		return
	}
	fmt.Fprint(w, x.rat.FloatString(6))
}
