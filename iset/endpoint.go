package iset

import "github.com/irifrance/nia/algnum"

// Endpoint is one side of an interval: a value in AN together with an
// openness flag, or the distinguished infinite marker. An infinite
// endpoint is always open (spec §3 "Endpoint").
type Endpoint struct {
	Val  algnum.Num
	Open bool
	Inf  bool
}

// NegInf returns the open, infinite lower endpoint (-∞).
func NegInf() Endpoint { return Endpoint{Open: true, Inf: true} }

// PosInf returns the open, infinite upper endpoint (+∞).
func PosInf() Endpoint { return Endpoint{Open: true, Inf: true} }

// compareLowerLower is the three-way comparator on lower endpoints
// (spec §4.1): -∞ sorts before anything finite; on equal finite
// values, a closed lower endpoint sorts before an open one, since a
// closed endpoint includes a value the open one excludes.
func compareLowerLower(am algnum.Manager, a, b Endpoint) int {
	switch {
	case a.Inf && b.Inf:
		return 0
	case a.Inf:
		return -1
	case b.Inf:
		return 1
	}
	if c := am.Compare(a.Val, b.Val); c != 0 {
		return c
	}
	switch {
	case a.Open == b.Open:
		return 0
	case !a.Open:
		return -1
	default:
		return 1
	}
}

// compareUpperUpper is the three-way comparator on upper endpoints
// (spec §4.1): +∞ sorts after anything finite; on equal finite values,
// an open upper endpoint sorts before a closed one.
func compareUpperUpper(am algnum.Manager, a, b Endpoint) int {
	switch {
	case a.Inf && b.Inf:
		return 0
	case a.Inf:
		return 1
	case b.Inf:
		return -1
	}
	if c := am.Compare(a.Val, b.Val); c != 0 {
		return c
	}
	switch {
	case a.Open == b.Open:
		return 0
	case a.Open:
		return -1
	default:
		return 1
	}
}

// compareUpperLower is the three-way comparator testing whether upper
// (the upper endpoint of one interval) reaches or passes lower (the
// lower endpoint of another): positive means they overlap or one side
// is infinite; zero means they share exactly one closed point; negative
// means they are disjoint, whether by a real gap or by touching with at
// least one open side (spec §4.1).
func compareUpperLower(am algnum.Manager, upper, lower Endpoint) int {
	if upper.Inf || lower.Inf {
		return 1
	}
	if c := am.Compare(upper.Val, lower.Val); c != 0 {
		return c
	}
	if !upper.Open && !lower.Open {
		return 0
	}
	return -1
}

// touches reports whether upper and lower share exactly the same
// finite value — a zero-width seam, regardless of which side (if any)
// is open. This is purely an "equal value" test; it does not by itself
// tell you whether the seam leaves a gap. Used where witness selection
// needs to locate a shared point, not whether it closes a gap.
func touches(am algnum.Manager, upper, lower Endpoint) bool {
	if upper.Inf || lower.Inf {
		return false
	}
	return am.Eq(upper.Val, lower.Val)
}

// adjacent reports whether upper and lower meet with no real gap
// between them (spec GLOSSARY "Adjacent intervals", §3 invariant 4,
// §4.3 "no real gap"): equal finite value, and at least one side
// closed, so the shared point is covered by one of the two intervals.
// A both-open seam at the same value is *not* adjacent — the point
// between them belongs to neither interval, a genuine gap of width
// zero.
func adjacent(am algnum.Manager, upper, lower Endpoint) bool {
	if upper.Inf || lower.Inf {
		return false
	}
	if !am.Eq(upper.Val, lower.Val) {
		return false
	}
	return !upper.Open || !lower.Open
}
