package algnum

import "io"

// Manager is the contract the engine consumes from AM (spec §6):
// comparison, display, "integer less/greater than", "select between",
// and a rationality test. The engine never inspects a Num's
// representation directly; every observation goes through Manager.
type Manager interface {
	// Set copies src's value into dst, in place.
	Set(dst *Num, src Num)

	// Del releases any resources x owns. Called on every endpoint of
	// a node before the node's block is returned to the allocator
	// (spec §3 "Ownership").
	Del(x *Num)

	// Compare returns a negative, zero, or positive value as a is
	// less than, equal to, or greater than b.
	Compare(a, b Num) int

	// Eq reports whether a and b denote the same value.
	Eq(a, b Num) bool

	// Lt reports whether a is strictly less than b.
	Lt(a, b Num) bool

	// IsRational reports whether x is an exact rational value.
	IsRational(x Num) bool

	// IntLt returns the largest integer strictly less than x.
	IntLt(x Num) Num

	// IntGt returns the smallest integer strictly greater than x.
	IntGt(x Num) Num

	// Select returns some value strictly between a and b. Precondition:
	// a is strictly less than b.
	Select(a, b Num) Num

	// DisplayDecimal writes a decimal rendering of x to w.
	DisplayDecimal(w io.Writer, x Num)
}
