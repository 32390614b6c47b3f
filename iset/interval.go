package iset

import (
	"bytes"

	"github.com/irifrance/nia/algnum"
	"github.com/irifrance/nia/z"
)

// Interval is one forbidden sub-range together with the literal (and
// optional clause) that justifies it (spec §3 "Interval"). Clause may
// be z.CNull; it is borrowed, never owned.
type Interval struct {
	Lower Endpoint
	Upper Endpoint

	Justification z.Lit
	Clause        z.C
}

// sameJustification reports whether a and b were forbidden for the
// same reason: equal literal, index and sign bit together (spec §9
// "Justification equality" — conflating a literal with its negation
// would silently fuse contradictory regions).
func sameJustification(a, b Interval) bool {
	return a.Justification == b.Justification
}

// checkWellFormed panics with a ViolationError if iv violates the
// per-interval invariant of spec §3: finite endpoints in order, and a
// degenerate lower==upper point closed on both sides.
func checkWellFormed(am algnum.Manager, iv Interval) {
	if iv.Lower.Inf && !iv.Lower.Open {
		violate("infinite lower endpoint must be open")
	}
	if iv.Upper.Inf && !iv.Upper.Open {
		violate("infinite upper endpoint must be open")
	}
	if iv.Lower.Inf || iv.Upper.Inf {
		return
	}
	c := am.Compare(iv.Lower.Val, iv.Upper.Val)
	if c > 0 {
		violate("interval lower > upper")
	}
	if c == 0 && (iv.Lower.Open || iv.Upper.Open) {
		violate("degenerate point interval must be closed on both ends")
	}
}

func (iv Interval) String(am algnum.Manager) string {
	var buf bytes.Buffer
	if iv.Lower.Inf {
		buf.WriteString("(-oo")
	} else if iv.Lower.Open {
		buf.WriteByte('(')
		am.DisplayDecimal(&buf, iv.Lower.Val)
	} else {
		buf.WriteByte('[')
		am.DisplayDecimal(&buf, iv.Lower.Val)
	}
	buf.WriteString(" , ")
	if iv.Upper.Inf {
		buf.WriteString("oo)")
	} else {
		am.DisplayDecimal(&buf, iv.Upper.Val)
		if iv.Upper.Open {
			buf.WriteByte(')')
		} else {
			buf.WriteByte(']')
		}
	}
	return buf.String()
}
