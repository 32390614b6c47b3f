package iset

import "bytes"

// Node is an immutable, reference-counted interval set: an ordered run
// of disjoint (possibly adjacent) intervals, plus a "full" bit
// established once at construction time (spec §3 "Interval set"). The
// empty set has no node at all — it is the nil *Node (spec §3 "Empty
// set").
//
// Node's backing storage is owned by the Manager's slab.Pool (spec
// §4.2 C2/C3); a Node is never resized in place, only replaced.
type Node struct {
	intervals []Interval
	refCount  uint32
	full      bool
}

// NumIntervals returns s's interval count, 0 for the empty set.
func NumIntervals(s *Node) int {
	if s == nil {
		return 0
	}
	return len(s.intervals)
}

// IsFull reports whether s covers the entire real line (spec §4.4).
func IsFull(s *Node) bool {
	return s != nil && s.full
}

// At returns the idx-th interval of s. Precondition: idx <
// NumIntervals(s) (spec §4.2 "get_interval", a debugging accessor
// supplemented from original_source).
func At(s *Node, idx int) Interval {
	if s == nil || idx < 0 || idx >= len(s.intervals) {
		violate("interval index %d out of range", idx)
	}
	return s.intervals[idx]
}

// String renders s per spec §6: "{i1, i2, ...}", a trailing "*" when
// full, "{}" for the empty set.
func (mgr *Manager) String(s *Node) string {
	if s == nil {
		return "{}"
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, iv := range s.intervals {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(iv.String(mgr.AM))
	}
	buf.WriteByte('}')
	if s.full {
		buf.WriteByte('*')
	}
	return buf.String()
}
