package iset

import (
	"github.com/irifrance/nia/algnum"
	"github.com/irifrance/nia/z"
)

// Subset reports whether every point forbidden by s1 is also forbidden
// by s2 (spec §4.4): a linear two-cursor scan, each s1 interval covered
// by a contiguous, possibly-adjacency-bridged run of s2 intervals.
func (mgr *Manager) Subset(s1, s2 *Node) bool {
	if s1 == nil {
		return true
	}
	if s2 == nil {
		return false
	}
	if s2.full {
		return true
	}
	if s1.full {
		return false
	}
	am := mgr.AM
	n2 := len(s2.intervals)
	j := 0
	for _, a := range s1.intervals {
		// Skip s2 intervals that end before a begins.
		for j < n2 && compareUpperLower(am, s2.intervals[j].Upper, a.Lower) < 0 {
			j++
		}
		if j >= n2 {
			return false
		}
		if compareLowerLower(am, s2.intervals[j].Lower, a.Lower) > 0 {
			return false
		}
		cur := s2.intervals[j]
		for compareUpperUpper(am, cur.Upper, a.Upper) < 0 {
			if j+1 >= n2 || !adjacent(am, cur.Upper, s2.intervals[j+1].Lower) {
				return false
			}
			j++
			cur = s2.intervals[j]
		}
	}
	return true
}

// SetEq reports whether s1 and s2 cover the same subset of the reals,
// ignoring justifications (spec §4.4).
func (mgr *Manager) SetEq(s1, s2 *Node) bool {
	return mgr.Subset(s1, s2) && mgr.Subset(s2, s1)
}

// Eq reports full structural equality of s1 and s2, including
// justification, sign, openness, and endpoint values (spec §4.4).
func (mgr *Manager) Eq(s1, s2 *Node) bool {
	if s1 == s2 {
		return true
	}
	if s1 == nil || s2 == nil {
		return false
	}
	if len(s1.intervals) != len(s2.intervals) {
		return false
	}
	am := mgr.AM
	for i := range s1.intervals {
		a, b := s1.intervals[i], s2.intervals[i]
		if !endpointEq(am, a.Lower, b.Lower) || !endpointEq(am, a.Upper, b.Upper) {
			return false
		}
		if a.Justification != b.Justification || a.Clause != b.Clause {
			return false
		}
	}
	return true
}

func endpointEq(am algnum.Manager, a, b Endpoint) bool {
	if a.Inf != b.Inf || a.Open != b.Open {
		return false
	}
	if a.Inf {
		return true
	}
	return am.Eq(a.Val, b.Val)
}

// Justifications returns every distinct literal appearing in s,
// together with its attached clause (skipping z.CNull), in first-seen
// order (spec §4.4 "get_justifications"). The scratch "visited" bitset
// is cleared before returning so the call is re-entrant.
func (mgr *Manager) Justifications(s *Node) ([]z.Lit, []z.C) {
	if s == nil {
		return nil, nil
	}
	var lits []z.Lit
	var clauses []z.C
	var touchedBits []uint32
	for _, iv := range s.intervals {
		idx := iv.Justification.Index()
		if mgr.visited.test(idx) {
			continue
		}
		mgr.visited.set(idx)
		touchedBits = append(touchedBits, idx)
		lits = append(lits, iv.Justification)
		if iv.Clause != z.CNull {
			clauses = append(clauses, iv.Clause)
		}
	}
	for _, idx := range touchedBits {
		mgr.visited.clear(idx)
	}
	return lits, clauses
}
