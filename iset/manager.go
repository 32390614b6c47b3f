package iset

import (
	"log"
	"math/rand"

	"github.com/irifrance/nia/algnum"
	"github.com/irifrance/nia/internal/slab"
	"github.com/irifrance/nia/z"
)

// Manager is the engine instance: it wraps exactly one algebraic-number
// manager and one allocator, for the lifetime of every node it issues
// (spec §5 "Shared resource"). It is not safe for concurrent use.
type Manager struct {
	AM   algnum.Manager
	pool *slab.Pool[Interval]
	rnd  *rand.Rand

	// visited is the reusable "already visited" scratch set
	// Justifications (C5) dedupes literals with; it is cleared at the
	// end of every call so the method stays re-entrant across calls
	// (spec §5), though not within one in-flight call.
	visited bitset

	// Log receives rare diagnostic traces (e.g. falling back to the
	// seam search in PeekInComplement's random mode). A nil Log is
	// silent. Following gini/internal/xo's own choice of the standard
	// "log" package for this kind of internal diagnostic (spec
	// AMBIENT STACK "Logging").
	Log *log.Logger
}

// NewManager returns a ready engine instance over am, seeded
// deterministically for its randomized witness selection.
func NewManager(am algnum.Manager, seed int64) *Manager {
	return &Manager{
		AM:   am,
		pool: slab.NewPool[Interval](),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// SetSeed reseeds the manager's own PRNG, used by randomized witness
// selection (spec §5 "Determinism").
func (mgr *Manager) SetSeed(seed int64) {
	mgr.rnd = rand.New(rand.NewSource(seed))
}

// MkEmpty returns the empty set: the nil sentinel (spec §4.2).
func MkEmpty() *Node { return nil }

// Mk allocates a one-interval set (spec §4.2). If both endpoints are
// infinite, the returned set is full. Panics with a ViolationError if
// the endpoints are malformed (spec §3 invariant, §7).
func (mgr *Manager) Mk(lowerOpen, lowerInf bool, lower algnum.Num, upperOpen, upperInf bool, upper algnum.Num, justification z.Lit, clause z.C) *Node {
	iv := Interval{
		Lower:         Endpoint{Val: lower, Open: lowerOpen, Inf: lowerInf},
		Upper:         Endpoint{Val: upper, Open: upperOpen, Inf: upperInf},
		Justification: justification,
		Clause:        clause,
	}
	checkWellFormed(mgr.AM, iv)
	blk := mgr.pool.Alloc(1)
	blk[0] = iv
	return &Node{intervals: blk, full: lowerInf && upperInf}
}

// IncRef increments s's reference count. IncRef(nil) is a no-op (spec
// §3 "Empty set... all operations accept it").
func (mgr *Manager) IncRef(s *Node) {
	if s == nil {
		return
	}
	s.refCount++
}

// DecRef decrements s's reference count, freeing s's storage — tearing
// down every endpoint through AM.Del first — when the count reaches
// zero (spec §4.2). Panics with a ViolationError if s's count is
// already zero (spec §7).
func (mgr *Manager) DecRef(s *Node) {
	if s == nil {
		return
	}
	if s.refCount == 0 {
		violate("dec_ref on a node with zero reference count")
	}
	s.refCount--
	if s.refCount != 0 {
		return
	}
	for i := range s.intervals {
		mgr.AM.Del(&s.intervals[i].Lower.Val)
		mgr.AM.Del(&s.intervals[i].Upper.Val)
	}
	mgr.pool.Free(len(s.intervals), s.intervals)
	s.intervals = nil
}
