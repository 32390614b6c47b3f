package iset

import (
	"testing"

	"github.com/irifrance/nia/algnum"
	"github.com/irifrance/nia/dist"
	"github.com/irifrance/nia/z"
)

func newTestManager() *Manager {
	return NewManager(algnum.NewRatManager(), 1)
}

func num(n int64) algnum.Num { return algnum.FromInt(n) }

// mk builds a finite, closed-or-open one-interval set with justification
// lit, shorthand for the Mk calls the end-to-end scenarios describe.
func mk(mgr *Manager, loOpen bool, lo int64, hiOpen bool, hi int64, lit z.Lit) *Node {
	return mgr.Mk(loOpen, false, num(lo), hiOpen, false, num(hi), lit, z.CNull)
}

func mkRay(mgr *Manager, hasLow bool, bound int64, lit z.Lit) *Node {
	if hasLow {
		return mgr.Mk(false, false, num(bound), true, true, algnum.Num{}, lit, z.CNull)
	}
	return mgr.Mk(true, true, algnum.Num{}, false, false, num(bound), lit, z.CNull)
}

func lit(i int) z.Lit { return z.Dimacs2Lit(i) }

func TestUnionDisjoint(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(1))
	b := mk(mgr, false, 4, false, 5, lit(2))
	u := mgr.Union(a, b)
	if IsFull(u) {
		t.Fatalf("S1: expected not full")
	}
	if NumIntervals(u) != 2 {
		t.Fatalf("S1: want 2 intervals, got %d", NumIntervals(u))
	}
}

func TestUnionOverlapSameJustification(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 3, lit(1))
	b := mk(mgr, false, 2, false, 4, lit(1))
	u := mgr.Union(a, b)
	if NumIntervals(u) != 1 {
		t.Fatalf("S2: want compression to 1 interval, got %d", NumIntervals(u))
	}
	iv := At(u, 0)
	if !mgr.AM.Eq(iv.Lower.Val, num(1)) || !mgr.AM.Eq(iv.Upper.Val, num(4)) {
		t.Fatalf("S2: want [1,4], got %s", iv.String(mgr.AM))
	}
}

func TestUnionOverlapDifferentJustifications(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 3, lit(1))
	b := mk(mgr, false, 2, false, 4, lit(2))
	u := mgr.Union(a, b)
	if NumIntervals(u) != 2 {
		t.Fatalf("S3: want 2 intervals, got %d", NumIntervals(u))
	}
	first, second := At(u, 0), At(u, 1)
	if first.Upper.Open || !mgr.AM.Eq(first.Upper.Val, num(3)) {
		t.Fatalf("S3: first upper should stay closed at 3, got %s", first.String(mgr.AM))
	}
	if !second.Lower.Open || !mgr.AM.Eq(second.Lower.Val, num(3)) {
		t.Fatalf("S3: second lower should become open at 3, got %s", second.String(mgr.AM))
	}
	if first.Justification != lit(1) || second.Justification != lit(2) {
		t.Fatalf("S3: justifications not preserved")
	}
}

func TestUnionFullViaCoveringRays(t *testing.T) {
	mgr := newTestManager()
	a := mgr.Mk(true, true, algnum.Num{}, true, false, num(0), lit(1), z.CNull)
	b := mgr.Mk(false, false, num(0), true, true, algnum.Num{}, lit(2), z.CNull)
	u := mgr.Union(a, b)
	if !IsFull(u) {
		t.Fatalf("S4: expected full")
	}
	if NumIntervals(u) != 2 {
		t.Fatalf("S4: want no fusion across distinct justifications, got %d intervals", NumIntervals(u))
	}
}

func TestUnionWithEmptyIsIdentity(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(1))
	u := mgr.Union(a, nil)
	if !mgr.SetEq(u, a) {
		t.Fatalf("invariant 7: union(s, empty) != s")
	}
}

func TestUnionWithFullIsFull(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(1))
	full := mgr.Mk(true, true, algnum.Num{}, true, true, algnum.Num{}, lit(2), z.CNull)
	u := mgr.Union(a, full)
	if !IsFull(u) {
		t.Fatalf("invariant 8: union(s, full) not full")
	}
}

func TestUnionCommutesUpToSetEq(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 3, lit(1))
	b := mk(mgr, false, 2, false, 4, lit(2))
	u1 := mgr.Union(a, b)
	u2 := mgr.Union(b, a)
	if !mgr.SetEq(u1, u2) {
		t.Fatalf("invariant 5: union not commutative up to set_eq")
	}
}

func TestUnionContainsBothOperands(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 3, lit(1))
	b := mk(mgr, false, 6, false, 8, lit(2))
	u := mgr.Union(a, b)
	if !mgr.Subset(a, u) || !mgr.Subset(b, u) {
		t.Fatalf("invariant 6: operand not a subset of the union")
	}
}

func TestSubsetScenario(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(1))
	b := mk(mgr, false, 0, false, 3, lit(2))
	if !mgr.Subset(a, b) {
		t.Fatalf("S7: subset(A,B) should be true")
	}
	if mgr.Subset(b, a) {
		t.Fatalf("S7: subset(B,A) should be false")
	}
}

func TestJustificationsScenario(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(1))
	b := mk(mgr, false, 3, false, 4, lit(1))
	c := mk(mgr, false, 5, false, 6, lit(2))
	ab := mgr.Union(a, b)
	s := mgr.Union(ab, c)
	lits, _ := mgr.Justifications(s)
	if len(lits) != 2 || lits[0] != lit(1) || lits[1] != lit(2) {
		t.Fatalf("S8: want [L1, L2], got %v", lits)
	}
}

func TestJustificationsDedupeIsReentrant(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(3))
	lits1, _ := mgr.Justifications(a)
	lits2, _ := mgr.Justifications(a)
	if len(lits1) != 1 || len(lits2) != 1 {
		t.Fatalf("invariant 11: get_justifications must be re-entrant across calls")
	}
}

func TestRefCountRoundTrip(t *testing.T) {
	mgr := newTestManager()
	a := mk(mgr, false, 1, false, 2, lit(1))
	mgr.IncRef(a) // count 1
	mgr.IncRef(a) // count 2, simulating a second owner
	mgr.DecRef(a) // back to count 1: still reachable
	if NumIntervals(a) != 1 {
		t.Fatalf("invariant 12: node freed while still referenced")
	}
	mgr.DecRef(a) // count 0: freed
}

func TestWitnessDeterministic(t *testing.T) {
	mgr := newTestManager()
	s := mk(mgr, false, -5, false, 5, lit(1))
	w := mgr.PeekInComplement(s, true, ModeDefault, nil)
	if !mgr.AM.Lt(w, num(-5)) {
		t.Fatalf("S5: want an integer < -5, got %s", w)
	}
}

func TestWitnessRandomizedGap(t *testing.T) {
	mgr := newTestManager()
	left := mkRay(mgr, false, 0, lit(1))
	right := mkRay(mgr, true, 2, lit(2))
	s := mgr.Union(left, right)
	for seed := int64(0); seed < 20; seed++ {
		mgr.SetSeed(seed)
		w := mgr.PeekInComplement(s, false, ModeRandom, nil)
		if !mgr.AM.Lt(num(0), w) || !mgr.AM.Lt(w, num(2)) {
			t.Fatalf("S6: seed %d produced %s, want strictly between 0 and 2", seed, w)
		}
	}
}

func TestWitnessNeverInsideSet(t *testing.T) {
	mgr := newTestManager()
	s := mk(mgr, false, 1, false, 2, lit(1))
	for seed := int64(0); seed < 10; seed++ {
		mgr.SetSeed(seed)
		w := mgr.PeekInComplement(s, false, ModeRandom, nil)
		if mgr.AM.Compare(w, num(1)) >= 0 && mgr.AM.Compare(w, num(2)) <= 0 {
			t.Fatalf("invariant 10: witness %s lies inside s", w)
		}
	}
}

func TestWitnessDistributionSingleRay(t *testing.T) {
	mgr := newTestManager()
	s := mkRay(mgr, false, 0, lit(1)) // forbids (-oo, 0]
	d := dist.NewGaussian(0, 1, 9)
	for seed := int64(0); seed < 30; seed++ {
		d.SetSeed(seed)
		w := mgr.PeekInComplement(s, false, ModeDistribution, d)
		if mgr.AM.Compare(w, num(0)) <= 0 {
			t.Fatalf("seed %d: witness %s lies in the forbidden ray (-oo,0]", seed, w)
		}
	}
}

func TestWitnessDistributionNeverInsideSet(t *testing.T) {
	mgr := newTestManager()
	s := mk(mgr, false, 1, false, 2, lit(1))
	d := dist.NewGaussian(1.5, 1, 5)
	for seed := int64(0); seed < 30; seed++ {
		d.SetSeed(seed)
		w := mgr.PeekInComplement(s, false, ModeDistribution, d)
		if mgr.AM.Compare(w, num(1)) >= 0 && mgr.AM.Compare(w, num(2)) <= 0 {
			t.Fatalf("invariant 10: distribution witness %s lies inside s", w)
		}
	}
}

func TestWitnessDistributionGapBetweenRegions(t *testing.T) {
	mgr := newTestManager()
	left := mkRay(mgr, false, 0, lit(1))
	right := mkRay(mgr, true, 2, lit(2))
	s := mgr.Union(left, right)
	d := dist.NewGaussian(1, 1, 11)
	for seed := int64(0); seed < 30; seed++ {
		d.SetSeed(seed)
		w := mgr.PeekInComplement(s, false, ModeDistribution, d)
		if mgr.AM.Compare(w, num(0)) <= 0 || mgr.AM.Compare(w, num(2)) >= 0 {
			t.Fatalf("seed %d: witness %s not strictly between 0 and 2", seed, w)
		}
	}
}
