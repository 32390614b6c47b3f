package iset

import (
	"math/big"

	"github.com/irifrance/nia/algnum"
	"github.com/irifrance/nia/dist"
)

// Mode selects the witness-selection policy consulted by
// PeekInComplement (spec §4.5).
type Mode int

const (
	// ModeDefault deterministically picks the nearest integer outside
	// the outer rays (spec §4.5.1).
	ModeDefault Mode = iota
	// ModeRandom reservoir-samples uniformly among every viable
	// candidate region (spec §4.5.2).
	ModeRandom
	// ModeDistribution weights candidate regions by probability mass
	// under a bound Distribution (spec §4.5.3).
	ModeDistribution
)

// PeekInComplement produces a value w not forbidden by s (spec §4.5).
// Precondition: s is not full. d is only consulted in ModeDistribution
// and may be nil otherwise.
func (mgr *Manager) PeekInComplement(s *Node, isInteger bool, mode Mode, d *dist.Distribution) algnum.Num {
	if IsFull(s) {
		violate("peek_in_complement called on a full set")
	}
	switch mode {
	case ModeRandom:
		return mgr.peekRandom(s, isInteger)
	case ModeDistribution:
		return mgr.peekDistribution(s, d)
	default:
		return mgr.peekDefault(s)
	}
}

// peekDefault is spec §4.5.1.
func (mgr *Manager) peekDefault(s *Node) algnum.Num {
	if s == nil {
		return algnum.FromInt(0)
	}
	am := mgr.AM
	first := s.intervals[0]
	if !first.Lower.Inf {
		return am.IntLt(first.Lower.Val)
	}
	last := s.intervals[len(s.intervals)-1]
	if !last.Upper.Inf {
		return am.IntGt(last.Upper.Val)
	}
	violate("peek_in_complement: no finite outer ray on a non-full set")
	panic("unreachable")
}

// peekRandom is spec §4.5.2: reservoir-select uniformly among the outer
// rays and every strictly-positive-width interior gap; fall back to a
// touching seam when no such region exists.
func (mgr *Manager) peekRandom(s *Node, isInteger bool) algnum.Num {
	if s == nil {
		return mgr.randomSmallRational(isInteger)
	}
	am := mgr.AM
	n := 0
	var chosen func() algnum.Num
	consider := func(f func() algnum.Num) {
		n++
		if mgr.rnd.Intn(n) == 0 {
			chosen = f
		}
	}

	first := s.intervals[0]
	if !first.Lower.Inf {
		lower := first.Lower.Val
		consider(func() algnum.Num { return am.IntLt(lower) })
	}
	last := s.intervals[len(s.intervals)-1]
	if !last.Upper.Inf {
		upper := last.Upper.Val
		consider(func() algnum.Num { return am.IntGt(upper) })
	}
	for i := 1; i < len(s.intervals); i++ {
		lo, hi := s.intervals[i-1].Upper, s.intervals[i].Lower
		if touches(am, lo, hi) {
			continue
		}
		a, b := lo.Val, hi.Val
		consider(func() algnum.Num { return am.Select(a, b) })
	}
	if n > 0 {
		return chosen()
	}

	if mgr.Log != nil {
		mgr.Log.Printf("iset: no positive-width region, falling back to seam search")
	}
	var rational, irrational []algnum.Num
	for i := 1; i < len(s.intervals); i++ {
		lo, hi := s.intervals[i-1].Upper, s.intervals[i].Lower
		if !touches(am, lo, hi) || adjacent(am, lo, hi) {
			continue
		}
		if am.IsRational(lo.Val) {
			rational = append(rational, lo.Val)
		} else {
			irrational = append(irrational, lo.Val)
		}
	}
	if len(rational) > 0 {
		return rational[mgr.rnd.Intn(len(rational))]
	}
	if len(irrational) > 0 {
		return irrational[mgr.rnd.Intn(len(irrational))]
	}
	violate("peek_in_complement: no candidate region on a non-full set")
	panic("unreachable")
}

// randomSmallRational is the null-set case of spec §4.5.2: a small
// random rational without consulting AM.select. Integer-typed variables
// use denominator 1; real-typed variables choose a denominator
// uniformly from {1,2,4,8,16} with numerator ±1.
func (mgr *Manager) randomSmallRational(isInteger bool) algnum.Num {
	sign := int64(1)
	if mgr.rnd.Intn(2) == 0 {
		sign = -1
	}
	if isInteger {
		return algnum.FromInt(sign * int64(mgr.rnd.Intn(16)+1))
	}
	denoms := [5]int64{1, 2, 4, 8, 16}
	den := denoms[mgr.rnd.Intn(len(denoms))]
	return algnum.FromRat(big.NewRat(sign, den))
}

// peekDistribution is spec §4.5.3.
func (mgr *Manager) peekDistribution(s *Node, d *dist.Distribution) algnum.Num {
	if s == nil {
		return d.Sample()
	}
	am := mgr.AM
	if len(s.intervals) == 1 {
		iv := s.intervals[0]
		if iv.Lower.Inf && !iv.Upper.Inf {
			// s forbids (-inf, upper]; the witness must come from the
			// open ray above it.
			return d.SampleRay(true, iv.Upper.Val.Float64())
		}
		if iv.Upper.Inf && !iv.Lower.Inf {
			// s forbids [lower, +inf); the witness must come from the
			// open ray below it.
			return d.SampleRay(false, iv.Lower.Val.Float64())
		}
	}

	// sample is deferred per region so selection and drawing stay
	// separate: only the chosen region's sample is ever drawn.
	type region struct {
		weight float64
		sample func() algnum.Num
	}
	var regions []region

	first := s.intervals[0]
	if !first.Lower.Inf {
		b := first.Lower.Val.Float64()
		regions = append(regions, region{
			weight: d.GetProbRay(false, b),
			sample: func() algnum.Num { return d.SampleRay(false, b) },
		})
	}
	last := s.intervals[len(s.intervals)-1]
	if !last.Upper.Inf {
		b := last.Upper.Val.Float64()
		regions = append(regions, region{
			weight: d.GetProbRay(true, b),
			sample: func() algnum.Num { return d.SampleRay(true, b) },
		})
	}
	for i := 1; i < len(s.intervals); i++ {
		lo, hi := s.intervals[i-1].Upper, s.intervals[i].Lower
		if touches(am, lo, hi) {
			continue
		}
		a, b := lo.Val.Float64(), hi.Val.Float64()
		regions = append(regions, region{
			weight: d.GetProbBand(a, b),
			sample: func() algnum.Num { return d.SampleBetween(a, b) },
		})
	}

	total := 0.0
	for _, r := range regions {
		total += r.weight
	}
	if total > 0 {
		u := mgr.rnd.Float64() * total
		for _, r := range regions {
			if u < r.weight {
				return r.sample()
			}
			u -= r.weight
		}
		return regions[len(regions)-1].sample()
	}

	return mgr.peekDistributionSeam(s, d)
}

// peekDistributionSeam falls back to the touching-seam search of
// §4.5.2, picking the seam with the highest point density under d.
func (mgr *Manager) peekDistributionSeam(s *Node, d *dist.Distribution) algnum.Num {
	am := mgr.AM
	var best algnum.Num
	bestWeight := -1.0
	found := false
	for i := 1; i < len(s.intervals); i++ {
		lo, hi := s.intervals[i-1].Upper, s.intervals[i].Lower
		if !touches(am, lo, hi) || adjacent(am, lo, hi) {
			continue
		}
		w := d.GetProbPoint(lo.Val.Float64())
		if !found || w > bestWeight {
			best, bestWeight, found = lo.Val, w, true
		}
	}
	if !found {
		violate("peek_in_complement: no candidate region on a non-full set")
	}
	return best
}
