// Package dist implements the per-variable sampling distribution
// consulted by the engine's distribution-weighted witness selection
// (spec §4.5.3, §4.6, component C7): a value-typed Gaussian or Uniform
// record with a seeded PRNG, CDF/PPF, and truncated sampling between
// bounds. It is a collaborator, not owned by the engine — callers
// attach one per solver variable and control its lifetime and seeding
// (spec §9 "Distribution object coupling").
package dist

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strconv"

	"github.com/irifrance/nia/algnum"
)

// Kind distinguishes the two supported distribution shapes.
type Kind int

const (
	// Gaussian is a normal distribution with mean Exp and standard
	// deviation Var.
	Gaussian Kind = iota + 1
	// Uniform is a symmetric uniform distribution of spread Var
	// around mean Exp.
	Uniform
)

func (k Kind) String() string {
	switch k {
	case Gaussian:
		return "GD"
	case Uniform:
		return "UD"
	default:
		return "?"
	}
}

// Distribution is the sampling source bound to one solver variable. It
// is not safe for concurrent use, matching the engine's single-threaded
// model (spec §5).
//
// Distribution holds its own *rand.Rand rather than using the package
// global, the same injectable-PRNG idiom gini/gen's RandS/RandSr use
// for seedable, testable randomness.
type Distribution struct {
	Kind Kind
	Exp  float64 // mean
	Var  float64 // spread (standard deviation for Gaussian, half-width for Uniform)

	rnd *rand.Rand

	// Err is set by PPF when called at p<=0 or p>=1 (spec §7
	// "Numeric overflow in heuristic sampling"); the caller reads and
	// clears it, it is not returned from every call.
	Err error
}

// NewGaussian returns a Gaussian distribution with the given mean and
// standard deviation, seeded deterministically.
func NewGaussian(mean, stddev float64, seed int64) *Distribution {
	return &Distribution{Kind: Gaussian, Exp: mean, Var: stddev, rnd: rand.New(rand.NewSource(seed))}
}

// NewUniform returns a Uniform distribution with the given mean and
// spread, seeded deterministically.
func NewUniform(mean, spread float64, seed int64) *Distribution {
	return &Distribution{Kind: Uniform, Exp: mean, Var: spread, rnd: rand.New(rand.NewSource(seed))}
}

// SetSeed reseeds d's PRNG (spec §5 "Determinism").
func (d *Distribution) SetSeed(seed int64) {
	d.rnd = rand.New(rand.NewSource(seed))
}

// draw returns a raw uniform integer in [0, RandomPrecision), the
// granularity every derived sample is built from (spec §3
// "Distribution object").
func (d *Distribution) draw() int {
	return d.rnd.Intn(RandomPrecision)
}

// uniform01 returns a uniform float64 in [0, 1).
func (d *Distribution) uniform01() float64 {
	return float64(d.draw()) / float64(RandomPrecision)
}

// coinFlip returns true or false with equal probability.
func (d *Distribution) coinFlip() bool {
	return d.draw()%2 == 0
}

// CDF is the standard normal CDF of (z-mean)/spread, via the
// Abramowitz-Stegun five-term rational approximation (spec §6).
func (d *Distribution) CDF(z float64) float64 {
	return stdCDF((z - d.Exp) / d.Var)
}

// PPF is the inverse standard normal, rescaled by spread and shifted
// by mean, via the Peter Acklam three-region rational approximation
// (spec §6). At p<=0 or p>=1 it sets d.Err and returns ±math.Inf,
// standing in for the original's ±HUGE_VAL sentinel (spec §7).
func (d *Distribution) PPF(p float64) float64 {
	d.Err = nil
	q := stdPPF(p)
	if math.IsInf(q, 0) {
		d.Err = errOutOfRange
	}
	return d.Exp + d.Var*q
}

func stdCDF(z float64) float64 {
	if z > 1e9 {
		return 1
	}
	if z < -1e9 {
		return 0
	}
	neg := z < 0
	if neg {
		z = -z
	}
	t := 1 / (1 + asGamma*z)
	poly := asA1*t + asA2*t*t + asA3*t*t*t + asA4*t*t*t*t + asA5*t*t*t*t*t
	pdf := math.Exp(-z*z/2) / math.Sqrt(2*math.Pi)
	cdf := 1 - pdf*poly
	if neg {
		return 1 - cdf
	}
	return cdf
}

func stdPPF(p float64) float64 {
	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	case p < acklamLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
			((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1)
	case p <= acklamHigh:
		q := p - 0.5
		r := q * q
		return (((((acklamA[0]*r+acklamA[1])*r+acklamA[2])*r+acklamA[3])*r+acklamA[4])*r + acklamA[5]) * q /
			(((((acklamB[0]*r+acklamB[1])*r+acklamB[2])*r+acklamB[3])*r+acklamB[4])*r + 1)
	default:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
			((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1)
	}
}

var errOutOfRange = errors.New("dist: PPF argument out of (0,1)")

// randGD draws one Gaussian(mean, stddev) sample by Box-Muller (spec
// §4.6 rand_GD): two independent uniforms, shaped by cos/sqrt(-2 ln).
func (d *Distribution) randGD() float64 {
	u1 := (float64(d.draw()) + 1) / (RandomPrecision + 1) // avoid log(0)
	u2 := d.uniform01()
	return d.Exp + d.Var*math.Sqrt(-2*math.Log(u1))*math.Cos(2*piConst*u2)
}

// randUD draws one Uniform(mean, spread) sample (spec §4.6 rand_UD):
// mean plus or minus a uniform fraction of spread, sign by coin flip.
func (d *Distribution) randUD() float64 {
	u := d.uniform01()
	if d.coinFlip() {
		return d.Exp + u*d.Var
	}
	return d.Exp - u*d.Var
}

// Sample draws one unconstrained value from d and returns it as an
// algnum.Num, formatted through a decimal string and reparsed as a
// rational — the loss of precision is deliberate (spec §4.6): the
// caller is a heuristic, not a proof obligation.
func (d *Distribution) Sample() algnum.Num {
	var f float64
	switch d.Kind {
	case Gaussian:
		f = d.randGD()
	default:
		f = d.randUD()
	}
	return formatDecimal(f)
}

// formatDecimal renders f as a fixed-precision decimal string and
// reparses it into a rational algnum.Num — the "format as decimal,
// reparse" bridge between float64 sampling and the exact-rational AN
// domain that spec §4.6 and original_source's `to_char` helper both
// describe.
func formatDecimal(f float64) algnum.Num {
	s := strconv.FormatFloat(f, 'f', 9, 64)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		// Never reached for finite f: FormatFloat always yields a
		// string big.Rat can parse.
		return algnum.FromInt(0)
	}
	return algnum.FromRat(r)
}

// SampleBetween draws a truncated sample strictly between lo and hi
// (spec §4.5.3 "draw a truncated sample from D restricted to that
// region"). Precondition: lo < hi. u is drawn from the open interval
// (0, 1), so neither bound itself is selected.
func (d *Distribution) SampleBetween(lo, hi float64) algnum.Num {
	u := (float64(d.draw()) + 1) / (RandomPrecision + 1)
	if d.Kind == Uniform {
		return formatDecimal(lo + u*(hi-lo))
	}
	cLo, cHi := d.CDF(lo), d.CDF(hi)
	// Open Question 2: normalize u against the region's own
	// probability mass before inverting, rather than adding it
	// unnormalized (spec §9).
	p := cLo + u*(cHi-cLo)
	return formatDecimal(d.PPF(p))
}

// SampleRay draws a truncated sample from the open semi-infinite ray
// either (-inf, bound) (hasLow == false) or (bound, +inf) (hasLow ==
// true). u is drawn from the open interval (0, 1), so bound itself is
// not selected.
func (d *Distribution) SampleRay(hasLow bool, bound float64) algnum.Num {
	u := (float64(d.draw()) + 1) / (RandomPrecision + 1)
	if d.Kind == Uniform {
		if hasLow {
			return formatDecimal(bound + u*d.Var)
		}
		return formatDecimal(bound - u*d.Var)
	}
	cBound := d.CDF(bound)
	var p float64
	if hasLow {
		p = cBound + u*(1-cBound)
	} else {
		p = u * cBound
	}
	return formatDecimal(d.PPF(p))
}

// GetProbPoint returns the probability density (Gaussian) or the
// constant 1/RandomPrecision (Uniform, spec §9 Open Question 3 —
// preserved verbatim for parity even though it ignores spread).
func (d *Distribution) GetProbPoint(point float64) float64 {
	if d.Kind == Uniform {
		return 1.0 / RandomPrecision
	}
	z := (point - d.Exp) / d.Var
	return math.Exp(-z*z/2) / (d.Var * math.Sqrt(2*math.Pi))
}

// GetProbBand returns the probability mass of [lo, hi]. For Uniform
// this is simply the band's width hi - lo (spec §4.6).
func (d *Distribution) GetProbBand(lo, hi float64) float64 {
	if d.Kind == Uniform {
		return hi - lo
	}
	return d.CDF(hi) - d.CDF(lo)
}

// GetProbRay returns the probability mass of the semi-infinite ray
// either (-inf, bound] (hasLow == false) or [bound, +inf) (hasLow ==
// true). For Uniform this is simply the spread (spec §4.6).
func (d *Distribution) GetProbRay(hasLow bool, bound float64) float64 {
	if d.Kind == Uniform {
		return d.Var
	}
	if hasLow {
		return 1 - d.CDF(bound)
	}
	return d.CDF(bound)
}
