package dist

import (
	"math"
	"testing"
)

func TestPPFInvertsCDF(t *testing.T) {
	d := NewGaussian(0, 1, 7)
	for _, x := range []float64{-4, -1, -0.1, 0, 0.1, 1, 4} {
		p := d.CDF(x)
		got := d.PPF(p)
		if math.Abs(got-x) > 1e-3 {
			t.Errorf("PPF(CDF(%v)) = %v, want ~%v", x, got, x)
		}
	}
}

func TestCDFClamps(t *testing.T) {
	d := NewGaussian(0, 1, 1)
	if got := d.CDF(1e10); got != 1 {
		t.Errorf("CDF(1e10) = %v, want 1", got)
	}
	if got := d.CDF(-1e10); got != 0 {
		t.Errorf("CDF(-1e10) = %v, want 0", got)
	}
}

func TestPPFBoundaryError(t *testing.T) {
	d := NewGaussian(0, 1, 1)
	d.PPF(0)
	if d.Err == nil {
		t.Errorf("expected Err set for PPF(0)")
	}
	d.PPF(0.5)
	if d.Err != nil {
		t.Errorf("expected Err cleared for PPF(0.5), got %v", d.Err)
	}
}

func TestSampleBetweenStaysInBand(t *testing.T) {
	d := NewGaussian(0, 1, 42)
	for i := 0; i < 200; i++ {
		n := d.SampleBetween(-2, 3)
		f := n.Float64()
		if f < -2 || f > 3 {
			t.Fatalf("sample %v out of [-2,3]", f)
		}
	}
}

func TestUniformGetProb(t *testing.T) {
	d := NewUniform(0, 10, 1)
	if got := d.GetProbBand(2, 5); got != 3 {
		t.Errorf("GetProbBand = %v, want 3", got)
	}
	if got := d.GetProbRay(true, 0); got != 10 {
		t.Errorf("GetProbRay = %v, want spread 10", got)
	}
	if got := d.GetProbPoint(0); got != 1.0/RandomPrecision {
		t.Errorf("GetProbPoint = %v, want 1/%d", got, RandomPrecision)
	}
}
