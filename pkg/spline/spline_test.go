package spline_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb/pdbtest"
	. "github.com/andrew-torda/cartoon/pkg/spline"
)

func mustCurve(t *testing.T, pts []cmmn.Xyz) *Curve {
	t.Helper()
	c, err := New(pts, DefaultTension)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// wiggle is a random walk with steps of about 3.8, like a badly
// behaved backbone.
func wiggle(n int, seed int64) []cmmn.Xyz {
	rnd := rand.New(rand.NewSource(seed))
	ret := make([]cmmn.Xyz, n)
	for i := 1; i < n; i++ {
		step := cmmn.Xyz{X: rnd.NormFloat64(), Y: rnd.NormFloat64(), Z: rnd.NormFloat64()}
		ret[i] = ret[i-1].Add(step.Norm().Scale(3.8))
	}
	return ret
}

func TestTooShort(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := New(pdbtest.Line(n, 3.8, cmmn.Xyz{}), DefaultTension)
		var ibe *InsufficientBackboneError
		if !errors.As(err, &ibe) || ibe.N != n {
			t.Errorf("%d points gave %v", n, err)
		}
	}
	c := mustCurve(t, pdbtest.Line(2, 3.8, cmmn.Xyz{}))
	if c.NControl() != 4 {
		t.Errorf("two points should give 4 control points, got %d", c.NControl())
	}
}

func TestBadPoint(t *testing.T) {
	for _, bad := range []cmmn.Xyz{{X: math.NaN()}, {Y: math.Inf(1)}, cmmn.BrokenXyz} {
		pts := pdbtest.Line(6, 3.8, cmmn.Xyz{})
		pts[3] = bad
		if _, err := New(pts, DefaultTension); !errors.Is(err, ErrBadPoint) {
			t.Errorf("point %v gave %v", bad, err)
		}
	}
	c := mustCurve(t, pdbtest.Line(6, 3.8, cmmn.Xyz{}))
	for _, s := range []float64{math.NaN(), math.Inf(-1), -1} {
		if got := c.ParameterByArcLength(s); got != 0 {
			t.Errorf("length %v gave t %v, want 0", s, got)
		}
	}
	if got := c.ParameterByArcLength(math.Inf(1)); got != 1 {
		t.Errorf("infinite length gave t %v, want 1", got)
	}
}

// TestContinuity steps a tiny bit in t, including across the joins
// between spans.
func TestContinuity(t *testing.T) {
	for _, basis := range []Basis{BSpline, CatmullRom} {
		c := mustCurve(t, wiggle(12, 3))
		c.SetBasis(basis)
		nSpan := c.NControl() - 3
		var ts []float64
		for i := 1; i < nSpan; i++ {
			ts = append(ts, float64(i)/float64(nSpan))
		}
		for i := 1; i < 200; i++ {
			ts = append(ts, float64(i)/200)
		}
		for _, tt := range ts {
			for _, eps := range []float64{1e-4, 1e-7} {
				d := c.PointAt(tt + eps).Dist(c.PointAt(tt - eps))
				if d > 1e3*eps {
					t.Errorf("basis %d jump of %g at t=%g eps %g", basis, d, tt, eps)
				}
			}
		}
	}
}

func TestParseBasis(t *testing.T) {
	for _, b := range []Basis{BSpline, CatmullRom} {
		if got, err := ParseBasis(b.String()); err != nil || got != b {
			t.Errorf("%v came back as %v %v", b, got, err)
		}
	}
	if _, err := ParseBasis("bezier"); err == nil {
		t.Error("unknown basis should fail")
	}
}

// TestEnds checks where the B-spline starts and that Catmull-Rom goes
// through the backbone points.
func TestEnds(t *testing.T) {
	pts := pdbtest.Line(5, 3.8, cmmn.Xyz{})
	c := mustCurve(t, pts)
	start := 3.8 * (1 - DefaultTension) / 6 // (c0 + 4 c1 + c2) / 6
	if p := c.PointAt(0); math.Abs(p.X-start) > 1e-9 || p.Y != 0 || p.Z != 0 {
		t.Errorf("start at %v wanted x = %g", p, start)
	}
	if p := c.PointAt(-1); p != c.PointAt(0) {
		t.Error("t < 0 should be clamped")
	}
	cr := mustCurve(t, wiggle(7, 1))
	cr.SetBasis(CatmullRom)
	pts = wiggle(7, 1)
	for i, p := range pts {
		if d := cr.PointAt(float64(i) / 6).Dist(p); d > 1e-9 {
			t.Errorf("point %d missed by %g", i, d)
		}
	}
}

func TestArcLength(t *testing.T) {
	c := mustCurve(t, pdbtest.Line(5, 3.8, cmmn.Xyz{}))
	start := 3.8 * (1 - DefaultTension) / 6
	want := 4*3.8 - 2*start
	if got := c.ArcLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("straight arc length %g wanted %g", got, want)
	}
	if c.ParameterByArcLength(-1) != 0 || c.ParameterByArcLength(want+1) != 1 {
		t.Error("arc length parameter not clamped")
	}
	for _, s := range []float64{1, 5, 7.3, 12} {
		tt := c.ParameterByArcLength(s)
		if d := c.PointAt(tt).X - c.PointAt(0).X; math.Abs(d-s) > 0.05 {
			t.Errorf("s = %g went to t = %g, distance %g", s, tt, d)
		}
	}
	c.SetSubdivisions(1000)
	if got := c.ArcLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("more subdivisions changed a straight line to %g", got)
	}
}

// TestSampleUniform checks the spacing on a curved backbone.
func TestSampleUniform(t *testing.T) {
	c := mustCurve(t, pdbtest.IdealHelix(15))
	c.SetSubdivisions(500)
	ts := c.SampleUniform(60)
	if len(ts) != 60 || ts[0] != 0 || ts[59] != 1 {
		t.Fatalf("ends wrong: %d %g %g", len(ts), ts[0], ts[len(ts)-1])
	}
	var steps []float64
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("t not increasing at %d", i)
		}
		steps = append(steps, c.PointAt(ts[i]).Dist(c.PointAt(ts[i-1])))
	}
	lo, hi := steps[0], steps[0]
	for _, s := range steps {
		lo, hi = math.Min(lo, s), math.Max(hi, s)
	}
	if (hi-lo)/hi > 0.05 {
		t.Errorf("uneven sampling, steps from %g to %g", lo, hi)
	}
	if c.SampleUniform(0) != nil || len(c.SampleUniform(1)) != 1 {
		t.Error("tiny sample counts")
	}
}
