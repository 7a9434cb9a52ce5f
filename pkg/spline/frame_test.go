package spline_test

import (
	"math"
	"testing"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb/pdbtest"
	. "github.com/andrew-torda/cartoon/pkg/spline"
)

const (
	unitTol  = 1e-5
	orthoTol = 1e-3
)

func checkFrames(t *testing.T, name string, frames []Frame) {
	t.Helper()
	for i, f := range frames {
		for _, v := range []cmmn.Xyz{f.T, f.N, f.B} {
			if math.Abs(v.Len()-1) > unitTol {
				t.Fatalf("%s frame %d has length %g", name, i, v.Len())
			}
		}
		for _, d := range []float64{f.T.Dot(f.N), f.T.Dot(f.B), f.N.Dot(f.B)} {
			if math.Abs(d) > orthoTol {
				t.Fatalf("%s frame %d dot product %g", name, i, d)
			}
		}
	}
}

var frameTests = []struct {
	name string
	pts  []cmmn.Xyz
}{
	{"helix", pdbtest.IdealHelix(20)},
	{"line", pdbtest.Line(6, 3.8, cmmn.Xyz{X: 1, Y: 2, Z: 3})},
	{"arc", pdbtest.Arc(10, 8, 0.45)},
	{"wiggle", wiggle(40, 7)},
	{"two", pdbtest.Line(2, 3.8, cmmn.Xyz{})},
}

func TestFrames(t *testing.T) {
	for _, x := range frameTests {
		c := mustCurve(t, x.pts)
		frames := c.Frames(c.SampleUniform(20 * len(x.pts)))
		checkFrames(t, x.name, frames)
		checkFrames(t, x.name+" twisted", MinimizeTwist(frames))
	}
}

// TestStraight has no curvature, so the normal comes from a fallback.
func TestStraight(t *testing.T) {
	c := mustCurve(t, pdbtest.Line(6, 3.8, cmmn.Xyz{}))
	f := c.FrameAt(0.5)
	if math.Abs(f.T.X-1) > 1e-9 {
		t.Errorf("tangent %v", f.T)
	}
	if c.NDegenerate() == 0 {
		t.Error("fallback normal was not counted")
	}
	if math.Abs(f.N.X) > 1e-9 {
		t.Errorf("normal %v should be off the x axis", f.N)
	}
}

// TestTwist checks neighbouring normals after twist minimisation.
func TestTwist(t *testing.T) {
	for _, x := range frameTests {
		c := mustCurve(t, x.pts)
		frames := MinimizeTwist(c.Frames(c.SampleUniform(8 * len(x.pts))))
		for i := 1; i < len(frames); i++ {
			if d := frames[i].N.Dot(frames[i-1].N); d < 0 {
				t.Errorf("%s frames %d, %d normals dot %g", x.name, i-1, i, d)
			}
		}
	}
}

// TestTwistFlips builds frames that flip every step and makes sure
// the input is not touched.
func TestTwistFlips(t *testing.T) {
	x, y, z := cmmn.Xyz{X: 1}, cmmn.Xyz{Y: 1}, cmmn.Xyz{Z: 1}
	in := []Frame{{T: x, N: y, B: z}, {T: x, N: y.Neg(), B: z.Neg()}, {T: x, N: y, B: z.Neg()}}
	out := MinimizeTwist(in)
	if in[1].N != y.Neg() {
		t.Error("input changed")
	}
	for i, f := range out {
		if f.N != y || f.B != z {
			t.Errorf("frame %d N %v B %v", i, f.N, f.B)
		}
	}
	if MinimizeTwist(nil) != nil {
		t.Error("nil in, nil out")
	}
}

func TestTangentCache(t *testing.T) {
	c := mustCurve(t, pdbtest.IdealHelix(10))
	a := c.TangentAt(0.3)
	if b := c.TangentAt(0.3 + 1e-8); a != b {
		t.Error("nearby t should hit the cache")
	}
	for i := 0; i < 2*MaxCacheSize; i++ {
		c.TangentAt(float64(i) / (2 * MaxCacheSize))
	}
	if n := c.CacheLen(); n > MaxCacheSize || n == 0 {
		t.Errorf("cache has %d entries", n)
	}
	c.SetBasis(CatmullRom)
	if c.CacheLen() != 0 {
		t.Error("changing basis should drop the cache")
	}
}
