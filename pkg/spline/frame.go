package spline

import (
	"math"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
)

// Frame is a point on the curve and its Frenet frame. T, N and B are
// unit vectors and at right angles to each other.
type Frame struct {
	Pos     cmmn.Xyz
	T, N, B cmmn.Xyz
}

const minNormal = 0.001 // shorter derivative of T means a straight bit

// diff is a finite difference of f around t. It is central where
// possible, one sided at the ends.
func diff(f func(float64) cmmn.Xyz, t float64) cmmn.Xyz {
	lo, hi := t-delta, t+delta
	if lo < 0 {
		lo = t
	}
	if hi > 1 {
		hi = t
	}
	return f(hi).Sub(f(lo))
}

// TangentAt is the unit tangent at t. Values are cached, keyed on t
// rounded to 1e-6. The cache is emptied when it gets big.
func (c *Curve) TangentAt(t float64) cmmn.Xyz {
	t = clampT(t)
	key := int64(math.Round(t * cacheQuant))
	if v, ok := c.tangents[key]; ok {
		return v
	}
	v := diff(c.PointAt, t).Norm()
	if len(c.tangents) >= maxCacheSize {
		clear(c.tangents)
	}
	c.tangents[key] = v
	return v
}

// leastAligned returns the x, y or z axis most nearly at right angles
// to v.
func leastAligned(v cmmn.Xyz) cmmn.Xyz {
	x, y, z := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case x <= y && x <= z:
		return cmmn.Xyz{X: 1}
	case y <= z:
		return cmmn.Xyz{Y: 1}
	}
	return cmmn.Xyz{Z: 1}
}

// FrameAt gives the Frenet frame at t. Where the curve is straight, the
// normal is not defined, so we pick the world axis least aligned with
// the tangent.
func (c *Curve) FrameAt(t float64) Frame {
	t = clampT(t)
	f := Frame{Pos: c.PointAt(t), T: c.TangentAt(t)}
	if f.T.Len2() == 0 { // all control points on top of each other
		f.T = cmmn.Xyz{X: 1}
		c.nDegen++
	}
	n := diff(c.TangentAt, t)
	if n.Len() < minNormal {
		n = leastAligned(f.T)
		c.nDegen++
	}
	f.B = f.T.Cross(n).Norm()
	if f.B.Len2() == 0 { // n was parallel to T
		f.B = f.T.Cross(leastAligned(f.T)).Norm()
		c.nDegen++
	}
	f.N = f.B.Cross(f.T)
	return f
}

// Frames is FrameAt for each t.
func (c *Curve) Frames(ts []float64) []Frame {
	ret := make([]Frame, len(ts))
	for i, t := range ts {
		ret[i] = c.FrameAt(t)
	}
	return ret
}

// MinimizeTwist returns a copy of frames with the signs of normals and
// binormals made consistent. If a normal points against the previous
// one, both N and B are flipped. Then, if the binormal still points
// against the previous one, B alone is flipped.
// This only stops 180 degree flips. Frames turning by nearly 90 degrees
// from one sample to the next are not corrected.
func MinimizeTwist(frames []Frame) []Frame {
	ret := append([]Frame(nil), frames...)
	for i := 1; i < len(ret); i++ {
		prev, f := &ret[i-1], &ret[i]
		if f.N.Dot(prev.N) < 0 {
			f.N, f.B = f.N.Neg(), f.B.Neg()
		}
		if f.B.Dot(prev.B) < 0 {
			f.B = f.B.Neg()
		}
	}
	return ret
}
