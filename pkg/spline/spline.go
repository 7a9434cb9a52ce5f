// 14 Oct 2026

// Package spline fits a cubic curve through a backbone trace and gives
// points, tangents and Frenet frames along it.
// A Curve keeps a small cache of tangents, so it belongs to one
// goroutine at a time. Separate Curves share nothing.
package spline

import (
	"fmt"
	"math"
	"strings"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
)

// Basis selects how the four control points around a span are mixed.
type Basis uint8

const (
	BSpline    Basis = iota // uniform cubic B-spline, smooth but does not pass through the points
	CatmullRom              // passes through the control points
)

func (b Basis) String() string {
	switch b {
	case BSpline:
		return "bspline"
	case CatmullRom:
		return "catmullrom"
	}
	return fmt.Sprintf("Basis(%d)", uint8(b))
}

// ParseBasis reads a basis name.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(s) {
	case "bspline", "b-spline", "b":
		return BSpline, nil
	case "catmullrom", "catmull-rom", "cr":
		return CatmullRom, nil
	}
	return BSpline, fmt.Errorf("unknown spline basis %q", s)
}

// DefaultTension is how far the phantom end points stick out.
const DefaultTension = 0.3

const (
	degree       = 3
	minControl   = degree + 1
	delta        = 0.001 // step for finite differences in t
	defaultNSub  = 100
	maxCacheSize = 4096
	cacheQuant   = 1e6 // cache key is t times this, rounded
)

// Curve is a cubic spline through the control points. t runs from 0 to
// 1 over the whole curve.
type Curve struct {
	ctrl     []cmmn.Xyz
	basis    Basis
	nSub     int
	arc      []float64 // cumulative chord length, nil until needed
	tangents map[int64]cmmn.Xyz
	nDegen   int // frames which needed the fallback normal
}

// New makes a curve through points. Two phantom control points are
// added by extending the first and last segments by tension times
// their length, so the curve reaches out to the end residues.
func New(points []cmmn.Xyz, tension float64) (*Curve, error) {
	n := len(points)
	if n+2 < minControl {
		return nil, &InsufficientBackboneError{N: n, Min: minControl - 2}
	}
	for i, p := range points {
		if !p.Ok() {
			return nil, fmt.Errorf("%w: point %d is %v", ErrBadPoint, i, p)
		}
	}
	ctrl := make([]cmmn.Xyz, 0, n+2)
	ctrl = append(ctrl, points[0].Add(points[0].Sub(points[1]).Scale(tension)))
	ctrl = append(ctrl, points...)
	ctrl = append(ctrl, points[n-1].Add(points[n-1].Sub(points[n-2]).Scale(tension)))
	return &Curve{
		ctrl:     ctrl,
		nSub:     defaultNSub,
		tangents: make(map[int64]cmmn.Xyz),
	}, nil
}

// SetBasis changes the blending functions. Cached values are dropped.
func (c *Curve) SetBasis(b Basis) {
	c.basis = b
	c.reset()
}

// SetSubdivisions sets the number of chords for arc length.
func (c *Curve) SetSubdivisions(n int) {
	if n < 1 {
		n = 1
	}
	c.nSub = n
	c.arc = nil
}

func (c *Curve) reset() {
	c.arc = nil
	clear(c.tangents)
}

// NControl is the number of control points, including the two phantoms.
func (c *Curve) NControl() int { return len(c.ctrl) }

// NDegenerate says how many frames had to use a fallback normal.
func (c *Curve) NDegenerate() int { return c.nDegen }

// clampT keeps t in [0, 1]. NaN goes to 0.
func clampT(t float64) float64 {
	switch {
	case t > 1:
		return 1
	case t >= 0:
		return t
	}
	return 0
}

// span finds the first of the four control points for t and the local
// parameter in that span.
func (c *Curve) span(t float64) (int, float64) {
	nSpan := len(c.ctrl) - degree
	x := clampT(t) * float64(nSpan)
	i := int(math.Floor(x))
	if i > nSpan-1 {
		i = nSpan - 1
	}
	return i, x - float64(i)
}

// weights are the basis functions at local parameter u.
func (c *Curve) weights(u float64) [4]float64 {
	u2 := u * u
	u3 := u2 * u
	switch c.basis {
	case BSpline:
		return [4]float64{
			(1 - u) * (1 - u) * (1 - u) / 6,
			(3*u3 - 6*u2 + 4) / 6,
			(-3*u3 + 3*u2 + 3*u + 1) / 6,
			u3 / 6,
		}
	case CatmullRom:
		return [4]float64{
			0.5 * (-u3 + 2*u2 - u),
			0.5 * (3*u3 - 5*u2 + 2),
			0.5 * (-3*u3 + 4*u2 + u),
			0.5 * (u3 - u2),
		}
	}
	panic("impossible spline basis")
}

// PointAt is the position on the curve at t.
func (c *Curve) PointAt(t float64) cmmn.Xyz {
	i, u := c.span(t)
	w := c.weights(u)
	var p cmmn.Xyz
	for j := 0; j < 4; j++ {
		p = p.Add(c.ctrl[i+j].Scale(w[j]))
	}
	return p
}
