package spline

import (
	"math"
	"sort"
)

// arcTable fills the cumulative chord lengths, arc[i] at t = i/nSub.
func (c *Curve) arcTable() []float64 {
	if c.arc != nil {
		return c.arc
	}
	arc := make([]float64, c.nSub+1)
	prev := c.PointAt(0)
	for i := 1; i <= c.nSub; i++ {
		p := c.PointAt(float64(i) / float64(c.nSub))
		arc[i] = arc[i-1] + p.Dist(prev)
		prev = p
	}
	c.arc = arc
	return arc
}

// ArcLength is the length of the curve, summed over chords.
func (c *Curve) ArcLength() float64 {
	arc := c.arcTable()
	return arc[len(arc)-1]
}

// ParameterByArcLength finds t where the length from the start is s.
// Within a chord, t is interpolated linearly. A NaN s or a curve with no
// finite length gives 0.
func (c *Curve) ParameterByArcLength(s float64) float64 {
	arc := c.arcTable()
	total := arc[len(arc)-1]
	switch {
	case math.IsNaN(s) || math.IsNaN(total) || math.IsInf(total, 0):
		return 0
	case s <= 0 || total == 0:
		return 0
	case s >= total:
		return 1
	}
	i := sort.SearchFloat64s(arc, s) // arc[i-1] < s <= arc[i]
	if i == 0 {
		return 0
	}
	i = min(i, len(arc)-1)
	lo, hi := arc[i-1], arc[i]
	frac := 0.
	if hi > lo {
		frac = (s - lo) / (hi - lo)
	}
	return (float64(i-1) + frac) / float64(c.nSub)
}

// SampleUniform returns n values of t, evenly spaced along the curve
// rather than evenly spaced in t. The first is 0 and the last 1.
func (c *Curve) SampleUniform(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}
	total := c.ArcLength()
	ret := make([]float64, n)
	for i := 1; i < n-1; i++ {
		ret[i] = c.ParameterByArcLength(total * float64(i) / float64(n-1))
	}
	ret[n-1] = 1
	return ret
}
