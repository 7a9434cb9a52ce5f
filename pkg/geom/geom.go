// Calculate some geometries, lengths and angles along an alpha carbon
// trace.

package geom

import (
	"math"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
)

const (
	mindist    = 2.6
	mindist2   = mindist * mindist
	maxdist    = 4.1 // max dist for c_alpha to c_alpha
	maxdist2   = maxdist * maxdist
	Brokendist = -99
	Rad2Deg    = 180 / math.Pi
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrTooBig   = Error("too big")
	ErrTooSmall = Error("too small")
	ErrBroken   = Error("broken angle")
	ErrColinear = Error("colinear points, no dihedral")
)

// xyzhelper makes the code below a bit more compact. Returns distance
// squared in one dimension or an error if it is bigger than our limit.
func xyzhelper(r1, r2 float64) (float64, error) {
	r := r1 - r2
	r = r * r
	if r >= maxdist2 {
		return r, ErrTooBig
	}
	return r, nil
}

// CaDist gets the distance between two alpha carbons, but if it is
// bigger than maxdist or smaller than mindist, it returns an error.
// A distance that is too big usually means a chain break.
func CaDist(x1, x2 cmmn.Xyz) (float64, error) {
	var xd, yd, zd float64
	var err error
	if xd, err = xyzhelper(x1.X, x2.X); err != nil {
		return Brokendist, err
	}
	if yd, err = xyzhelper(x1.Y, x2.Y); err != nil {
		return Brokendist, err
	}
	if zd, err = xyzhelper(x1.Z, x2.Z); err != nil {
		return Brokendist, err
	}

	r := xd + yd + zd
	if r >= maxdist2 {
		return Brokendist, ErrTooBig
	}
	if r <= mindist2 {
		return Brokendist, ErrTooSmall
	}

	return math.Sqrt(r), nil
}

// clampCos deals with numerical noise just outside [-1, 1].
func clampCos(cosalpha float64) (float64, error) {
	switch {
	case cosalpha > 1 && cosalpha < 1.01:
		return 1, nil
	case cosalpha < -1 && cosalpha > -1.01:
		return -1, nil
	case cosalpha < -1 || cosalpha > 1 || math.IsNaN(cosalpha):
		return math.NaN(), ErrBroken
	}
	return cosalpha, nil
}

// XyzAngle takes three points and returns the angle between them,
// measured at b.
func XyzAngle(a, b, c cmmn.Xyz) (float64, error) {
	return VecAngle(a.Sub(b), c.Sub(b))
}

// VecAngle is the angle between two vectors, in radians.
func VecAngle(x1, x2 cmmn.Xyz) (float64, error) {
	cosalpha := x1.Dot(x2) / (x1.Len() * x2.Len())
	c, err := clampCos(cosalpha)
	if err != nil {
		return c, err
	}
	return math.Acos(c), nil
}

// TurnAngle is the angle between the bond vectors a->b and b->c. It is
// zero for a straight line and pi minus the bond angle at b otherwise.
func TurnAngle(a, b, c cmmn.Xyz) (float64, error) {
	return VecAngle(b.Sub(a), c.Sub(b))
}

// XyzDhdrl takes four points and returns the dihedral angle in radians.
// If three of the points are in a line, the angle is not defined and
// we return an error.
func XyzDhdrl(ii, jj, kk, ll cmmn.Xyz) (float64, error) {
	r_ij := jj.Sub(ii)
	r_kj := jj.Sub(kk)
	r_kl := ll.Sub(kk)
	const tiny = 1e-10
	kj2 := r_kj.Len2()
	if kj2 < tiny {
		return math.NaN(), ErrColinear
	}
	r_im := r_ij.Sub(r_kj.Scale(r_ij.Dot(r_kj) / kj2))
	r_ln := r_kj.Scale(r_kl.Dot(r_kj) / kj2).Sub(r_kl)
	lim, lln := r_im.Len(), r_ln.Len()
	if lim < tiny || lln < tiny {
		return math.NaN(), ErrColinear
	}
	t_cos := r_im.Dot(r_ln) / (lim * lln)
	var tau float64
	switch {
	case t_cos > 1: // Numerical errors can catch us. If so, no need
		tau = 0 //     to call acos()
	case t_cos < -1:
		tau = math.Pi
	default:
		tau = math.Acos(t_cos)
	}

	if r_ij.Dot(r_kj.Cross(r_kl)) >= 0 {
		return tau, nil
	}
	return -tau, nil
}
