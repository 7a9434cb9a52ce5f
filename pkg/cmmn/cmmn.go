// 12 Oct 2026

// Package cmmn has common definitions for coordinates, exit codes and a
// few helpers used all over the place, including in testing.
package cmmn

import (
	"fmt"
	"io"
	"math"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Xyz is a point or a vector. Coordinates are kept as float64 since
// frames are built from finite differences and float32 is not enough.
type Xyz struct{ X, Y, Z float64 }

// BrokenXyz marks a coordinate we could not read. It should never get
// as far as the geometry code.
var BrokenXyz = Xyz{math.MaxFloat64, 0, -math.MaxFloat64}

// Ok says whether a coordinate is usable. NaN, infinity and BrokenXyz
// are not.
func (a Xyz) Ok() bool {
	if a == BrokenXyz {
		return false
	}
	for _, v := range [3]float64{a.X, a.Y, a.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (a Xyz) Add(b Xyz) Xyz { return Xyz{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Xyz) Sub(b Xyz) Xyz { return Xyz{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Xyz) Scale(s float64) Xyz { return Xyz{a.X * s, a.Y * s, a.Z * s} }
func (a Xyz) Dot(b Xyz) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Xyz) Neg() Xyz { return Xyz{-a.X, -a.Y, -a.Z} }
func (a Xyz) Len2() float64 { return a.Dot(a) }
func (a Xyz) Len() float64 { return math.Sqrt(a.Dot(a)) }
func (a Xyz) Dist(b Xyz) float64 { return a.Sub(b).Len() }
func (a Xyz) Lerp(b Xyz, w float64) Xyz { return a.Add(b.Sub(a).Scale(w)) }

// Cross returns the vector product a x b.
func (a Xyz) Cross(b Xyz) Xyz {
	return Xyz{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns a unit vector in the direction of a. A zero vector comes
// back unchanged, so callers have to check the length if they care.
func (a Xyz) Norm() Xyz {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// String is mainly for error messages and debugging.
func (a Xyz) String() string { return fmt.Sprintf("(%.3f, %.3f, %.3f)", a.X, a.Y, a.Z) }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
