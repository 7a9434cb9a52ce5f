package cmmn_test

import (
	"math"
	"os"
	"testing"

	. "github.com/andrew-torda/cartoon/pkg/cmmn"
)

func TestXyzOk(t *testing.T) {
	var xyz Xyz
	xyz = BrokenXyz
	if xyz.Ok() {
		t.Error("cannot even check if a value is OK")
	}
	xyz = Xyz{1, 1, 1}
	if !xyz.Ok() {
		t.Error("OK should be true")
	}
	xyz.Y = math.NaN()
	if xyz.Ok() {
		t.Error("NaN coordinate should not be OK")
	}
	xyz = Xyz{1, 1, math.Inf(-1)}
	if xyz.Ok() {
		t.Error("infinite coordinate should not be OK")
	}
}

func TestCross(t *testing.T) {
	x, y, z := Xyz{1, 0, 0}, Xyz{0, 1, 0}, Xyz{0, 0, 1}
	if got := x.Cross(y); got != z {
		t.Errorf("x cross y got %v wanted %v", got, z)
	}
	if got := y.Cross(x); got != z.Neg() {
		t.Errorf("y cross x got %v wanted %v", got, z.Neg())
	}
	if d := x.Cross(y).Dot(x); d != 0 {
		t.Errorf("cross product not orthogonal, dot %g", d)
	}
}

func TestNorm(t *testing.T) {
	v := Xyz{3, 4, 12}
	if l := v.Norm().Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("normalised length %g", l)
	}
	var zero Xyz
	if zero.Norm() != zero {
		t.Error("zero vector should come back unchanged")
	}
}

func TestWrtTemp(t *testing.T) {
	const s = "andrewsays"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != s {
		t.Errorf("got %q wanted %q", b, s)
	}
}
