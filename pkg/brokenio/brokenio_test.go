package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/cartoon/pkg/brokenio"
)

func TestFailAfter(t *testing.T) {
	src := io.NopCloser(strings.NewReader(strings.Repeat("x", 1000)))
	r := brokenio.NewReader(src, 1)
	r.SetFailAfter(100)
	b, err := io.ReadAll(r)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatalf("wanted ErrBroken, got %v", err)
	}
	if len(b) != 100 {
		t.Errorf("read %d bytes before failing, wanted 100", len(b))
	}
}

func TestNothingSet(t *testing.T) {
	const s = "andrewsayshello"
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(s)), 1)
	b, err := io.ReadAll(r)
	if err != nil || string(b) != s {
		t.Errorf("got %q %v", b, err)
	}
	if r.NByte() != len(s) {
		t.Errorf("counted %d bytes wanted %d", r.NByte(), len(s))
	}
}

func TestProbFail(t *testing.T) {
	const nByte = 2000
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(strings.Repeat("x", nByte))), 1)
	r.SetProbFail(0.5)
	var one [1]byte
	nFail := 0
	for i := 0; i < nByte; i++ {
		if _, err := r.Read(one[:]); errors.Is(err, brokenio.ErrBroken) {
			nFail++
		}
	}
	if frac := float64(nFail) / nByte; frac < 0.4 || frac > 0.6 {
		t.Errorf("failure rate %g, wanted about 0.5", frac)
	}
	if r.NByte() != nByte {
		t.Errorf("a failed read still passes its data, counted %d", r.NByte())
	}
}

func TestZeroFile(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(strings.NewReader("abc")), 1)
	r.SetProbZeroFile(1)
	if b, err := io.ReadAll(r); len(b) != 0 || err != nil {
		t.Errorf("wanted empty read, got %q %v", b, err)
	}
}
