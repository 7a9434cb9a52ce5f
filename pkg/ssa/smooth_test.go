package ssa_test

import (
	"math/rand"
	"testing"

	"github.com/andrew-torda/cartoon/pkg/pdb"
	. "github.com/andrew-torda/cartoon/pkg/ssa"
)

func mustLabels(t *testing.T, s string) []pdb.SecStruct {
	t.Helper()
	l, err := ParseLabels(s)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

var minRunTests = []struct {
	in, want string
}{
	{"", ""},
	{"CCCC", "CCCC"},
	{"HHHCEECHHHH", "CCCCCCCHHHH"},
	{"EEEHHHH", "EEEHHHH"},
	{"EE", "CC"},
	{"CHCECHHHHCEEEC", "CCCCCHHHHCEEEC"},
}

func TestEnforceMinRun(t *testing.T) {
	for _, x := range minRunTests {
		in := mustLabels(t, x.in)
		got := LabelString(EnforceMinRun(in, 4, 3))
		if got != x.want {
			t.Errorf("%q got %q wanted %q", x.in, got, x.want)
		}
		if LabelString(in) != x.in {
			t.Errorf("input %q was changed", x.in)
		}
	}
}

var gapTests = []struct {
	in     string
	maxGap int
	want   string
}{
	{"HHHHCHHHH", 2, "HHHHHHHHH"},
	{"HHHHCCHHHH", 2, "HHHHHHHHHH"},
	{"HHHHCCHHHH", 1, "HHHHCCHHHH"},
	{"HHHHCCCHHHH", 2, "HHHHCCCHHHH"},
	{"EEECCHHHH", 2, "EEECCHHHH"},
	{"CHHHHC", 2, "CHHHHC"},
	{"EEECEEECCEEE", 2, "EEEEEEEEEEEE"},
	{"HHHHCHHHHCCEEE", 2, "HHHHHHHHHCCEEE"},
	{"HHHHCHHHH", 0, "HHHHCHHHH"},
}

func TestFillGaps(t *testing.T) {
	for _, x := range gapTests {
		in := mustLabels(t, x.in)
		if got := LabelString(FillGaps(in, x.maxGap)); got != x.want {
			t.Errorf("%q max %d got %q wanted %q", x.in, x.maxGap, got, x.want)
		}
	}
}

func TestSmooth(t *testing.T) {
	opts := DefaultOptions()
	for _, x := range []struct{ in, want string }{
		{"HHCHHHH", "CCCHHHH"},
		{"HHHHCEHHHH", "HHHHHHHHHH"}, // the lone E goes, then the gap is filled
		{"EEECEE", "EEECCC"},
	} {
		if got := LabelString(Smooth(mustLabels(t, x.in), &opts)); got != x.want {
			t.Errorf("%q got %q wanted %q", x.in, got, x.want)
		}
	}
}

// randLabels makes sequences with runs, so there is something to
// smooth.
func randLabels(rnd *rand.Rand) []pdb.SecStruct {
	n := rnd.Intn(80)
	ret := make([]pdb.SecStruct, 0, n)
	for len(ret) < n {
		s := pdb.SecStruct(rnd.Intn(int(pdb.NSecStruct)))
		for j := rnd.Intn(7); j >= 0 && len(ret) < n; j-- {
			ret = append(ret, s)
		}
	}
	return ret
}

// TestSmoothRandom checks on random input that nothing too short is
// left.
func TestSmoothRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, opts := range []Options{DefaultOptions(), {MinHelix: 5, MinSheet: 2, MaxGap: 4}} {
		for i := 0; i < 2000; i++ {
			in := randLabels(rnd)
			before := LabelString(in)
			out := Smooth(in, &opts)
			if LabelString(in) != before {
				t.Fatal("input changed")
			}
			if len(out) != len(in) {
				t.Fatal("length changed")
			}
			for _, run := range Runs(out) {
				if (run.SS == pdb.Helix && run.Len() < opts.MinHelix) ||
					(run.SS == pdb.Sheet && run.Len() < opts.MinSheet) {
					t.Fatalf("%s gave %s with short run at %d", before, LabelString(out), run.Start)
				}
			}
		}
	}
}

func TestRuns(t *testing.T) {
	runs := Runs(mustLabels(t, "CCHHHE"))
	want := []Run{{pdb.Coil, 0, 2}, {pdb.Helix, 2, 5}, {pdb.Sheet, 5, 6}}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs", len(runs))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d got %+v wanted %+v", i, runs[i], want[i])
		}
	}
	if _, err := ParseLabels("HHX"); err == nil {
		t.Error("X should not parse")
	}
}
