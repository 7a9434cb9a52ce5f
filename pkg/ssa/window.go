package ssa

import (
	"math"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/geom"
	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// Limits for scoring a window of alpha carbons. Distances in
// Angstrom, angles in degrees.
const (
	helixDistLo  = 3.6
	helixDistHi  = 4.0
	helixTurnLo  = 70.
	helixTurnHi  = 130.
	torsionSlop  = 30.
	sheetDist    = 3.4
	straightTurn = 30. // turn angles below this or above 180 minus this
	varLimit     = 0.5 // distance variance, Angstrom squared
	varPenalty   = 0.8
	minConf      = 0.5
	minScore     = 0.6
)

// links[i] is true if alpha carbons i and i+1 are a plausible distance
// apart. Anything else is a chain break and windows do not cross it.
func links(pts []cmmn.Xyz) []bool {
	if len(pts) < 2 {
		return nil
	}
	ret := make([]bool, len(pts)-1)
	for i := range ret {
		_, err := geom.CaDist(pts[i], pts[i+1])
		ret[i] = err == nil
	}
	return ret
}

// window returns the first and last index of the window around i. It
// is width wide, unless cut by the end of the chain or a break.
func window(linked []bool, i, width int) (lo, hi int) {
	half := width / 2
	lo, hi = i, i
	for lo > i-half && lo > 0 && linked[lo-1] {
		lo--
	}
	for hi < i+half && hi < len(linked) && linked[hi] {
		hi++
	}
	return lo, hi
}

// Scores are the raw numbers for one window.
type Scores struct {
	Helix, Sheet, Conf float64
}

// score works out helix and sheet likeness of a set of consecutive
// alpha carbons. The caller has checked they are linked.
func score(pts []cmmn.Xyz, width int) Scores {
	var dists, turns, tors []float64
	for i := 0; i+1 < len(pts); i++ {
		dists = append(dists, pts[i].Dist(pts[i+1]))
	}
	for i := 0; i+2 < len(pts); i++ {
		t, err := geom.TurnAngle(pts[i], pts[i+1], pts[i+2])
		if err != nil {
			t = math.NaN() // fails every range test below
		}
		turns = append(turns, t*geom.Rad2Deg)
	}
	for i := 0; i+3 < len(pts); i++ {
		if t, err := geom.XyzDhdrl(pts[i], pts[i+1], pts[i+2], pts[i+3]); err == nil {
			tors = append(tors, t)
		}
	}

	var s Scores
	var nClose int
	mean := 0.
	for _, d := range dists {
		if d >= helixDistLo && d <= helixDistHi {
			nClose++
		}
		mean += d
	}
	mean /= float64(len(dists))
	variance := 0.
	for _, d := range dists {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(dists))

	s.Helix = 0.4 * float64(nClose) / float64(len(dists))
	regular := true
	var nStraight int
	for _, t := range turns {
		if !(t >= helixTurnLo && t <= helixTurnHi) {
			regular = false
		}
		if t < straightTurn || t > 180-straightTurn {
			nStraight++
		}
	}
	if regular && len(turns) > 0 {
		s.Helix += 0.3
	}
	if consistent(tors) {
		s.Helix += 0.3
	}

	if mean >= sheetDist {
		s.Sheet = 0.5
	}
	if len(turns) > 0 {
		s.Sheet += 0.5 * float64(nStraight) / float64(len(turns))
	}

	s.Conf = float64(len(pts)) / float64(width)
	if s.Conf > 1 {
		s.Conf = 1
	}
	if variance > varLimit {
		s.Conf *= varPenalty
	}
	return s
}

// consistent is true if there is at least one torsion angle and all of
// them are within torsionSlop of their circular mean.
func consistent(tors []float64) bool {
	if len(tors) == 0 {
		return false
	}
	var sn, cs float64
	for _, t := range tors {
		sn += math.Sin(t)
		cs += math.Cos(t)
	}
	mean := math.Atan2(sn, cs)
	for _, t := range tors {
		d := math.Remainder(t-mean, 2*math.Pi)
		if math.Abs(d)*geom.Rad2Deg > torsionSlop {
			return false
		}
	}
	return true
}

// decide turns scores into a label. The winner has to be good enough
// and strictly better than the loser, and the window has to be
// trusted.
func decide(s Scores) pdb.SecStruct {
	if s.Conf <= minConf {
		return pdb.Coil
	}
	switch {
	case s.Helix > s.Sheet && s.Helix > minScore:
		return pdb.Helix
	case s.Sheet > s.Helix && s.Sheet > minScore:
		return pdb.Sheet
	}
	return pdb.Coil
}

// Classify labels the residue in the middle of a window of alpha
// carbons and says how much we trust the window. Windows shorter than
// opts.MinWindow are coil with no confidence.
func Classify(pts []cmmn.Xyz, opts *Options) (pdb.SecStruct, float64) {
	if len(pts) < opts.MinWindow || len(pts) < 3 {
		return pdb.Coil, 0
	}
	s := score(pts, opts.Window)
	return decide(s), s.Conf
}
