// 15 Oct 2026

// Package ribbon turns a chain with secondary structure labels into
// triangle meshes for drawing. One spline runs through the whole
// backbone. It is cut into pieces, one per run of equal labels, and a
// cross section chosen by the label is swept along each piece.
package ribbon

import (
	"math"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
	"github.com/andrew-torda/cartoon/pkg/spline"
	"github.com/andrew-torda/cartoon/pkg/ssa"
)

const (
	arrowWidth  = 1.6 // arrow heads start this much wider than the strand
	minBackbone = 2
)

// backbone is the atoms we draw through, with their residues.
type backbone struct {
	pts []cmmn.Xyz
	res []*pdb.Residue
}

// getBackbone takes one atom per residue. Residues without the atom
// are left out and the curve just goes from one neighbour to the next.
func getBackbone(ch *pdb.Chain) backbone {
	var bb backbone
	for _, r := range ch.Residues {
		if a := r.Backbone(); a != nil {
			bb.pts = append(bb.pts, a.Pos)
			bb.res = append(bb.res, r)
		}
	}
	return bb
}

// generator has what we need while cutting up one chain.
type generator struct {
	s      *Settings
	chain  string
	bb     backbone
	ts     []float64
	frames []spline.Frame
	resOf  []int // residue index of each sample
}

// profile is the cross section for a label.
func (g *generator) profile(ss pdb.SecStruct) Profile {
	s := g.s
	switch s.Mode {
	case Cartoon:
		switch ss {
		case pdb.Helix:
			return NewCircle(s.HelixSides, s.HelixRadius)
		case pdb.Sheet:
			return NewRect(s.SheetWidth, s.SheetThickness)
		case pdb.Coil:
			return NewCircle(s.CoilSides, s.CoilRadius)
		}
	case Ribbon, Trace:
		switch ss {
		case pdb.Helix:
			return NewRect(2*s.HelixRadius, s.SheetThickness)
		case pdb.Sheet:
			return NewRect(s.SheetWidth, s.SheetThickness)
		case pdb.Coil:
			return NewRect(s.CoilRadius, s.CoilThickness)
		}
	}
	panic("impossible secondary structure " + ss.String() + " or mode " + s.Mode.String())
}

// Generate makes the meshes for a chain. Labels are taken from the
// residues, so the chain should have been through ssa.Analyze. With
// fewer than two backbone atoms, there are no meshes and the error is
// a *spline.InsufficientBackboneError.
func Generate(ch *pdb.Chain, s *Settings) ([]MeshChunk, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	bb := getBackbone(ch)
	n := len(bb.pts)
	if n < minBackbone {
		return nil, &spline.InsufficientBackboneError{N: n, Min: minBackbone}
	}
	curve, err := spline.New(bb.pts, s.Tension)
	if err != nil {
		return nil, err
	}
	curve.SetBasis(s.Basis)
	curve.SetSubdivisions(s.Subdivisions)
	g := generator{s: s, chain: ch.ID, bb: bb}
	g.ts = curve.SampleUniform((n-1)*s.SamplesPerResidue + 1)
	g.frames = spline.MinimizeTwist(curve.Frames(g.ts))
	g.resOf = make([]int, len(g.ts))
	for k, t := range g.ts {
		g.resOf[k] = int(math.Round(t * float64(n-1)))
	}

	labels := make([]pdb.SecStruct, n)
	for i, r := range bb.res {
		labels[i] = r.SS
	}
	var chunks []MeshChunk
	var prevRing Profile // last cross section of the previous run
	k := 0
	for ir, run := range ssa.Runs(labels) {
		first := k
		for k < len(g.ts) && g.resOf[k] < run.End {
			k++
		}
		lo := first
		if ir > 0 && first > 0 {
			lo-- // share the last ring of the previous run
		}
		if m, last := g.run(run, lo, first, k, prevRing); m != nil {
			chunks = append(chunks, *m)
			prevRing = last
		} else {
			prevRing = g.profile(run.SS)
		}
	}
	return chunks, nil
}

// run makes the chunk for samples lo up to hi. Samples before first
// belong to the previous run and are only there to join the pieces.
// It returns nil for runs with fewer than two rings.
func (g *generator) run(run ssa.Run, lo, first, hi int, prevRing Profile) (*MeshChunk, Profile) {
	nRing := hi - lo
	if nRing < 2 {
		return nil, Profile{}
	}
	frames := g.frames[lo:hi]
	var m *MeshChunk
	var last Profile
	if g.s.Mode == Trace {
		m = polyline(frames)
	} else {
		rings := g.rings(run, lo, first, hi, prevRing)
		var err error
		if m, err = Extrude(rings, frames); err != nil {
			panic(err) // all rings come from one profile, so they match
		}
		last = rings[len(rings)-1]
		g.color(m, lo, hi, rings[0].Len())
		if g.s.Caps && lo == 0 {
			m.addCap(rings[0], frames[0], true)
			m.paint(m.NVertex(), g.ringColor(lo))
		}
		if g.s.Caps && hi == len(g.ts) {
			m.addCap(last, frames[len(frames)-1], false)
			m.paint(m.NVertex(), g.ringColor(hi-1))
		}
	}
	if m.Primitive == Lines {
		g.color(m, lo, hi, 1)
	}
	m.ChainID = g.chain
	m.SS = run.SS
	m.ResidueRange = [2]int{g.bb.res[run.Start].Seq, g.bb.res[run.End-1].Seq}
	return m, last
}

// rings chooses the cross section at each sample. The first rings morph
// from the previous run's last cross section, and strands may end in
// an arrow head.
func (g *generator) rings(run ssa.Run, lo, first, hi int, prevRing Profile) []Profile {
	base := g.profile(run.SS)
	nRing := hi - lo
	nBlend := 0
	if lo > 0 && prevRing.Len() > 0 {
		nBlend = int(math.Ceil(g.s.BlendFactor * float64(nRing)))
	}
	ret := make([]Profile, nRing)
	for j := range ret {
		if j < nBlend {
			ret[j] = Blend(prevRing, base, float64(j)/float64(nBlend))
		} else {
			ret[j] = base
		}
	}
	if !g.s.SheetArrows || run.SS != pdb.Sheet || run.Len() < 2 {
		return ret
	}
	head := hi // first sample of the arrow head
	for head > first && g.resOf[head-1] == run.End-1 {
		head--
	}
	if hi-1 <= head {
		return ret
	}
	for kk := head; kk < hi; kk++ {
		f := float64(kk-head) / float64(hi-1-head)
		ret[kk-lo] = ret[kk-lo].ScaleX(arrowWidth * (1 - f))
	}
	return ret
}

// ringColor is the colour for all vertices at sample k.
func (g *generator) ringColor(k int) RGBA {
	res := g.bb.res[g.resOf[k]]
	return g.s.colorFor(g.chain, res.SS, g.ts[k])
}

// color paints nPer vertices for each sample from lo to hi.
func (g *generator) color(m *MeshChunk, lo, hi, nPer int) {
	m.Colors = make([]float32, 0, 4*m.NVertex())
	for k := lo; k < hi; k++ {
		m.paint((k-lo+1)*nPer, g.ringColor(k))
	}
}
