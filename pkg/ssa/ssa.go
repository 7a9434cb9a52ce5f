// 13 Oct 2026

// Package ssa assigns secondary structure to the residues of a chain.
// Labels from HELIX and SHEET records, put there by the pdb package, are
// kept. Residues without one get a label from the geometry of the alpha
// carbon trace. Finally, the labels are smoothed so there are no
// helices or strands too short to draw.
package ssa

import (
	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// Options control the geometric and smoothing passes.
type Options struct {
	Window      int  // residues in the sliding window, centred on the residue
	MinWindow   int  // windows with fewer alpha carbons are coil
	MinHelix    int  // shorter helices are turned into coil
	MinSheet    int  // shorter strands are turned into coil
	MaxGap      int  // fill coil gaps up to this long between equal labels
	UseGeometry bool // if false, only header labels are used
}

// DefaultOptions are the values we use unless told otherwise.
func DefaultOptions() Options {
	return Options{
		Window:      5,
		MinWindow:   3,
		MinHelix:    4,
		MinSheet:    3,
		MaxGap:      2,
		UseGeometry: true,
	}
}

// caTrace collects the alpha carbons of a chain. idx[i] is the residue
// the i'th alpha carbon belongs to.
func caTrace(ch *pdb.Chain) (pts []cmmn.Xyz, idx []int) {
	for i, r := range ch.Residues {
		if r.IsProtein && r.CA != nil {
			pts = append(pts, r.CA.Pos)
			idx = append(idx, i)
		}
	}
	return pts, idx
}

// geometric labels the residues that did not get a label from the
// header.
func geometric(ch *pdb.Chain, opts *Options) {
	pts, idx := caTrace(ch)
	linked := links(pts)
	for i, ires := range idx {
		r := ch.Residues[ires]
		if r.SSSource == pdb.SrcHeader {
			continue
		}
		lo, hi := window(linked, i, opts.Window)
		r.SS, r.SSConf = Classify(pts[lo:hi+1], opts)
		r.SSSource = pdb.SrcGeometry
	}
}

// Analyze labels every residue of a chain and returns the counts. The
// residues are changed in place. A nil opts means DefaultOptions.
func Analyze(ch *pdb.Chain, opts *Options) Summary {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if opts.UseGeometry && ch.Type == pdb.ChainProtein {
		geometric(ch, opts)
	}
	labels := Smooth(Labels(ch), opts)
	Apply(ch, labels)
	return Summarize(ch.ID, labels)
}

// Labels returns the current label of each residue.
func Labels(ch *pdb.Chain) []pdb.SecStruct {
	ret := make([]pdb.SecStruct, len(ch.Residues))
	for i, r := range ch.Residues {
		ret[i] = r.SS
	}
	return ret
}

// Apply writes labels back to the residues. Confidence and source are
// left alone, so a residue changed by smoothing keeps the confidence
// of its window.
func Apply(ch *pdb.Chain, labels []pdb.SecStruct) {
	for i, r := range ch.Residues {
		r.SS = labels[i]
	}
}
