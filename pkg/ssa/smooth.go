package ssa

import (
	"strings"

	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// The smoothing functions never change their argument. Each returns a
// new slice.

// Run is a stretch of equal labels, labels[Start:End].
type Run struct {
	SS         pdb.SecStruct
	Start, End int
}

// Len of a run
func (r Run) Len() int { return r.End - r.Start }

// Runs splits labels into maximal runs of the same label.
func Runs(labels []pdb.SecStruct) []Run {
	var ret []Run
	for i := 0; i < len(labels); {
		j := i + 1
		for j < len(labels) && labels[j] == labels[i] {
			j++
		}
		ret = append(ret, Run{labels[i], i, j})
		i = j
	}
	return ret
}

// EnforceMinRun turns helices shorter than minHelix and strands shorter
// than minSheet into coil.
func EnforceMinRun(labels []pdb.SecStruct, minHelix, minSheet int) []pdb.SecStruct {
	ret := append([]pdb.SecStruct(nil), labels...)
	for _, run := range Runs(labels) {
		var minLen int
		switch run.SS {
		case pdb.Coil:
			continue
		case pdb.Helix:
			minLen = minHelix
		case pdb.Sheet:
			minLen = minSheet
		default:
			panic("impossible secondary structure " + run.SS.String())
		}
		if run.Len() < minLen {
			for i := run.Start; i < run.End; i++ {
				ret[i] = pdb.Coil
			}
		}
	}
	return ret
}

// FillGaps closes short stretches of coil between two runs with the
// same label. Gaps of length 1 are filled first, then 2 and so on up
// to maxGap. Coil at the ends of the chain is never filled.
func FillGaps(labels []pdb.SecStruct, maxGap int) []pdb.SecStruct {
	ret := append([]pdb.SecStruct(nil), labels...)
	for gap := 1; gap <= maxGap; gap++ {
		runs := Runs(ret)
		for i := 1; i+1 < len(runs); i++ {
			r := runs[i]
			if r.SS != pdb.Coil || r.Len() != gap {
				continue
			}
			if prev, next := runs[i-1].SS, runs[i+1].SS; prev == next {
				for j := r.Start; j < r.End; j++ {
					ret[j] = prev
				}
			}
		}
	}
	return ret
}

// Smooth is EnforceMinRun followed by FillGaps.
func Smooth(labels []pdb.SecStruct, opts *Options) []pdb.SecStruct {
	return FillGaps(EnforceMinRun(labels, opts.MinHelix, opts.MinSheet), opts.MaxGap)
}

// LabelString gives the one letter codes, like "CCHHHHCEEE".
func LabelString(labels []pdb.SecStruct) string {
	var sb strings.Builder
	for _, s := range labels {
		sb.WriteByte(s.Code())
	}
	return sb.String()
}

// ParseLabels reads a string of one letter codes.
func ParseLabels(s string) ([]pdb.SecStruct, error) {
	ret := make([]pdb.SecStruct, len(s))
	for i := range s {
		v, err := pdb.ParseSecStruct(s[i : i+1])
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}
