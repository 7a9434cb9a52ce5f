package pdb

import (
	"strings"
)

// parseHeader loads the classification, date and id code. A second
// HEADER record just overwrites the first.
func (p *parser) parseHeader(line []byte) {
	p.st.Header = Header{
		Classification: strings.TrimSpace(col(line, 11, 50)),
		DepDate:        strings.TrimSpace(col(line, 51, 59)),
		IDCode:         strings.TrimSpace(col(line, 63, 66)),
	}
}

// rangeInts reads the numbers for a HELIX or SHEET record. Serial and
// class are allowed to be blank. The residue numbers are not.
func (p *parser) rangeInts(line []byte, rec string, cols [][2]int, names []string,
	required []bool) ([]int, bool) {
	vals := make([]int, len(cols))
	for i, c := range cols {
		s := col(line, c[0], c[1])
		v, blank, ok := integer(s)
		if !ok && (required[i] || !blank) {
			p.bad(rec, names[i], s, required[i])
			if required[i] {
				return nil, false
			}
		}
		vals[i] = v
	}
	return vals, true
}

// parseHelix reads a HELIX record.
// https://www.wwpdb.org/documentation/file-format-content/format33/sect5.html#HELIX
func (p *parser) parseHelix(line []byte) {
	cols := [][2]int{{8, 10}, {22, 25}, {34, 37}, {39, 40}}
	names := []string{"serial", "initSeqNum", "endSeqNum", "helixClass"}
	required := []bool{false, true, true, false}
	v, ok := p.rangeInts(line, "HELIX", cols, names, required)
	if !ok {
		return
	}
	p.st.Ranges = append(p.st.Ranges, SSRange{
		SS:        Helix,
		Serial:    v[0],
		ID:        strings.TrimSpace(col(line, 12, 14)),
		InitChain: strings.TrimSpace(col(line, 20, 20)),
		InitSeq:   v[1],
		EndChain:  strings.TrimSpace(col(line, 32, 32)),
		EndSeq:    v[2],
		Class:     v[3],
	})
}

// parseSheet reads a SHEET record. Only the first two lines of the
// registration are used, the rest of the record describes hydrogen
// bonding to the previous strand.
func (p *parser) parseSheet(line []byte) {
	cols := [][2]int{{8, 10}, {15, 16}, {23, 26}, {34, 37}, {39, 40}}
	names := []string{"strand", "numStrands", "initSeqNum", "endSeqNum", "sense"}
	required := []bool{false, false, true, true, false}
	v, ok := p.rangeInts(line, "SHEET", cols, names, required)
	if !ok {
		return
	}
	p.st.Ranges = append(p.st.Ranges, SSRange{
		SS:        Sheet,
		Serial:    v[0],
		ID:        strings.TrimSpace(col(line, 12, 14)),
		NStrands:  v[1],
		InitChain: strings.TrimSpace(col(line, 22, 22)),
		InitSeq:   v[2],
		EndChain:  strings.TrimSpace(col(line, 33, 33)),
		EndSeq:    v[3],
		Class:     v[4],
	})
}

// applyRanges is the first pass of secondary structure assignment.
// Every residue inside a HELIX or SHEET range gets the label with
// full confidence. A range ending on another chain is only applied to
// the chain it starts on.
func applyRanges(st *Structure) {
	for _, rng := range st.Ranges {
		ch := st.Chain(rng.InitChain)
		if ch == nil {
			continue
		}
		lo, hi := rng.InitSeq, rng.EndSeq
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, r := range ch.Residues {
			if r.Seq >= lo && r.Seq <= hi {
				r.SS = rng.SS
				r.SSConf = 1
				r.SSSource = SrcHeader
			}
		}
	}
}
