package pdb

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
)

const lineLen = 80 // Records are padded to this many columns

// col returns columns from to "to" of a line, counting from 1 and
// including both ends, like the format description. Short lines are
// treated as if they were padded with blanks.
func col(line []byte, from, to int) string {
	if from > len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return string(line[from-1 : to])
}

// colByte is a single column. Blanks and missing columns come back as ' '.
func colByte(line []byte, c int) byte {
	if c > len(line) {
		return ' '
	}
	return line[c-1]
}

// bad notes a field we could not read.
func (p *parser) bad(rec, field, text string, fatal bool) {
	p.st.Warnings = append(p.st.Warnings, &MalformedRecordError{
		Line: p.n, Record: rec, Field: field, Text: text, Fatal: fatal,
	})
}

// float reads a fixed column float. ok is false if it was blank
// or rubbish, blank is true if there was nothing there at all.
// strconv is happy with NaN and Inf, but we are not.
func float(s string) (v float64, blank bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, false
	}
	return v, false, true
}

func integer(s string) (v int, blank bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, false
	}
	return v, false, true
}

// parseAtom reads an ATOM or HETATM record. It returns nil if the
// coordinates or residue number cannot be read, since such an atom
// cannot be placed anywhere.
// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
func (p *parser) parseAtom(line []byte, het bool) *Atom {
	rec := "ATOM"
	if het {
		rec = "HETATM"
	}
	rawName := col(line, 13, 16)
	atom := &Atom{
		Name:      strings.TrimSpace(rawName),
		AltLoc:    colByte(line, 17),
		ResName:   strings.TrimSpace(col(line, 18, 20)),
		ChainID:   strings.TrimSpace(col(line, 22, 22)),
		ICode:     colByte(line, 27),
		Element:   normElement(col(line, 77, 78)),
		Charge:    strings.TrimSpace(col(line, 79, 80)),
		Het:       het,
		Occupancy: 1,
	}

	var ok, blank bool
	var xyz [3]float64
	xyzCols := [3][2]int{{31, 38}, {39, 46}, {47, 54}}
	for i, c := range xyzCols {
		s := col(line, c[0], c[1])
		if xyz[i], _, ok = float(s); !ok {
			p.bad(rec, "xyz"[i:i+1], s, true)
			return nil
		}
	}
	atom.Pos = cmmn.Xyz{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	if !atom.Pos.Ok() {
		p.bad(rec, "xyz", col(line, 31, 54), true)
		return nil
	}

	s := col(line, 23, 26)
	if atom.ResSeq, _, ok = integer(s); !ok {
		p.bad(rec, "resSeq", s, true)
		return nil
	}

	s = col(line, 7, 11)
	if atom.Serial, blank, ok = integer(s); !ok && !blank {
		p.bad(rec, "serial", s, false)
	}
	s = col(line, 55, 60)
	if v, blank, ok := float(s); ok {
		atom.Occupancy = v
	} else if !blank {
		p.bad(rec, "occupancy", s, false)
	}
	s = col(line, 61, 66)
	if v, blank, ok := float(s); ok {
		atom.TempFactor = v
	} else if !blank {
		p.bad(rec, "tempFactor", s, false)
	}

	if atom.Element == "" {
		atom.Element = guessElement(rawName, het)
	}
	if !KnownElement(atom.Element) {
		p.st.Warnings = append(p.st.Warnings, &UnknownElementWarning{
			Serial: atom.Serial, Name: atom.Name, Element: atom.Element,
		})
	}
	return atom
}

// blankIs0 turns a zero byte into a blank for writing.
func blankIs0(c byte) byte {
	if c == 0 {
		return ' '
	}
	return c
}

// WriteAtom writes an atom in the same fixed columns we read.
func WriteAtom(w io.Writer, a *Atom) error {
	rec := "ATOM"
	if a.Het {
		rec = "HETATM"
	}
	name := a.Name
	if len(name) < 4 && len(a.Element) < 2 {
		name = " " + name // one letter elements start in column 14
	}
	chain := a.ChainID
	if chain == "" {
		chain = " "
	}
	_, err := fmt.Fprintf(w,
		"%-6s%5d %-4s%c%3s %1.1s%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%-2s\n",
		rec, a.Serial, name, blankIs0(a.AltLoc), a.ResName, chain, a.ResSeq,
		blankIs0(a.ICode), a.Pos.X, a.Pos.Y, a.Pos.Z, a.Occupancy, a.TempFactor,
		strings.ToUpper(a.Element), a.Charge)
	return err
}
