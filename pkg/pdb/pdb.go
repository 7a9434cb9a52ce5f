// 12 Oct 2026

// Package pdb reads the fixed column PDB format into atoms, residues,
// chains and ligands. It also does the first pass of secondary
// structure assignment from HELIX and SHEET records.
// Problems with single records do not stop the parse. They are kept in
// Structure.Warnings and the record is dropped or patched.
package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Options are the choices passed in from the caller.
type Options struct {
	AllModels bool // Keep reading after the first ENDMDL
}

// parser carries the state while reading one file.
type parser struct {
	st       *Structure
	opts     Options
	n        int // line number
	resIndex map[resKey]*Residue
}

const maxLine = 1024 * 1024 // longest line bufio will give us

// Parse reads PDB format text with default options.
func Parse(r io.Reader) (*Structure, error) { return ParseOpts(r, nil) }

// ParseBytes is Parse for text already in memory.
func ParseBytes(b []byte) (*Structure, error) { return ParseOpts(bytes.NewReader(b), nil) }

// ParseOpts reads PDB format text. The only errors returned come from
// reading. A file with no atoms is not an error, but comes back with
// ErrNoAtoms in the warnings.
func ParseOpts(r io.Reader, opts *Options) (*Structure, error) {
	p := parser{
		st:       &Structure{},
		resIndex: make(map[resKey]*Residue),
	}
	if opts != nil {
		p.opts = *opts
	}
	scnnr := bufio.NewScanner(r)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	for scnnr.Scan() {
		p.n++
		line := bytes.TrimRight(scnnr.Bytes(), "\r")
		if done := p.record(line); done {
			break
		}
	}
	if err := scnnr.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", p.n, err)
	}
	p.finish()
	return p.st, nil
}

// record dispatches on the record name. It returns true when we should
// stop reading.
func (p *parser) record(line []byte) bool {
	switch {
	case bytes.HasPrefix(line, []byte("ATOM")):
		if a := p.parseAtom(line, false); a != nil {
			p.addAtom(a)
		}
	case bytes.HasPrefix(line, []byte("HETATM")):
		if a := p.parseAtom(line, true); a != nil {
			p.addAtom(a)
		}
	case bytes.HasPrefix(line, []byte("HELIX")):
		p.parseHelix(line)
	case bytes.HasPrefix(line, []byte("SHEET")):
		p.parseSheet(line)
	case bytes.HasPrefix(line, []byte("HEADER")):
		p.parseHeader(line)
	case bytes.HasPrefix(line, []byte("ENDMDL")):
		return !p.opts.AllModels && len(p.st.Atoms) > 0
	}
	return false
}

// finish builds everything that needs the whole file.
func (p *parser) finish() {
	st := p.st
	if len(st.Atoms) == 0 {
		st.Warnings = append(st.Warnings, ErrNoAtoms)
	}
	for _, r := range st.Residues {
		r.classify()
	}
	buildChains(st)
	buildLigands(st)
	applyRanges(st)
}
