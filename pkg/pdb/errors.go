package pdb

import (
	"fmt"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrMmcif   = Error("mmcif format is not read, only pdb format")
	ErrNoAtoms = Error("no ATOM or HETATM records found")
)

// MalformedRecordError is a record with a field we could not read.
// The atom or range is either dropped or given a default value, but we
// keep a note of it.
type MalformedRecordError struct {
	Line   int    // line number, from 1
	Record string // ATOM, HETATM, HELIX, SHEET, ...
	Field  string
	Text   string // what was in the columns
	Fatal  bool   // the record was dropped, not patched
}

func (e *MalformedRecordError) Error() string {
	action := "using default"
	if e.Fatal {
		action = "record dropped"
	}
	return fmt.Sprintf("line %d: %s record, bad %s %q, %s",
		e.Line, e.Record, e.Field, e.Text, action)
}

// UnknownElementWarning means we treat an atom as carbon for radius look-up.
type UnknownElementWarning struct {
	Serial  int
	Name    string
	Element string
}

func (e *UnknownElementWarning) Error() string {
	return fmt.Sprintf("atom %d %s: unknown element %q, using carbon",
		e.Serial, e.Name, e.Element)
}

// LigandSizeWarning is given when a ligand is too big for bond guessing.
type LigandSizeWarning struct {
	ResName string
	NAtom   int
}

func (e *LigandSizeWarning) Error() string {
	return fmt.Sprintf("ligand %s has %d atoms, more than %d, bonds not inferred",
		e.ResName, e.NAtom, MaxLigandAtoms)
}
