// 12 Oct 2026

package pdb

import (
	"github.com/andrew-torda/cartoon/pkg/cmmn"
)

// Atom has the columns from an ATOM or HETATM record. Once parsed, it
// is not changed.
type Atom struct {
	Serial     int
	Name       string
	AltLoc     byte
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      byte
	Pos        cmmn.Xyz
	Occupancy  float64
	TempFactor float64
	Element    string
	Charge     string
	Het        bool
}

// Residue groups the atoms with the same chain, residue number and
// insertion code. The only fields changed after parsing are the
// secondary structure ones.
type Residue struct {
	ChainID   string
	Seq       int
	ICode     byte
	Name      string
	Atoms     []*Atom          // in file order
	byName    map[string]*Atom // first atom seen with each name
	IsProtein bool
	IsNucleic bool
	IsWater   bool

	// Backbone references, nil if missing. Protein residues get
	// CA, C, N and O, nucleic acids get P, C5', C3' and C1'.
	CA, C, N, O      *Atom
	P, C5p, C3p, C1p *Atom

	SS       SecStruct
	SSConf   float64
	SSSource SSSource
}

// Atom looks up an atom by name. If there are alternate locations, we
// get the first one in the file.
func (r *Residue) Atom(name string) *Atom { return r.byName[name] }

// HasHet says if any atom came from a HETATM record.
func (r *Residue) HasHet() bool {
	for _, a := range r.Atoms {
		if a.Het {
			return true
		}
	}
	return false
}

// Backbone returns the atom used to trace the chain, CA for proteins
// and P (or C3' if there is no P) for nucleic acids.
func (r *Residue) Backbone() *Atom {
	switch {
	case r.IsProtein:
		return r.CA
	case r.IsNucleic:
		if r.P != nil {
			return r.P
		}
		return r.C3p
	}
	return r.CA
}

// ChainType is what a chain is mostly made of.
type ChainType uint8

const (
	ChainOther ChainType = iota
	ChainProtein
	ChainNucleic
)

func (c ChainType) String() string {
	switch c {
	case ChainOther:
		return "other"
	case ChainProtein:
		return "protein"
	case ChainNucleic:
		return "nucleic"
	}
	return "unknown"
}

func (c ChainType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Chain is a polymer chain, residues sorted by number.
type Chain struct {
	ID       string
	Residues []*Residue
	Type     ChainType
}

// Bond is between two atoms of a ligand, indices into Ligand.Atoms.
type Bond struct {
	I, J int
	Dist float64
}

// Ligand is a HETATM residue which is not water, protein or nucleic acid.
type Ligand struct {
	ChainID string
	ResName string
	Seq     int
	Atoms   []*Atom
	Bonds   []Bond
}

// Header has the bits of the HEADER record we keep.
type Header struct {
	Classification string
	DepDate        string
	IDCode         string
}

// SSRange is a HELIX or SHEET record. For sheets, Class holds the
// sense of the strand, for helices the helix class.
type SSRange struct {
	SS        SecStruct
	Serial    int
	ID        string // helix id or sheet id
	Class     int
	InitChain string
	InitSeq   int
	EndChain  string
	EndSeq    int
	NStrands  int
}

// Structure is everything we got from one file.
type Structure struct {
	Header   Header
	Atoms    []*Atom
	Residues []*Residue // in order of first appearance
	Chains   []*Chain   // sorted by id
	Ligands  []*Ligand
	Ranges   []SSRange
	Warnings []error // non-fatal problems, see errors.go
}

// Chain looks for the chain with identifier id and returns it. nil is
// returned if the chain could not be found.
func (st *Structure) Chain(id string) *Chain {
	for _, c := range st.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}
