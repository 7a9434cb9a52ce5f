package pdb

import (
	"sort"
)

// resKey is how atoms are grouped into residues.
type resKey struct {
	chain string
	seq   int
	iCode byte
}

// addAtom puts an atom into its residue, making the residue if this is
// the first time we have seen the key. Atoms under a key we have seen
// before are merged into the old residue, even if they are far apart in
// the file.
func (p *parser) addAtom(a *Atom) {
	key := resKey{a.ChainID, a.ResSeq, a.ICode}
	r, ok := p.resIndex[key]
	if !ok {
		r = &Residue{
			ChainID: a.ChainID,
			Seq:     a.ResSeq,
			ICode:   a.ICode,
			Name:    a.ResName,
			byName:  make(map[string]*Atom),
		}
		p.resIndex[key] = r
		p.st.Residues = append(p.st.Residues, r)
	}
	r.Atoms = append(r.Atoms, a)
	if _, seen := r.byName[a.Name]; !seen {
		r.byName[a.Name] = a
	}
	p.st.Atoms = append(p.st.Atoms, a)
}

// classify sets the residue type flags and caches the backbone atoms.
func (r *Residue) classify() {
	r.IsProtein = IsAminoAcid(r.Name)
	r.IsNucleic = IsNucleotide(r.Name)
	r.IsWater = IsWater(r.Name)
	switch {
	case r.IsProtein:
		r.CA, r.C, r.N, r.O = r.byName["CA"], r.byName["C"], r.byName["N"], r.byName["O"]
	case r.IsNucleic:
		r.P = r.byName["P"]
		r.C5p = r.primed("C5")
		r.C3p = r.primed("C3")
		r.C1p = r.primed("C1")
	}
}

// primed looks for C5' and the like, also under the old names with
// a star.
func (r *Residue) primed(stem string) *Atom {
	if a := r.byName[stem+"'"]; a != nil {
		return a
	}
	return r.byName[stem+"*"]
}

// isLigand is true for a residue with a HETATM that is not part of a
// polymer and not water.
func (r *Residue) isLigand() bool {
	return r.HasHet() && !r.IsWater && !r.IsProtein && !r.IsNucleic
}

// lessRes sorts residues by number, then insertion code.
func lessRes(a, b *Residue) bool {
	if a.Seq != b.Seq {
		return a.Seq < b.Seq
	}
	return a.ICode < b.ICode
}

// buildChains groups the polymer residues by chain id. Water and
// ligands do not go into chains.
func buildChains(st *Structure) {
	byID := make(map[string]*Chain)
	for _, r := range st.Residues {
		if r.IsWater || r.isLigand() {
			continue
		}
		ch, ok := byID[r.ChainID]
		if !ok {
			ch = &Chain{ID: r.ChainID}
			byID[r.ChainID] = ch
			st.Chains = append(st.Chains, ch)
		}
		ch.Residues = append(ch.Residues, r)
	}
	sort.Slice(st.Chains, func(i, j int) bool { return st.Chains[i].ID < st.Chains[j].ID })
	for _, ch := range st.Chains {
		res := ch.Residues
		sort.SliceStable(res, func(i, j int) bool { return lessRes(res[i], res[j]) })
		ch.Type = vote(res)
	}
}

// vote decides the chain type from the residues. A draw with something
// on both sides goes to protein.
func vote(res []*Residue) ChainType {
	var nProt, nNuc int
	for _, r := range res {
		if r.IsProtein {
			nProt++
		} else if r.IsNucleic {
			nNuc++
		}
	}
	switch {
	case nProt == 0 && nNuc == 0:
		return ChainOther
	case nProt >= nNuc:
		return ChainProtein
	}
	return ChainNucleic
}
