package pdb

// Bond guessing parameters. Two atoms are bonded if they are further
// apart than minBondDist and closer than bondTol times the sum of their
// covalent radii.
const (
	bondTol     = 1.3
	minBondDist = 0.4

	// MaxLigandAtoms bounds the pairwise bond search, which is O(n^2).
	// Bigger hetero groups get no bonds.
	MaxLigandAtoms = 256
)

// buildLigands collects the ligand residues and guesses their bonds.
func buildLigands(st *Structure) {
	for _, r := range st.Residues {
		if !r.isLigand() {
			continue
		}
		lig := &Ligand{
			ChainID: r.ChainID,
			ResName: r.Name,
			Seq:     r.Seq,
			Atoms:   r.Atoms,
		}
		if len(lig.Atoms) > MaxLigandAtoms {
			st.Warnings = append(st.Warnings, &LigandSizeWarning{r.Name, len(lig.Atoms)})
		} else {
			lig.Bonds = InferBonds(lig.Atoms)
		}
		st.Ligands = append(st.Ligands, lig)
	}
}

// InferBonds looks at every pair of atoms and decides from the
// distance and covalent radii if they are bonded.
func InferBonds(atoms []*Atom) []Bond {
	radii := make([]float64, len(atoms))
	for i, a := range atoms {
		radii[i], _ = CovRadius(a.Element)
	}
	var bonds []Bond
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			d := atoms[i].Pos.Dist(atoms[j].Pos)
			if d < minBondDist {
				continue // coincident, probably alternate locations
			}
			if d <= bondTol*(radii[i]+radii[j]) {
				bonds = append(bonds, Bond{I: i, J: j, Dist: d})
			}
		}
	}
	return bonds
}
