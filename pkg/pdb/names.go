package pdb

// aminoAcids is the standard twenty plus a few modified residues that
// should be drawn as part of the chain.
var aminoAcids = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLU": true, "GLN": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"MSE": true, "SEP": true, "TPO": true, "PTR": true, "HYP": true,
	"MLY": true, "CSO": true, "SEC": true, "PYL": true,
	"ASX": true, "GLX": true, "UNK": true,
}

// nucleotides are RNA and DNA codes.
var nucleotides = map[string]bool{
	"A": true, "C": true, "G": true, "U": true, "I": true, "T": true, "N": true,
	"DA": true, "DC": true, "DG": true, "DT": true, "DI": true, "DU": true,
}

var waters = map[string]bool{"HOH": true, "WAT": true, "DOD": true, "H2O": true}

func IsAminoAcid(resName string) bool { return aminoAcids[resName] }
func IsNucleotide(resName string) bool { return nucleotides[resName] }
func IsWater(resName string) bool      { return waters[resName] }
