package pdb

import (
	"strings"
)

// carbonRadius is used for anything we do not know.
const carbonRadius = 0.76

// covRad is the covalent radius in Angstrom for the elements one sees
// in biological structures. Values from Cordero et al., 2008
// (DOI:10.1039/B801115J), hydrogen made a bit bigger.
var covRad = map[string]float64{
	"H":  0.4,
	"C":  carbonRadius, // the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,
	"Fe": 1.52,
	"Mn": 1.61,
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
	"B":  0.84,
	"Ni": 1.24,
	"Cd": 1.44,
	"Hg": 1.32,
}

// normElement turns "FE" or "fe" into "Fe".
func normElement(s string) string {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// KnownElement says if we have a radius for an element symbol.
func KnownElement(e string) bool {
	_, ok := covRad[normElement(e)]
	return ok
}

// CovRadius returns the covalent radius of an element and whether it
// was known. Unknown elements get the carbon radius.
func CovRadius(e string) (float64, bool) {
	if r, ok := covRad[normElement(e)]; ok {
		return r, true
	}
	return carbonRadius, false
}

// guessElement works from the four character atom name in columns
// 13-16 when the element columns are empty. Names of two letter elements
// start in column 13 ("FE  "), names of one letter elements in column
// 14 (" CA "). Protein hydrogens like "HG12" also start in column 13, so
// we only believe a two letter element for HETATM records or short names.
func guessElement(raw string, het bool) string {
	if len(raw) >= 2 && isLetter(raw[0]) && isLetter(raw[1]) {
		two := normElement(raw[:2])
		short := len(strings.TrimSpace(raw)) <= 2
		if _, ok := covRad[two]; ok && two != "H" && (het || short) {
			return two
		}
	}
	for i := 0; i < len(raw); i++ {
		if isLetter(raw[i]) {
			return strings.ToUpper(raw[i : i+1])
		}
	}
	return ""
}

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
