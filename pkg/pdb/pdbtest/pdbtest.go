// Package pdbtest makes small synthetic structures in PDB format for
// tests. The coordinates are ideal, not taken from real files.
package pdbtest

import (
	"fmt"
	"math"
	"strings"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// Alpha helix parameters for an alpha carbon trace.
const (
	HelixRadius = 2.3   // Angstrom
	HelixRise   = 1.5   // Angstrom per residue
	HelixTwist  = 100.0 // degrees per residue
	CaCa        = 3.8   // Alpha carbon spacing in a straight line
)

// IdealHelix returns n alpha carbon positions on an ideal helix along z.
func IdealHelix(n int) []cmmn.Xyz {
	ret := make([]cmmn.Xyz, n)
	for i := range ret {
		a := float64(i) * HelixTwist * math.Pi / 180
		ret[i] = cmmn.Xyz{
			X: HelixRadius * math.Cos(a),
			Y: HelixRadius * math.Sin(a),
			Z: HelixRise * float64(i),
		}
	}
	return ret
}

// Line returns n points along x, spacing apart, starting at start.
func Line(n int, spacing float64, start cmmn.Xyz) []cmmn.Xyz {
	ret := make([]cmmn.Xyz, n)
	for i := range ret {
		ret[i] = start.Add(cmmn.Xyz{X: spacing * float64(i)})
	}
	return ret
}

// Arc returns n points on a circle of radius r in the xy plane, step
// radians apart. It is a smooth curve with no torsion.
func Arc(n int, r, step float64) []cmmn.Xyz {
	ret := make([]cmmn.Xyz, n)
	for i := range ret {
		a := step * float64(i)
		ret[i] = cmmn.Xyz{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return ret
}

// CaChain writes an alpha carbon only chain. Residues are numbered from
// first and all called resName.
func CaChain(chain string, first int, resName string, pts []cmmn.Xyz) string {
	var sb strings.Builder
	for i, p := range pts {
		a := pdb.Atom{
			Serial:     i + 1,
			Name:       "CA",
			ResName:    resName,
			ChainID:    chain,
			ResSeq:     first + i,
			Pos:        p,
			Occupancy:  1,
			TempFactor: 20,
			Element:    "C",
		}
		pdb.WriteAtom(&sb, &a)
	}
	return sb.String()
}

// HetGroup writes a hetero group, one atom per element given.
func HetGroup(chain string, seq int, resName string, elements []string, pts []cmmn.Xyz) string {
	var sb strings.Builder
	for i, p := range pts {
		a := pdb.Atom{
			Serial:    900 + i,
			Name:      fmt.Sprintf("%s%d", elements[i], i+1),
			ResName:   resName,
			ChainID:   chain,
			ResSeq:    seq,
			Pos:       p,
			Occupancy: 1,
			Element:   elements[i],
			Het:       true,
		}
		pdb.WriteAtom(&sb, &a)
	}
	return sb.String()
}

// HelixRecord writes a HELIX record for residues first to last.
func HelixRecord(serial int, chain string, first, last int) string {
	return fmt.Sprintf("HELIX %4d %3d %3s %1s %4d%1s %3s %1s %4d%1s%2d\n",
		serial, serial, "ALA", chain, first, "", "ALA", chain, last, "", 1)
}

// SheetRecord writes a SHEET record for one strand.
func SheetRecord(strand int, sheetID, chain string, first, last int) string {
	return fmt.Sprintf("SHEET %4d %3s%2d %3s %1s%4d%1s %3s %1s%4d%1s%2d\n",
		strand, sheetID, 2, "VAL", chain, first, "", "VAL", chain, last, "", 0)
}
