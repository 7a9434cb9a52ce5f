package ssa

import (
	"fmt"

	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// Summary is the secondary structure content of a chain.
type Summary struct {
	ChainID string
	NRes    int
	Count   [pdb.NSecStruct]int
	Percent [pdb.NSecStruct]float64
}

// Summarize counts labels.
func Summarize(chainID string, labels []pdb.SecStruct) Summary {
	s := Summary{ChainID: chainID, NRes: len(labels)}
	for _, l := range labels {
		s.Count[l]++
	}
	if s.NRes == 0 {
		return s
	}
	for i, n := range s.Count {
		s.Percent[i] = 100 * float64(n) / float64(s.NRes)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("chain %q %d residues, helix %.1f%%, sheet %.1f%%, coil %.1f%%",
		s.ChainID, s.NRes, s.Percent[pdb.Helix], s.Percent[pdb.Sheet], s.Percent[pdb.Coil])
}
