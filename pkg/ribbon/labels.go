package ribbon

import (
	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// Label is a bit of text to be drawn at a point.
type Label struct {
	ChainID string   `json:"chainId"`
	Text    string   `json:"text"`
	Pos     cmmn.Xyz `json:"pos"`
}

// Labels puts one label at the first backbone atom of each chain.
// Chains with no backbone atoms get no label.
func Labels(st *pdb.Structure) []Label {
	var ret []Label
	for _, ch := range st.Chains {
		for _, r := range ch.Residues {
			if a := r.Backbone(); a != nil {
				id := ch.ID
				if id == "" {
					id = "-"
				}
				ret = append(ret, Label{ChainID: ch.ID, Text: "chain " + id, Pos: a.Pos})
				break
			}
		}
	}
	return ret
}
