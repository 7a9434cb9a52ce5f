// 16 Oct 2026

package cartoon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
	"github.com/andrew-torda/cartoon/pkg/ssa"
)

// Payload is everything a renderer needs for one structure.
type Payload struct {
	ID      string             `json:"id"`
	Source  string             `json:"source"`
	Header  Header             `json:"header"`
	Chains  []ChainInfo        `json:"chains"`
	Ligands []LigandInfo       `json:"ligands"`
	Labels  []ribbon.Label     `json:"labels"`
	Chunks  []ribbon.MeshChunk `json:"chunks"`
}

type Header struct {
	IDCode         string `json:"idCode"`
	Classification string `json:"classification"`
	DepDate        string `json:"depDate"`
}

// ChainInfo has the secondary structure of a chain, as a string of H,
// E and C, one per residue.
type ChainInfo struct {
	ID        string        `json:"id"`
	Type      pdb.ChainType `json:"type"`
	NRes      int           `json:"nRes"`
	SecStruct string        `json:"secondaryStructure"`
	Helix     float64       `json:"helixPercent"`
	Sheet     float64       `json:"sheetPercent"`
	Coil      float64       `json:"coilPercent"`
	Skipped   string        `json:"skipped,omitempty"`
}

type LigandAtom struct {
	Name    string   `json:"name"`
	Element string   `json:"element"`
	Pos     cmmn.Xyz `json:"pos"`
}

// LigandInfo is a ligand with bonds as pairs of indices into Atoms.
type LigandInfo struct {
	ChainID string       `json:"chainId"`
	ResName string       `json:"resName"`
	Seq     int          `json:"seq"`
	Atoms   []LigandAtom `json:"atoms"`
	Bonds   [][2]int     `json:"bonds"`
}

func chainInfo(r *ChainResult) ChainInfo {
	ci := ChainInfo{
		ID:        r.ChainID,
		Type:      r.Type,
		NRes:      r.Summary.NRes,
		SecStruct: ssa.LabelString(r.Labels),
		Helix:     r.Summary.Percent[pdb.Helix],
		Sheet:     r.Summary.Percent[pdb.Sheet],
		Coil:      r.Summary.Percent[pdb.Coil],
	}
	if r.Skipped() {
		ci.Skipped = r.Err.Error()
	}
	return ci
}

func ligandInfo(l *pdb.Ligand) LigandInfo {
	li := LigandInfo{
		ChainID: l.ChainID,
		ResName: l.ResName,
		Seq:     l.Seq,
		Atoms:   make([]LigandAtom, len(l.Atoms)),
		Bonds:   make([][2]int, len(l.Bonds)),
	}
	for i, a := range l.Atoms {
		li.Atoms[i] = LigandAtom{Name: a.Name, Element: a.Element, Pos: a.Pos}
	}
	for i, b := range l.Bonds {
		li.Bonds[i] = [2]int{b.I, b.J}
	}
	return li
}

// NewPayload collects the results for writing. Each payload gets a new
// random id.
func NewPayload(source string, st *pdb.Structure, res []ChainResult) *Payload {
	p := &Payload{
		ID:     uuid.NewString(),
		Source: source,
		Header: Header{
			IDCode:         st.Header.IDCode,
			Classification: st.Header.Classification,
			DepDate:        st.Header.DepDate,
		},
		Chains:  make([]ChainInfo, 0, len(res)),
		Ligands: make([]LigandInfo, 0, len(st.Ligands)),
		Labels:  ribbon.Labels(st),
		Chunks:  []ribbon.MeshChunk{},
	}
	for i := range res {
		p.Chains = append(p.Chains, chainInfo(&res[i]))
		p.Chunks = append(p.Chunks, res[i].Chunks...)
	}
	for _, l := range st.Ligands {
		p.Ligands = append(p.Ligands, ligandInfo(l))
	}
	return p
}

// WriteJSON writes the payload as one JSON object.
func WriteJSON(w io.Writer, p *Payload) error {
	bw := bufio.NewWriter(w)
	if err := json.NewEncoder(bw).Encode(p); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteOBJ writes the chunks as Wavefront OBJ, one object per chunk.
// Vertex colours go after the position, which most readers accept.
// Indices in the file start from 1 and run over the whole file.
func WriteOBJ(w io.Writer, p *Payload) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s %s\n", p.Source, p.ID)
	base := 1
	for n := range p.Chunks {
		m := &p.Chunks[n]
		fmt.Fprintf(bw, "o %s_%s_%d_%d\n", objName(m.ChainID), m.SS, m.ResidueRange[0], n)
		nv := m.NVertex()
		for i := 0; i < nv; i++ {
			v := m.Positions[3*i : 3*i+3]
			fmt.Fprintf(bw, "v %.4f %.4f %.4f", v[0], v[1], v[2])
			if len(m.Colors) >= 4*(i+1) {
				c := m.Colors[4*i : 4*i+3]
				fmt.Fprintf(bw, " %.3f %.3f %.3f", c[0], c[1], c[2])
			}
			bw.WriteByte('\n')
		}
		for i := 0; i < len(m.Normals)/3; i++ {
			v := m.Normals[3*i : 3*i+3]
			fmt.Fprintf(bw, "vn %.4f %.4f %.4f\n", v[0], v[1], v[2])
		}
		switch m.Primitive {
		case ribbon.Lines:
			for i := 0; i+1 < len(m.Indices); i += 2 {
				fmt.Fprintf(bw, "l %d %d\n", base+int(m.Indices[i]), base+int(m.Indices[i+1]))
			}
		case ribbon.Triangles:
			for i := 0; i+2 < len(m.Indices); i += 3 {
				a, b, c := base+int(m.Indices[i]), base+int(m.Indices[i+1]), base+int(m.Indices[i+2])
				fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			}
		}
		base += nv
	}
	return bw.Flush()
}

// objName keeps a blank chain id from breaking the object name.
func objName(id string) string {
	if id == "" || id == " " {
		return "chain"
	}
	return "chain" + id
}
