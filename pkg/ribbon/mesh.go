package ribbon

import (
	"fmt"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
	"github.com/andrew-torda/cartoon/pkg/spline"
)

// Primitive says how Indices are to be read.
type Primitive uint8

const (
	Triangles Primitive = iota // three indices per triangle
	Lines                      // two indices per segment
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Primitive(%d)", uint8(p))
}

func (p Primitive) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MeshChunk is the geometry for one run of secondary structure. The
// arrays are flat, three floats per position and normal, four per
// colour.
type MeshChunk struct {
	ChainID      string        `json:"chainId"`
	SS           pdb.SecStruct `json:"secondaryStructure"`
	ResidueRange [2]int        `json:"residueRange"`
	Profile      ProfileKind   `json:"profile"`
	Primitive    Primitive     `json:"primitive"`
	Positions    []float32     `json:"positions"`
	Normals      []float32     `json:"normals"`
	Colors       []float32     `json:"colors"`
	Indices      []uint32      `json:"indices"`
}

// NVertex is the number of vertices.
func (m *MeshChunk) NVertex() int { return len(m.Positions) / 3 }

// NPrim is the number of triangles or line segments.
func (m *MeshChunk) NPrim() int {
	if m.Primitive == Lines {
		return len(m.Indices) / 2
	}
	return len(m.Indices) / 3
}

func (m *MeshChunk) addVertex(p, n cmmn.Xyz) {
	m.Positions = append(m.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
}

// Vertex returns position i.
func (m *MeshChunk) Vertex(i int) cmmn.Xyz {
	p := m.Positions[3*i : 3*i+3]
	return cmmn.Xyz{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

// Normal returns normal i.
func (m *MeshChunk) Normal(i int) cmmn.Xyz {
	p := m.Normals[3*i : 3*i+3]
	return cmmn.Xyz{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

// Extrude sweeps a profile along frames, one ring of vertices per
// frame. A vertex (x, y) goes to Pos + x N + y B. Neighbouring rings are
// joined by two triangles per profile edge. With m rings of a closed
// n-gon, there are m n vertices and (m-1) n 6 indices.
func Extrude(rings []Profile, frames []spline.Frame) (*MeshChunk, error) {
	if len(rings) != len(frames) {
		return nil, fmt.Errorf("%w: %d rings, %d frames", ErrRings, len(rings), len(frames))
	}
	m := &MeshChunk{Primitive: Triangles}
	if len(rings) == 0 {
		return m, nil
	}
	n, closed := rings[0].Len(), rings[0].Closed
	m.Profile = rings[0].Kind
	for j, r := range rings {
		if r.Len() != n {
			return nil, fmt.Errorf("%w: ring %d has %d vertices, not %d", ErrRings, j, r.Len(), n)
		}
	}
	m.Positions = make([]float32, 0, 3*n*len(rings))
	m.Normals = make([]float32, 0, 3*n*len(rings))
	for j, r := range rings {
		f := frames[j]
		for i := 0; i < n; i++ {
			x, y, nx, ny := r.Vertex(i)
			p := f.Pos.Add(f.N.Scale(x)).Add(f.B.Scale(y))
			m.addVertex(p, f.N.Scale(nx).Add(f.B.Scale(ny)))
		}
	}

	nEdge := n - 1
	if closed {
		nEdge = n
	}
	if nEdge < 0 {
		nEdge = 0
	}
	m.Indices = make([]uint32, 0, 6*nEdge*(len(rings)-1))
	for j := 0; j+1 < len(rings); j++ {
		for i := 0; i < nEdge; i++ {
			a := uint32(j*n + i)
			b := uint32(j*n + (i+1)%n)
			c, d := a+uint32(n), b+uint32(n)
			m.Indices = append(m.Indices, a, b, c, b, d, c)
		}
	}
	return m, nil
}

// addCap closes the end of a tube with a fan of triangles around the
// centre of the ring. The ring vertices are repeated with the cap
// normal. If start is true, the cap faces back along the tangent.
func (m *MeshChunk) addCap(p Profile, f spline.Frame, start bool) {
	n := p.Len()
	if n < 3 {
		return
	}
	normal := f.T
	if start {
		normal = f.T.Neg()
	}
	centre := uint32(m.NVertex())
	m.addVertex(f.Pos, normal)
	for i := 0; i < n; i++ {
		x, y, _, _ := p.Vertex(i)
		m.addVertex(f.Pos.Add(f.N.Scale(x)).Add(f.B.Scale(y)), normal)
	}
	nTri := n - 1
	if p.Closed {
		nTri = n
	}
	for i := 0; i < nTri; i++ {
		a := centre + 1 + uint32(i)
		b := centre + 1 + uint32((i+1)%n)
		if start {
			a, b = b, a
		}
		m.Indices = append(m.Indices, centre, a, b)
	}
}

// polyline joins the frame positions with line segments.
func polyline(frames []spline.Frame) *MeshChunk {
	m := &MeshChunk{Primitive: Lines, Profile: Polyline}
	for j, f := range frames {
		m.addVertex(f.Pos, f.N)
		if j > 0 {
			m.Indices = append(m.Indices, uint32(j-1), uint32(j))
		}
	}
	return m
}
