package ribbon

import (
	"fmt"
	"math"

	"github.com/andrew-torda/matrix"
)

// ProfileKind is the shape of a cross section.
type ProfileKind uint8

const (
	Circle ProfileKind = iota
	Rect
	Polyline // no cross section, used for traces
)

func (k ProfileKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rect:
		return "rect"
	case Polyline:
		return "polyline"
	}
	return fmt.Sprintf("ProfileKind(%d)", uint8(k))
}

func (k ProfileKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Columns of the vertex table.
const (
	colX = iota
	colY
	colNX
	colNY
	nCol
)

// Profile is a 2D cross section. Vertices go anticlockwise. x is along
// the frame normal, y along the binormal. Each vertex carries its
// outward normal.
type Profile struct {
	Kind   ProfileKind
	Closed bool // last vertex joins the first
	v      *matrix.FMatrix2d
}

func newProfile(kind ProfileKind, n int) Profile {
	return Profile{Kind: kind, Closed: true, v: matrix.NewFMatrix2d(n, nCol)}
}

// NewCircle is a regular polygon with sides vertices.
func NewCircle(sides int, r float64) Profile {
	p := newProfile(Circle, sides)
	for i, row := range p.v.Mat {
		a := 2 * math.Pi * float64(i) / float64(sides)
		c, s := math.Cos(a), math.Sin(a)
		row[colX], row[colY] = float32(r*c), float32(r*s)
		row[colNX], row[colNY] = float32(c), float32(s)
	}
	return p
}

// NewRect is a width by thickness rectangle. Each corner appears twice,
// once with the normal of each face it touches, so the edges stay
// sharp.
func NewRect(width, thickness float64) Profile {
	w, h := float32(width/2), float32(thickness/2)
	p := newProfile(Rect, 8)
	vals := [8][nCol]float32{
		{w, -h, 1, 0}, {w, h, 1, 0},     // right
		{w, h, 0, 1}, {-w, h, 0, 1},     // top
		{-w, h, -1, 0}, {-w, -h, -1, 0}, // left
		{-w, -h, 0, -1}, {w, -h, 0, -1}, // bottom
	}
	for i, row := range p.v.Mat {
		copy(row, vals[i][:])
	}
	return p
}

// Len is the number of vertices.
func (p Profile) Len() int {
	if p.v == nil {
		return 0
	}
	n, _ := p.v.Size()
	return n
}

// Vertex returns position and normal of vertex i.
func (p Profile) Vertex(i int) (x, y, nx, ny float64) {
	row := p.v.Mat[i]
	return float64(row[colX]), float64(row[colY]), float64(row[colNX]), float64(row[colNY])
}

// ScaleX stretches the profile across, for arrow heads. Normals are
// not changed.
func (p Profile) ScaleX(f float64) Profile {
	q := newProfile(p.Kind, p.Len())
	q.Closed = p.Closed
	for i, row := range p.v.Mat {
		copy(q.v.Mat[i], row)
		q.v.Mat[i][colX] *= float32(f)
	}
	return q
}

// Blend moves from prev (w = 0) to cur (w = 1). The result has as many
// vertices as cur and vertex i of cur is paired with vertex i modulo
// prev.Len() of prev. When the shapes have different numbers of
// vertices, the pairing does not follow the outline, so a circle turning
// into a rectangle looks a bit twisted.
func Blend(prev, cur Profile, w float64) Profile {
	n, np := cur.Len(), prev.Len()
	q := newProfile(cur.Kind, n)
	q.Closed = cur.Closed
	if np == 0 {
		np, prev = n, cur
	}
	wf := float32(w)
	for i, row := range q.v.Mat {
		a, b := prev.v.Mat[i%np], cur.v.Mat[i]
		for j := range row {
			row[j] = a[j] + wf*(b[j]-a[j])
		}
		nx, ny := row[colNX], row[colNY]
		if l := float32(math.Hypot(float64(nx), float64(ny))); l > 1e-6 {
			row[colNX], row[colNY] = nx/l, ny/l
		} else {
			row[colNX], row[colNY] = b[colNX], b[colNY]
		}
	}
	return q
}
