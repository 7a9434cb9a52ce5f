package preview

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
)

// view turns world coordinates into screen x, y and depth. The axes
// are the principal axes of the vertices, so the molecule is seen from
// the side where it looks biggest.
type view struct {
	centre  cmmn.Xyz
	x, y, z cmmn.Xyz
}

var identity = view{x: cmmn.Xyz{X: 1}, y: cmmn.Xyz{Y: 1}, z: cmmn.Xyz{Z: 1}}

// newView finds the principal axes of all the vertices in chunks.
func newView(chunks []ribbon.MeshChunk) view {
	var data []float64
	for i := range chunks {
		for _, f := range chunks[i].Positions {
			data = append(data, float64(f))
		}
	}
	n := len(data) / 3
	if n == 0 {
		return identity
	}
	x := mat.NewDense(n, 3, data)
	v := identity
	col := make([]float64, n)
	v.centre = cmmn.Xyz{
		X: stat.Mean(mat.Col(col, 0, x), nil),
		Y: stat.Mean(mat.Col(col, 1, x), nil),
		Z: stat.Mean(mat.Col(col, 2, x), nil),
	}
	if n < 3 {
		return v
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)
	var eig mat.EigenSym
	if ok := eig.Factorize(&cov, true); !ok {
		return v
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	axis := func(j int) cmmn.Xyz { // eigenvalues come in ascending order
		return cmmn.Xyz{X: vecs.At(0, j), Y: vecs.At(1, j), Z: vecs.At(2, j)}.Norm()
	}
	v.x, v.y = axis(2), axis(1)
	v.z = v.x.Cross(v.y).Norm()
	if v.z.Len2() == 0 {
		return identity
	}
	return v
}

// project gives screen x, y (before scaling) and depth. Bigger depth is
// nearer the viewer.
func (v *view) project(p cmmn.Xyz) (float64, float64, float64) {
	d := p.Sub(v.centre)
	return d.Dot(v.x), d.Dot(v.y), d.Dot(v.z)
}

// rotate is project for directions.
func (v *view) rotate(n cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{X: n.Dot(v.x), Y: n.Dot(v.y), Z: n.Dot(v.z)}
}
