// 16 Oct 2026

// Package preview draws meshes into a PNG file, so one can look at a
// result without a 3D viewer. Triangles are flat shaded and drawn from
// the back to the front. There is no depth buffer, so where triangles
// cut through each other, the picture is not quite right.
package preview

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
)

// Options for drawing
type Options struct {
	Width, Height int
	Margin        float64 // pixels
	Background    string  // hex, like "#ffffff"
	FontSize      float64 // points, zero for no labels
	LineWidth     float64 // for traces
	Ambient       float64 // light on faces turned away from the viewer
}

// DefaultOptions gives a small white picture with labels.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Margin:     30,
		Background: "#ffffff",
		FontSize:   14,
		LineWidth:  2,
		Ambient:    0.3,
	}
}

// tri is one triangle on the screen.
type tri struct {
	x, y  [3]float64
	depth float64
	col   ribbon.RGBA
}

// seg is a line segment on the screen.
type seg struct {
	x, y  [2]float64
	depth float64
	col   ribbon.RGBA
}

// screen maps projected coordinates to pixels.
type screen struct {
	v             view
	scale, cx, cy float64
	xoff, yoff    float64
}

func (s *screen) xy(p cmmn.Xyz) (float64, float64, float64) {
	x, y, z := s.v.project(p)
	return s.xoff + s.scale*(x-s.cx), s.yoff - s.scale*(y-s.cy), z
}

// fit chooses the scale so everything fits inside the margins.
func fit(v view, chunks []ribbon.MeshChunk, opts *Options) screen {
	lo := [2]float64{math.Inf(1), math.Inf(1)}
	hi := [2]float64{math.Inf(-1), math.Inf(-1)}
	for i := range chunks {
		for k := 0; k < chunks[i].NVertex(); k++ {
			x, y, _ := v.project(chunks[i].Vertex(k))
			lo[0], hi[0] = math.Min(lo[0], x), math.Max(hi[0], x)
			lo[1], hi[1] = math.Min(lo[1], y), math.Max(hi[1], y)
		}
	}
	s := screen{v: v, scale: 1, xoff: float64(opts.Width) / 2, yoff: float64(opts.Height) / 2}
	if math.IsInf(lo[0], 1) {
		return s
	}
	s.cx, s.cy = (lo[0]+hi[0])/2, (lo[1]+hi[1])/2
	w := float64(opts.Width) - 2*opts.Margin
	h := float64(opts.Height) - 2*opts.Margin
	rx, ry := hi[0]-lo[0], hi[1]-lo[1]
	switch {
	case rx > 0 && ry > 0:
		s.scale = math.Min(w/rx, h/ry)
	case rx > 0:
		s.scale = w / rx
	case ry > 0:
		s.scale = h / ry
	}
	return s
}

func avgColor(m *ribbon.MeshChunk, idx ...uint32) ribbon.RGBA {
	var c ribbon.RGBA
	if len(m.Colors) < 4*m.NVertex() {
		return ribbon.RGBA{0.5, 0.5, 0.5, 1}
	}
	for _, i := range idx {
		for j := range c {
			c[j] += m.Colors[4*int(i)+j] / float32(len(idx))
		}
	}
	return c
}

// collect projects every triangle and segment.
func collect(s *screen, chunks []ribbon.MeshChunk, ambient float64) ([]tri, []seg) {
	var tris []tri
	var segs []seg
	for ic := range chunks {
		m := &chunks[ic]
		switch m.Primitive {
		case ribbon.Triangles:
			for i := 0; i+2 < len(m.Indices); i += 3 {
				var t tri
				idx := m.Indices[i : i+3]
				var p [3]cmmn.Xyz
				for j, k := range idx {
					p[j] = m.Vertex(int(k))
					var z float64
					t.x[j], t.y[j], z = s.xy(p[j])
					t.depth += z / 3
				}
				face := s.v.rotate(p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Norm())
				light := ambient + (1-ambient)*math.Abs(face.Z)
				t.col = avgColor(m, idx...)
				for j := 0; j < 3; j++ {
					t.col[j] *= float32(light)
				}
				tris = append(tris, t)
			}
		case ribbon.Lines:
			for i := 0; i+1 < len(m.Indices); i += 2 {
				var sg seg
				for j, k := range m.Indices[i : i+2] {
					var z float64
					sg.x[j], sg.y[j], z = s.xy(m.Vertex(int(k)))
					sg.depth += z / 2
				}
				sg.col = avgColor(m, m.Indices[i:i+2]...)
				segs = append(segs, sg)
			}
		}
	}
	return tris, segs
}

// Draw paints chunks and labels into a new context.
func Draw(chunks []ribbon.MeshChunk, labels []ribbon.Label, opts *Options) (*gg.Context, error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("preview size %d x %d", opts.Width, opts.Height)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetHexColor(opts.Background)
	dc.Clear()

	s := fit(newView(chunks), chunks, opts)
	tris, segs := collect(&s, chunks, opts.Ambient)
	sort.SliceStable(tris, func(i, j int) bool { return tris[i].depth < tris[j].depth })
	for _, t := range tris {
		dc.MoveTo(t.x[0], t.y[0])
		dc.LineTo(t.x[1], t.y[1])
		dc.LineTo(t.x[2], t.y[2])
		dc.ClosePath()
		dc.SetRGBA(float64(t.col[0]), float64(t.col[1]), float64(t.col[2]), float64(t.col[3]))
		dc.Fill()
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].depth < segs[j].depth })
	dc.SetLineWidth(opts.LineWidth)
	for _, sg := range segs {
		dc.SetRGBA(float64(sg.col[0]), float64(sg.col[1]), float64(sg.col[2]), float64(sg.col[3]))
		dc.DrawLine(sg.x[0], sg.y[0], sg.x[1], sg.y[1])
		dc.Stroke()
	}

	if opts.FontSize <= 0 || len(labels) == 0 {
		return dc, nil
	}
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("preview font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: opts.FontSize}))
	dc.SetRGB(0, 0, 0)
	for _, l := range labels {
		x, y, _ := s.xy(l.Pos)
		dc.DrawStringAnchored(l.Text, x, y-opts.FontSize, 0.5, 0.5)
	}
	return dc, nil
}

// WritePNG draws and writes a PNG to w.
func WritePNG(w io.Writer, chunks []ribbon.MeshChunk, labels []ribbon.Label, opts *Options) error {
	dc, err := Draw(chunks, labels, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG draws into the file fname.
func SavePNG(fname string, chunks []ribbon.MeshChunk, labels []ribbon.Label, opts *Options) error {
	dc, err := Draw(chunks, labels, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(fname); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	return nil
}
