package ribbon

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/andrew-torda/cartoon/pkg/pdb"
)

// RGBA with components from 0 to 1
type RGBA [4]float32

// ssColor is the palette for colouring by secondary structure.
func ssColor(ss pdb.SecStruct) RGBA {
	switch ss {
	case pdb.Helix:
		return RGBA{0.90, 0.20, 0.30, 1}
	case pdb.Sheet:
		return RGBA{1.00, 0.80, 0.10, 1}
	case pdb.Coil:
		return RGBA{0.75, 0.75, 0.75, 1}
	}
	panic("impossible secondary structure " + ss.String())
}

var chainPalette = []RGBA{
	{0.12, 0.47, 0.71, 1},
	{1.00, 0.50, 0.05, 1},
	{0.17, 0.63, 0.17, 1},
	{0.84, 0.15, 0.16, 1},
	{0.58, 0.40, 0.74, 1},
	{0.55, 0.34, 0.29, 1},
	{0.89, 0.47, 0.76, 1},
	{0.09, 0.75, 0.81, 1},
}

// chainColor cycles through the palette, so chains A, B, C... get
// neighbouring colours.
func chainColor(id string) RGBA {
	sum := 0
	for i := 0; i < len(id); i++ {
		sum += int(id[i])
	}
	return chainPalette[sum%len(chainPalette)]
}

// hsv converts hue (degrees), saturation and value to RGB. colorful
// wants the hue in [0, 360).
func hsv(h, s, v float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, s, v).Clamped()
	return RGBA{float32(c.R), float32(c.G), float32(c.B), 1}
}

// rainbow goes from blue at pos 0 to red at pos 1.
func rainbow(pos float64) RGBA {
	pos = math.Max(0, math.Min(1, pos))
	return hsv(240*(1-pos), 0.85, 1)
}

// colorFor picks the colour of a ring. pos is the position along the
// chain from 0 to 1.
func (s *Settings) colorFor(chainID string, ss pdb.SecStruct, pos float64) RGBA {
	switch s.Color {
	case BySS:
		return ssColor(ss)
	case ByChain:
		return chainColor(chainID)
	case Rainbow:
		return rainbow(pos)
	case Uniform:
		return s.UniformColor
	}
	panic("impossible colour scheme")
}

// paint gives colour c to the vertices which do not have one yet, up
// to vertex upto.
func (m *MeshChunk) paint(upto int, c RGBA) {
	for i := len(m.Colors) / 4; i < upto; i++ {
		m.Colors = append(m.Colors, c[:]...)
	}
}
