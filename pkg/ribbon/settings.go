package ribbon

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/cartoon/pkg/spline"
)

// Mode is the style of drawing.
type Mode uint8

const (
	Cartoon Mode = iota // round helices, flat strands, thin round coil
	Ribbon              // everything flat
	Trace               // lines along the backbone
)

func (m Mode) String() string {
	switch m {
	case Cartoon:
		return "cartoon"
	case Ribbon:
		return "ribbon"
	case Trace:
		return "trace"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode reads a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "cartoon":
		return Cartoon, nil
	case "ribbon":
		return Ribbon, nil
	case "trace", "line", "lines":
		return Trace, nil
	}
	return Cartoon, fmt.Errorf("%w: mode %q", ErrSettings, s)
}

// ColorScheme picks how vertices are coloured.
type ColorScheme uint8

const (
	BySS    ColorScheme = iota // by secondary structure
	ByChain                    // one colour per chain
	Rainbow                    // blue at the N terminus to red at the C terminus
	Uniform                    // Settings.UniformColor everywhere
)

func (c ColorScheme) String() string {
	switch c {
	case BySS:
		return "ss"
	case ByChain:
		return "chain"
	case Rainbow:
		return "rainbow"
	case Uniform:
		return "uniform"
	}
	return fmt.Sprintf("ColorScheme(%d)", uint8(c))
}

// ParseColorScheme reads a colour scheme name.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch strings.ToLower(s) {
	case "ss", "secstruct":
		return BySS, nil
	case "chain":
		return ByChain, nil
	case "rainbow":
		return Rainbow, nil
	case "uniform", "single":
		return Uniform, nil
	}
	return BySS, fmt.Errorf("%w: colour scheme %q", ErrSettings, s)
}

// Settings control the shape and colour of the meshes. Lengths are in
// Angstrom.
type Settings struct {
	Mode              Mode
	SamplesPerResidue int // rings per residue along the curve
	HelixRadius       float64
	HelixSides        int
	SheetWidth        float64
	SheetThickness    float64
	CoilRadius        float64
	CoilSides         int
	CoilThickness     float64 // only for flat coil in ribbon mode
	BlendFactor       float64 // fraction of a run used to morph from the previous profile
	Tension           float64 // how far the curve reaches past the end residues
	Basis             spline.Basis
	Subdivisions      int // chords for arc length
	Color             ColorScheme
	UniformColor      RGBA
	SheetArrows       bool
	Caps              bool
}

// DefaultSettings for each mode.
func DefaultSettings(m Mode) Settings {
	s := Settings{
		Mode:              m,
		SamplesPerResidue: 20,
		HelixRadius:       1.5,
		HelixSides:        12,
		SheetWidth:        2.5,
		SheetThickness:    0.3,
		CoilRadius:        0.8,
		CoilSides:         8,
		CoilThickness:     0.2,
		BlendFactor:       0.3,
		Tension:           spline.DefaultTension,
		Basis:             spline.BSpline,
		Subdivisions:      100,
		Color:             BySS,
		UniformColor:      RGBA{0.8, 0.8, 0.8, 1},
		SheetArrows:       true,
		Caps:              true,
	}
	if m != Cartoon {
		s.SamplesPerResidue = 8
	}
	return s
}

// Check says if the settings could make a mesh. Only the first
// problem is reported.
func (s *Settings) Check() error {
	bad := func(what string, v any) error {
		return fmt.Errorf("%w: %s %v", ErrSettings, what, v)
	}
	switch {
	case s.Mode > Trace:
		return bad("mode", s.Mode)
	case s.Color > Uniform:
		return bad("colour scheme", s.Color)
	case s.SamplesPerResidue < 1:
		return bad("samples per residue", s.SamplesPerResidue)
	case s.HelixSides < 3:
		return bad("helix sides", s.HelixSides)
	case s.CoilSides < 3:
		return bad("coil sides", s.CoilSides)
	case s.HelixRadius <= 0:
		return bad("helix radius", s.HelixRadius)
	case s.CoilRadius <= 0:
		return bad("coil radius", s.CoilRadius)
	case s.SheetWidth <= 0 || s.SheetThickness <= 0:
		return bad("sheet size", [2]float64{s.SheetWidth, s.SheetThickness})
	case s.CoilThickness <= 0:
		return bad("coil thickness", s.CoilThickness)
	case s.BlendFactor < 0 || s.BlendFactor > 1:
		return bad("blend factor", s.BlendFactor)
	case s.Tension < 0:
		return bad("tension", s.Tension)
	case s.Basis > spline.CatmullRom:
		return bad("spline basis", s.Basis)
	case s.Subdivisions < 1:
		return bad("subdivisions", s.Subdivisions)
	}
	return nil
}
