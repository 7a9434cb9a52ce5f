package pdb

import (
	"fmt"
	"strings"
)

// SecStruct is the secondary structure class of a residue.
type SecStruct uint8

const (
	Coil SecStruct = iota
	Helix
	Sheet
	NSecStruct // number of classes, for sizing arrays
)

// SSSource says where a residue's label came from.
type SSSource uint8

const (
	SrcNone SSSource = iota
	SrcHeader
	SrcGeometry
)

var ssNames = [NSecStruct]string{"coil", "helix", "sheet"}

func (s SecStruct) String() string {
	switch s {
	case Coil, Helix, Sheet:
		return ssNames[s]
	}
	return fmt.Sprintf("SecStruct(%d)", uint8(s))
}

// Code is the one letter DSSP-like code, H, E or C.
func (s SecStruct) Code() byte {
	switch s {
	case Coil:
		return 'C'
	case Helix:
		return 'H'
	case Sheet:
		return 'E'
	}
	panic(fmt.Sprintf("impossible secondary structure %d", uint8(s)))
}

// ParseSecStruct accepts the names we see in files and on command lines.
func ParseSecStruct(s string) (SecStruct, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "helix", "alpha", "g", "3-10", "i", "pi":
		return Helix, nil
	case "e", "sheet", "strand", "beta", "b":
		return Sheet, nil
	case "c", "coil", "loop", "turn", "t", "bend", "s", "-", "":
		return Coil, nil
	}
	return Coil, fmt.Errorf("unknown secondary structure %q", s)
}

func (s SecStruct) MarshalText() ([]byte, error) {
	if s >= NSecStruct {
		return nil, fmt.Errorf("impossible secondary structure %d", uint8(s))
	}
	return []byte(ssNames[s]), nil
}

func (s *SecStruct) UnmarshalText(b []byte) error {
	v, err := ParseSecStruct(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String for the source of a label
func (s SSSource) String() string {
	switch s {
	case SrcNone:
		return "none"
	case SrcHeader:
		return "header"
	case SrcGeometry:
		return "geometry"
	}
	return fmt.Sprintf("SSSource(%d)", uint8(s))
}
