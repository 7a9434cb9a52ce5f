package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/cartoon/pkg/pdb/zwrap"
)

// comparefirst says if a line starts with a word.
func comparefirst(s, w string) bool { return strings.HasPrefix(s, w) }

// lookInText guesses from the first lines if we have old PDB format or
// mmcif. We only read the old format, but it is kinder to say why an
// mmcif file gives no atoms.
func lookInText(r io.Reader) error {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "HELIX", "SHEET"}
	mmcifWords := []string{"data_", "loop_", "_entry.id"}
	const maxTestLines = 5000
	scnnr := bufio.NewScanner(r)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return ErrMmcif
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return nil
			}
		}
	}
	return nil // Let the parser say there were no atoms
}

// isCifName looks at the name, so we do not have to open the file.
// We cannot use filepath.Ext, since it will return .gz for a.cif.gz.
func isCifName(fname string) bool {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return false
	}
	s = strings.ToLower(s[i+1:])
	return strings.Contains(s, "cif")
}

// ReadFile reads a PDB file. Plain files are memory mapped and parsed
// in place. Compressed files are streamed through a decompressor.
func ReadFile(fname string, opts *Options) (*Structure, error) {
	if isCifName(fname) {
		return nil, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var head [2]byte
	n, err := io.ReadFull(fp, head[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	if n == 0 { // mmap fails on empty files, and there is nothing to map
		return ParseOpts(bytes.NewReader(nil), opts)
	}
	if zwrap.IsGzip(head[:n]) {
		if _, err := fp.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return readStream(fname, fp, opts)
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	if err := lookInText(bytes.NewReader(mm)); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	st, err := ParseOpts(bytes.NewReader(mm), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return st, nil
}

// ReadStream reads from something like standard input, which may or
// may not be compressed. r is closed when we are finished.
func ReadStream(name string, r io.ReadCloser, opts *Options) (*Structure, error) {
	return readStream(name, r, opts)
}

// readStream cannot sniff the format without reading, so it buffers
// the text.
func readStream(name string, r io.ReadCloser, opts *Options) (*Structure, error) {
	zr, err := zwrap.WrapMaybe(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer zr.Close()
	b, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := lookInText(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ParseOpts(bytes.NewReader(b), opts)
}
