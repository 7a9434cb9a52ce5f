// 16 Oct 2026

// Package cartoon is the pipeline behind the cartoon command. It reads
// a structure, assigns secondary structure, makes meshes for each chain
// and writes them as JSON or Wavefront OBJ, with an optional PNG
// preview.
package cartoon

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/andrew-torda/cartoon/pkg/pdb"
	"github.com/andrew-torda/cartoon/pkg/preview"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
	"github.com/andrew-torda/cartoon/pkg/spline"
	"github.com/andrew-torda/cartoon/pkg/ssa"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Mode          string  // cartoon, ribbon or trace
	Color         string  // ss, chain, rainbow or uniform
	SamplesPerRes int     // 0 means the default for the mode
	HelixRadius   float64 // Angstrom
	SheetWidth    float64
	SheetThick    float64
	CoilRadius    float64
	Tension       float64
	Basis         string  // bspline or catmullrom
	Blend         float64 // fraction of each run morphing from the one before
	Subdiv        int     // chords for arc length
	MinHelix      int
	MinSheet      int
	MaxGap        int
	NoGeom        bool // only use HELIX and SHEET records
	NoArrows      bool
	NoCaps        bool
	Format        string // json or obj, guessed from the output name if empty
	Preview       string // png file name
	LogFile       string // "", "stdout" or a file name
	Vbsty         int    // verbosity
	AllModels     bool
	Fetch         int    // if >= 0, infile is a PDB code and this is the site
	OutDir        string // batch mode
	NWorker       int    // batch mode
	CpuProf       string
	Time          bool
}

// DefaultCmdFlag has the values the command line starts with.
func DefaultCmdFlag() CmdFlag {
	s := ribbon.DefaultSettings(ribbon.Cartoon)
	o := ssa.DefaultOptions()
	return CmdFlag{
		Mode:        s.Mode.String(),
		Color:       s.Color.String(),
		HelixRadius: s.HelixRadius,
		SheetWidth:  s.SheetWidth,
		SheetThick:  s.SheetThickness,
		CoilRadius:  s.CoilRadius,
		Tension:     s.Tension,
		Basis:       s.Basis.String(),
		Blend:       s.BlendFactor,
		Subdiv:      s.Subdivisions,
		MinHelix:    o.MinHelix,
		MinSheet:    o.MinSheet,
		MaxGap:      o.MaxGap,
		Fetch:       -1,
		NWorker:     4,
	}
}

// Output formats
const (
	fmtJSON = "json"
	fmtOBJ  = "obj"
)

// settings turns flags into what the ribbon and ssa packages want.
func (flags *CmdFlag) settings() (ribbon.Settings, ssa.Options, error) {
	mode, err := ribbon.ParseMode(flags.Mode)
	if err != nil {
		return ribbon.Settings{}, ssa.Options{}, err
	}
	s := ribbon.DefaultSettings(mode)
	if flags.SamplesPerRes > 0 {
		s.SamplesPerResidue = flags.SamplesPerRes
	}
	if s.Color, err = ribbon.ParseColorScheme(flags.Color); err != nil {
		return ribbon.Settings{}, ssa.Options{}, err
	}
	s.HelixRadius = flags.HelixRadius
	s.SheetWidth = flags.SheetWidth
	s.SheetThickness = flags.SheetThick
	s.CoilRadius = flags.CoilRadius
	s.Tension = flags.Tension
	if s.Basis, err = spline.ParseBasis(flags.Basis); err != nil {
		return ribbon.Settings{}, ssa.Options{}, fmt.Errorf("%w: %w", ribbon.ErrSettings, err)
	}
	s.BlendFactor = flags.Blend
	s.Subdivisions = flags.Subdiv
	s.SheetArrows = !flags.NoArrows
	s.Caps = !flags.NoCaps
	if err := s.Check(); err != nil {
		return ribbon.Settings{}, ssa.Options{}, err
	}

	o := ssa.DefaultOptions()
	o.MinHelix = flags.MinHelix
	o.MinSheet = flags.MinSheet
	o.MaxGap = flags.MaxGap
	o.UseGeometry = !flags.NoGeom
	if o.MinHelix < 1 || o.MinSheet < 1 || o.MaxGap < 0 {
		return ribbon.Settings{}, ssa.Options{},
			fmt.Errorf("%w: min helix %d, min sheet %d, max gap %d",
				ribbon.ErrSettings, o.MinHelix, o.MinSheet, o.MaxGap)
	}
	return s, o, nil
}

// format decides between json and obj.
func (flags *CmdFlag) format(outfile string) (string, error) {
	f := strings.ToLower(flags.Format)
	if f == "" {
		if strings.EqualFold(filepath.Ext(outfile), ".obj") {
			return fmtOBJ, nil
		}
		return fmtJSON, nil
	}
	if f != fmtJSON && f != fmtOBJ {
		return "", fmt.Errorf("output format %q, want %s or %s", flags.Format, fmtJSON, fmtOBJ)
	}
	return f, nil
}

// logWhere decide where to send output
func logWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	}
	prefix := ""
	return log.New(iowriter, prefix, log.Lshortfile), nil
}

// job is what every conversion needs, whether one file or many.
type job struct {
	flags  *CmdFlag
	s      ribbon.Settings
	o      ssa.Options
	format string
	logger *log.Logger
}

func newJob(flags *CmdFlag, outfile string) (*job, error) {
	s, o, err := flags.settings()
	if err != nil {
		return nil, err
	}
	format, err := flags.format(outfile)
	if err != nil {
		return nil, err
	}
	logger, err := logWhere(flags.LogFile)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return &job{flags: flags, s: s, o: o, format: format, logger: logger}, nil
}

// read gets a structure from a file, standard input or a web site.
func (j *job) read(ctx context.Context, infile string) (*pdb.Structure, error) {
	opts := pdb.Options{AllModels: j.flags.AllModels}
	switch {
	case j.flags.Fetch >= 0:
		return pdb.Fetch(ctx, nil, infile, j.flags.Fetch, &opts)
	case infile == "" || infile == "-":
		return pdb.ReadStream("standard input", io.NopCloser(os.Stdin), &opts)
	}
	return pdb.ReadFile(infile, &opts)
}

// convert does everything after reading for one structure and returns
// the number of chunks written. If png is not empty, a preview goes
// there.
func (j *job) convert(ctx context.Context, st *pdb.Structure, source string, w io.Writer, png string) (int, error) {
	if j.flags.Vbsty > 1 {
		for _, warn := range st.Warnings {
			j.logger.Println(source, warn)
		}
	}
	res, err := Build(ctx, st, &j.s, &j.o)
	if err != nil {
		return 0, err
	}
	for _, r := range res {
		switch {
		case r.Skipped():
			if j.flags.Vbsty > 0 {
				j.logger.Println(source, "chain", r.ChainID, "skipped:", r.Err)
			}
		case r.Err != nil:
			return 0, fmt.Errorf("%s chain %q: %w", source, r.ChainID, r.Err)
		case j.flags.Vbsty > 0:
			j.logger.Println(source, r.Summary)
		}
	}
	payload := NewPayload(source, st, res)
	switch j.format {
	case fmtOBJ:
		err = WriteOBJ(w, payload)
	default:
		err = WriteJSON(w, payload)
	}
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", source, err)
	}
	if png != "" {
		if err := preview.SavePNG(png, payload.Chunks, payload.Labels, nil); err != nil {
			return 0, err
		}
	}
	return len(payload.Chunks), nil
}

// createOut gives standard output for "" or "-", otherwise a new file.
func createOut(outfile string) (io.WriteCloser, error) {
	if outfile == "" || outfile == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return nil, fmt.Errorf("output file %v: %w", outfile, err)
	}
	return fp, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// startProf starts a cpu profile if asked for. The returned function
// stops it.
func startProf(fname string) (func(), error) {
	if fname == "" {
		return func() {}, nil
	}
	fprof, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(fprof); err != nil {
		fprof.Close()
		return nil, err
	}
	return func() { pprof.StopCPUProfile(); fprof.Close() }, nil
}

// Mymain reads infile, writes the meshes to outfile. Empty names or
// "-" mean standard input and output.
func Mymain(flags *CmdFlag, infile, outfile string) (err error) {
	if flags.Time {
		defer func(t0 time.Time) { fmt.Fprintln(os.Stderr, "cartoon took", time.Since(t0)) }(time.Now())
	}
	stop, err := startProf(flags.CpuProf)
	if err != nil {
		return err
	}
	defer stop()
	j, err := newJob(flags, outfile)
	if err != nil {
		return err
	}
	ctx := context.Background()
	st, err := j.read(ctx, infile)
	if err != nil {
		return err
	}
	source := infile
	if source == "" || source == "-" {
		source = "standard input"
	}
	fp, err := createOut(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = j.convert(ctx, st, source, fp, flags.Preview)
	return err
}
