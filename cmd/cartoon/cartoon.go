// 17 Oct 2026
// Read a PDB file and write ribbon or cartoon meshes for drawing.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/cartoon/pkg/cartoon"
	. "github.com/andrew-torda/cartoon/pkg/cmmn"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	fmt.Fprintln(os.Stderr, "      ", path.Base(os.Args[0]), "-d outdir [flags] infile...")
	long := `Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.
With -d, every argument is an input file and output goes to outdir.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	flags := cartoon.DefaultCmdFlag()
	var infile, outfile string

	flag.StringVar(&flags.Mode, "mode", flags.Mode, "cartoon, ribbon or trace")
	flag.StringVar(&flags.Color, "color", flags.Color, "colour by ss, chain, rainbow or uniform")
	flag.IntVar(&flags.SamplesPerRes, "spr", 0, "samples per residue, 0 for the mode's default")
	flag.Float64Var(&flags.HelixRadius, "helixr", flags.HelixRadius, "helix tube radius")
	flag.Float64Var(&flags.SheetWidth, "sheetw", flags.SheetWidth, "strand width")
	flag.Float64Var(&flags.SheetThick, "sheett", flags.SheetThick, "strand thickness")
	flag.Float64Var(&flags.CoilRadius, "coilr", flags.CoilRadius, "coil tube radius")
	flag.Float64Var(&flags.Tension, "tension", flags.Tension, "spline tension")
	flag.StringVar(&flags.Basis, "basis", flags.Basis, "bspline, or catmullrom to pass through the atoms")
	flag.Float64Var(&flags.Blend, "blend", flags.Blend, "fraction of a run blended from the one before")
	flag.IntVar(&flags.Subdiv, "subdiv", flags.Subdiv, "chords for arc length")
	flag.IntVar(&flags.MinHelix, "minhelix", flags.MinHelix, "shortest helix kept")
	flag.IntVar(&flags.MinSheet, "minsheet", flags.MinSheet, "shortest strand kept")
	flag.IntVar(&flags.MaxGap, "maxgap", flags.MaxGap, "longest coil gap filled")
	flag.BoolVar(&flags.NoGeom, "nogeom", false, "only use HELIX and SHEET records")
	flag.BoolVar(&flags.NoArrows, "noarrows", false, "no arrow heads on strands")
	flag.BoolVar(&flags.NoCaps, "nocaps", false, "leave tube ends open")
	flag.StringVar(&flags.Format, "f", "", "output format json or obj, guessed from outfile")
	flag.StringVar(&flags.Preview, "p", "", "write a png preview to this file")
	flag.StringVar(&flags.LogFile, "l", "", "log to file, or stdout")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.BoolVar(&flags.AllModels, "allmodels", false, "read all models, not only the first")
	flag.IntVar(&flags.Fetch, "fetch", -1, "infile is a PDB code, download from site 0, 1 or 2")
	flag.StringVar(&flags.OutDir, "d", "", "batch mode, write to this directory")
	flag.IntVar(&flags.NWorker, "r", flags.NWorker, "num worker threads in batch mode")
	flag.StringVar(&flags.CpuProf, "cpuprofile", "", "write cpu profile to file")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()

	if flags.OutDir != "" {
		res, err := cartoon.Batch(context.Background(), &flags, flag.Args(), flags.OutDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitFailure)
		}
		for _, f := range res.Failed {
			fmt.Fprintln(os.Stderr, f.Error())
		}
		fmt.Fprintln(os.Stderr, "files", res.NFile, "chunks", res.NChunk, "failed", len(res.Failed))
		if len(res.Failed) > 0 {
			os.Exit(ExitFailure)
		}
		os.Exit(ExitSuccess)
	}

	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}
	if err := cartoon.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
