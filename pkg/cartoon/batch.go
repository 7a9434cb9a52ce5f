// 17 Oct 2026

package cartoon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrSameOutput is given to an input whose output file name is already
// taken by an earlier input, like a/1crn.pdb and b/1crn.pdb.
var ErrSameOutput = errors.New("output name already used by another input")

// FileError is a file that could not be converted.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string { return e.Name + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// BatchResult are the totals over all files.
type BatchResult struct {
	NFile  int // converted
	NChunk int
	Failed []FileError
}

// outName maps an input like a/1crn.pdb.gz to outdir/1crn.json.
func outName(infile, outdir, ext string) string {
	base := filepath.Base(infile)
	base = strings.TrimSuffix(base, ".gz")
	for _, s := range []string{".pdb", ".ent", ".brk"} {
		if strings.HasSuffix(strings.ToLower(base), s) {
			base = base[:len(base)-len(s)]
			break
		}
	}
	return filepath.Join(outdir, base+ext)
}

// oneFile reads and converts infile.
func (j *job) oneFile(ctx context.Context, infile, outdir string) (int, error) {
	st, err := j.read(ctx, infile)
	if err != nil {
		return 0, err
	}
	outfile := outName(infile, outdir, "."+j.format)
	fp, err := os.Create(outfile)
	if err != nil {
		return 0, err
	}
	png := ""
	if j.flags.Preview != "" {
		png = outName(infile, outdir, ".png")
	}
	n, err := j.convert(ctx, st, infile, fp, png)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// worker converts files from the channel until it is closed, then
// sends its totals.
func (j *job) worker(ctx context.Context, names <-chan string, outdir string,
	res chan<- BatchResult, wg *sync.WaitGroup) {
	defer wg.Done()
	var br BatchResult
	for name := range names {
		if ctx.Err() != nil {
			br.Failed = append(br.Failed, FileError{name, ctx.Err()})
			continue
		}
		n, err := j.oneFile(ctx, name, outdir)
		if err != nil {
			j.logger.Println(name, err)
			br.Failed = append(br.Failed, FileError{name, err})
			continue
		}
		br.NFile++
		br.NChunk += n
	}
	res <- br
}

// unique drops inputs which would write to the same output file as an
// earlier one.
func unique(names []string, outdir, ext string) (keep []string, clash []FileError) {
	seen := make(map[string]bool)
	for _, name := range names {
		out := outName(name, outdir, ext)
		if seen[out] {
			clash = append(clash, FileError{name, fmt.Errorf("%w: %s", ErrSameOutput, out)})
			continue
		}
		seen[out] = true
		keep = append(keep, name)
	}
	return keep, clash
}

// Batch converts many files into outdir with flags.NWorker goroutines.
// A file that fails is logged and listed in the result, the others go
// on. The error is only for problems before any file is read.
func Batch(ctx context.Context, flags *CmdFlag, names []string, outdir string) (BatchResult, error) {
	if flags.Time {
		defer func(t0 time.Time) { fmt.Fprintln(os.Stderr, "cartoon batch took", time.Since(t0)) }(time.Now())
	}
	format := "." + fmtJSON
	if flags.Format != "" {
		format = "." + flags.Format
	}
	j, err := newJob(flags, format)
	if err != nil {
		return BatchResult{}, err
	}
	stop, err := startProf(flags.CpuProf)
	if err != nil {
		return BatchResult{}, err
	}
	defer stop()
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return BatchResult{}, fmt.Errorf("output directory: %w", err)
	}
	names, clash := unique(names, outdir, "."+j.format)
	for _, fe := range clash {
		j.logger.Println(fe.Error())
	}
	nWorker := max(1, min(flags.NWorker, len(names)))
	c := make(chan string, 200)
	res := make(chan BatchResult)
	go func() {
		for _, name := range names {
			c <- name
		}
		close(c)
	}()
	var wg sync.WaitGroup
	for i := 0; i < nWorker; i++ {
		wg.Add(1)
		go j.worker(ctx, c, outdir, res, &wg)
	}
	total := BatchResult{Failed: clash}
	for i := 0; i < nWorker; i++ {
		r := <-res
		total.NFile += r.NFile
		total.NChunk += r.NChunk
		total.Failed = append(total.Failed, r.Failed...)
	}
	wg.Wait()
	return total, nil
}
