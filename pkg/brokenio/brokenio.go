// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations, or to fail after a fixed number of
// bytes, so we can check that readers of coordinate files report
// errors instead of returning half a structure.
// Typical use: You get a file pointer, a reader from a compressed
// source or an http source. You write
// reader = brokenio.NewReader(reader, seed) to wrap the old reader.
// Everything then functions as before, but with artificial errors.

package brokenio

import (
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what we return when we decide to fail.
var ErrBroken = fmt.Errorf("brokenio: artificial read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// The probabilities are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand    // seeded, so tests are repeatable
	probZeroFile float32       // Probability of returning a zero length file
	probFail     float32       // Probability of a failure on each read
	failAfter    int           // Fail once this many bytes are read, if > 0
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one.
// With no probabilities set, it does nothing but count.
func NewReader(rIn io.ReadCloser, seed int64) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig: rIn,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have gone through.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the amount of data that has gone through so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through. It generates an error with a probability given by
// probFail. On the first call, we might return zero data to simulate a
// zero length file which is a rather common occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if r.rnd.Float32() < r.probZeroFile {
			r.nCalled++
			return 0, io.EOF
		}
	}
	if r.failAfter > 0 && r.nByte >= r.failAfter {
		return 0, ErrBroken
	}
	if r.failAfter > 0 && len(p) > r.failAfter-r.nByte {
		p = p[:r.failAfter-r.nByte] // stop exactly at the limit
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return n, ErrBroken
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
