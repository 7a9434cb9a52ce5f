// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Unlike the first version, we look at the first two bytes rather than
// trying to start a decompressor and seeking back, so it works on
// standard input and other streams that cannot seek.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzipMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	buf  *bufio.Reader // sits on fp, so we can peek
	zrdr *gzip.Reader  // nil if the stream was not compressed
}

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.buf.Read(p)
}

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// IsGzip says if some leading bytes look like a gzip stream.
func IsGzip(head []byte) bool { return bytes.HasPrefix(head, gzipMagic) }

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the reader if necessary.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	fc := &FpGzip{fp: fp, buf: bufio.NewReader(fp)}
	head, err := fc.buf.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !IsGzip(head) {
		return fc, nil
	}
	if fc.zrdr, err = gzip.NewReader(fc.buf); err != nil {
		return nil, err
	}
	return fc, nil
}
