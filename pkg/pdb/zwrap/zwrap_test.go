// Test Zwrap
package zwrap_test

import (
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/cartoon/pkg/pdb/zwrap"
)

// both of these are "andrewsays", but the first is compressed. Write them to a file
// and check that the file opener does the right thing.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

// writeToTmp writes a byte slice to a temporary file and returns
// a file pointer at the start of the file.
func writeToTmp(t *testing.T, data []byte) *os.File {
	tmpf, err := os.CreateTemp("", "del_me_testing")
	if err != nil {
		t.Fatal("Fail getting TempFile")
	}
	t.Cleanup(func() { os.Remove(tmpf.Name()) })
	if _, err := tmpf.Write(data); err != nil {
		t.Fatal("fail writing to tempfile")
	}
	if _, err := tmpf.Seek(0, io.SeekStart); err != nil {
		t.Fatal("Seek fail on " + tmpf.Name())
	}
	return tmpf
}

// Calling WrapMaybe should not fail since it guesses if the file
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	for _, x := range gztests {
		tmpfp := writeToTmp(t, x.data)
		tmpr, err := zwrap.WrapMaybe(tmpfp)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v: %v", x.gzipped, err)
		}
		if tmpr.Compressed() != x.gzipped {
			t.Errorf("compressed says %v, wanted %v", tmpr.Compressed(), x.gzipped)
		}
		b, err := io.ReadAll(tmpr)
		if err != nil {
			t.Fatal(err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		if err := tmpr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// TestEmpty checks a zero length file is not an error.
func TestEmpty(t *testing.T) {
	tmpr, err := zwrap.WrapMaybe(writeToTmp(t, nil))
	if err != nil {
		t.Fatal("empty file gave error", err)
	}
	if b, _ := io.ReadAll(tmpr); len(b) != 0 {
		t.Errorf("read %d bytes from empty file", len(b))
	}
	tmpr.Close()
}

func TestBrokenGzip(t *testing.T) {
	if _, err := zwrap.WrapMaybe(writeToTmp(t, []byte{0x1f, 0x8b, 0x00})); err == nil {
		t.Error("truncated gzip header should give an error")
	}
}
