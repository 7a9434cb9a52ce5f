// 14 Oct 2026

package pdb

import (
	"context"
	"fmt"
	"net/http"
)

// Site is where an archive keeps its PDB format files. The file for
// code 1crn is Base + "1crn" + Suffix.
type Site struct {
	Base   string
	Suffix string
}

// Sites are the three archives. RCSB and PDBj send gzipped files, but
// we look at the bytes rather than trusting the suffix.
var Sites = []Site{
	{"https://files.rcsb.org/download/", ".pdb.gz"},
	{"https://www.ebi.ac.uk/pdbe/entry-files/download/pdb", ".ent"},
	{"https://pdbj.org/rest/newweb/fetch/file?cat=pdb&type=pdb&id=", ""},
}

const ErrAcqCode = Error("acquisition code should be four characters")

// siteURL builds the address. A site number past the end wraps round,
// so callers can cycle through the sites.
func siteURL(acqCode string, siteNum int) (string, error) {
	if len(acqCode) != 4 {
		return "", fmt.Errorf("%w, not %q", ErrAcqCode, acqCode)
	}
	if siteNum < 0 {
		siteNum = -siteNum
	}
	s := Sites[siteNum%len(Sites)]
	return s.Base + acqCode + s.Suffix, nil
}

// Fetch downloads a structure by its four character code and parses
// it. If client is nil, we use http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, acqCode string, siteNum int, opts *Options) (*Structure, error) {
	url, err := siteURL(acqCode, siteNum)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wanted %s: %w", acqCode, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wanted %s using %s, got %s", acqCode, url, resp.Status)
	}
	return readStream(acqCode, resp.Body, opts)
}
