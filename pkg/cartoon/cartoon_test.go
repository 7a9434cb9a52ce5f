package cartoon_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	. "github.com/andrew-torda/cartoon/pkg/cartoon"
	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/pdb"
	"github.com/andrew-torda/cartoon/pkg/pdb/pdbtest"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
	"github.com/andrew-torda/cartoon/pkg/ssa"
)

// twoChains is a twelve residue helix in chain A, a single residue in
// chain B and a two atom ligand.
func twoChains() string {
	lig := []cmmn.Xyz{{X: 20, Y: 20, Z: 20}, {X: 21.3, Y: 20, Z: 20}}
	return "HEADER    TEST PROTEIN                            16-OCT-26   9TST              \n" +
		pdbtest.HelixRecord(1, "A", 1, 12) +
		pdbtest.CaChain("A", 1, "ALA", pdbtest.IdealHelix(12)) +
		pdbtest.CaChain("B", 1, "GLY", []cmmn.Xyz{{X: 10}}) +
		pdbtest.HetGroup("A", 200, "LIG", []string{"C", "O"}, lig)
}

func parse(t *testing.T) *pdb.Structure {
	t.Helper()
	st, err := pdb.ParseBytes([]byte(twoChains()))
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func build(t *testing.T, st *pdb.Structure) []ChainResult {
	t.Helper()
	s := ribbon.DefaultSettings(ribbon.Cartoon)
	s.SamplesPerResidue = 4
	o := ssa.DefaultOptions()
	res, err := Build(context.Background(), st, &s, &o)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestBuild(t *testing.T) {
	res := build(t, parse(t))
	if len(res) != 2 {
		t.Fatalf("got %d chains, want 2", len(res))
	}
	a, b := res[0], res[1]
	if a.ChainID != "A" || b.ChainID != "B" {
		t.Errorf("chain order %q %q", a.ChainID, b.ChainID)
	}
	if a.Err != nil || len(a.Chunks) != 1 || a.Chunks[0].SS != pdb.Helix {
		t.Errorf("chain A: err %v, %d chunks", a.Err, len(a.Chunks))
	}
	if got := ssa.LabelString(a.Labels); got != strings.Repeat("H", 12) {
		t.Errorf("chain A labels %s", got)
	}
	if a.Summary.NRes != 12 || a.Summary.Count[pdb.Helix] != 12 {
		t.Errorf("chain A summary %v", a.Summary)
	}
	if !b.Skipped() || len(b.Chunks) != 0 {
		t.Errorf("chain B should be skipped, err %v", b.Err)
	}
	if a.Skipped() {
		t.Error("chain A should not be skipped")
	}
}

func TestBuildCancel(t *testing.T) {
	st := parse(t)
	s := ribbon.DefaultSettings(ribbon.Cartoon)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, st, &s, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	s.HelixSides = 2
	if _, err := Build(context.Background(), st, &s, nil); !errors.Is(err, ribbon.ErrSettings) {
		t.Errorf("bad settings got %v", err)
	}
}

// jchunk is the part of a chunk we look at after decoding.
type jchunk struct {
	ChainID   string `json:"chainId"`
	SS        string `json:"secondaryStructure"`
	Range     [2]int `json:"residueRange"`
	Primitive string `json:"primitive"`
	Positions []float32
	Indices   []uint32
}

type jpayload struct {
	ID     string
	Source string
	Header struct{ IDCode string }
	Chains []struct {
		ID        string
		Type      string
		SecStruct string `json:"secondaryStructure"`
		Helix     float64 `json:"helixPercent"`
		Skipped   string
	}
	Ligands []struct {
		ResName string
		Atoms   []struct{ Element string }
		Bonds   [][2]int
	}
	Labels []struct{ Text string }
	Chunks []jchunk
}

func TestJSON(t *testing.T) {
	st := parse(t)
	p := NewPayload("twochains.pdb", st, build(t, st))
	var buf bytes.Buffer
	if err := WriteJSON(&buf, p); err != nil {
		t.Fatal(err)
	}
	var got jpayload
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Errorf("id %q: %v", got.ID, err)
	}
	if got.Source != "twochains.pdb" || got.Header.IDCode != "9TST" {
		t.Errorf("source %q id code %q", got.Source, got.Header.IDCode)
	}
	if len(got.Chains) != 2 {
		t.Fatalf("got %d chains", len(got.Chains))
	}
	a, b := got.Chains[0], got.Chains[1]
	if a.Type != "protein" || a.Helix != 100 || a.SecStruct != strings.Repeat("H", 12) || a.Skipped != "" {
		t.Errorf("chain A %+v", a)
	}
	if b.Skipped == "" {
		t.Error("chain B should say why it was skipped")
	}
	if len(got.Ligands) != 1 || got.Ligands[0].ResName != "LIG" {
		t.Fatalf("ligands %+v", got.Ligands)
	}
	if diff := cmp.Diff([][2]int{{0, 1}}, got.Ligands[0].Bonds); diff != "" {
		t.Errorf("bonds (-want +got):\n%s", diff)
	}
	if len(got.Labels) != 2 || got.Labels[0].Text != "chain A" {
		t.Errorf("labels %+v", got.Labels)
	}
	if len(got.Chunks) != 1 {
		t.Fatalf("got %d chunks", len(got.Chunks))
	}
	c := got.Chunks[0]
	want := jchunk{ChainID: "A", SS: "helix", Range: [2]int{1, 12}, Primitive: "triangles"}
	if diff := cmp.Diff(want, c, cmp.FilterPath(func(p cmp.Path) bool {
		n := p.Last().String()
		return n == ".Positions" || n == ".Indices"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("chunk (-want +got):\n%s", diff)
	}
	if len(c.Positions) != 3*p.Chunks[0].NVertex() || len(c.Indices) != len(p.Chunks[0].Indices) {
		t.Errorf("chunk arrays changed size in JSON")
	}
}

// countOBJ counts the lines of each kind and finds the biggest index.
func countOBJ(t *testing.T, text string) (map[string]int, int) {
	n := make(map[string]int)
	maxIdx := 0
	scnr := bufio.NewScanner(strings.NewReader(text))
	for scnr.Scan() {
		f := strings.Fields(scnr.Text())
		if len(f) == 0 {
			continue
		}
		n[f[0]]++
		if f[0] != "f" && f[0] != "l" {
			continue
		}
		for _, s := range f[1:] {
			var i int
			for _, c := range s {
				if c < '0' || c > '9' {
					break
				}
				i = i*10 + int(c-'0')
			}
			if i < 1 {
				t.Fatalf("bad index in %q", scnr.Text())
			}
			maxIdx = max(maxIdx, i)
		}
	}
	return n, maxIdx
}

func TestOBJ(t *testing.T) {
	st := parse(t)
	p := NewPayload("x", st, build(t, st))
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, p); err != nil {
		t.Fatal(err)
	}
	n, maxIdx := countOBJ(t, buf.String())
	m := p.Chunks[0]
	if n["v"] != m.NVertex() || n["vn"] != m.NVertex() || n["f"] != m.NPrim() || n["o"] != 1 {
		t.Errorf("got %v for %d vertices %d triangles", n, m.NVertex(), m.NPrim())
	}
	if maxIdx != m.NVertex() {
		t.Errorf("largest index %d, %d vertices", maxIdx, m.NVertex())
	}

	s := ribbon.DefaultSettings(ribbon.Trace)
	res, err := Build(context.Background(), st, &s, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := WriteOBJ(&buf, NewPayload("x", st, res)); err != nil {
		t.Fatal(err)
	}
	n, _ = countOBJ(t, buf.String())
	if n["f"] != 0 || n["l"] != res[0].Chunks[0].NPrim() {
		t.Errorf("trace got %v", n)
	}
}

func TestSettings(t *testing.T) {
	var settingstests = []struct {
		change func(*CmdFlag)
		ok     bool
	}{
		{func(*CmdFlag) {}, true},
		{func(f *CmdFlag) { f.Mode = "ribbon"; f.Color = "rainbow" }, true},
		{func(f *CmdFlag) { f.Mode = "sausage" }, false},
		{func(f *CmdFlag) { f.Color = "plaid" }, false},
		{func(f *CmdFlag) { f.HelixRadius = 0 }, false},
		{func(f *CmdFlag) { f.Blend = 2 }, false},
		{func(f *CmdFlag) { f.MinHelix = 0 }, false},
		{func(f *CmdFlag) { f.MaxGap = -1 }, false},
		{func(f *CmdFlag) { f.Basis = "catmullrom" }, true},
		{func(f *CmdFlag) { f.Basis = "bezier" }, false},
	}
	for i, tt := range settingstests {
		f := DefaultCmdFlag()
		tt.change(&f)
		if err := f.Settings(); (err == nil) != tt.ok {
			t.Errorf("case %d: got %v", i, err)
		}
	}
}

func TestLogWhere(t *testing.T) {
	if _, err := LogWhere(""); err != nil {
		t.Error(err)
	}
	fname := filepath.Join(t.TempDir(), "log")
	logger, err := LogWhere(fname)
	if err != nil {
		t.Fatal(err)
	}
	logger.Println("hello")
	b, err := os.ReadFile(fname)
	if err != nil || !strings.Contains(string(b), "hello") {
		t.Errorf("log file has %q, %v", b, err)
	}
	if _, err := LogWhere(filepath.Join(t.TempDir(), "no", "such", "dir")); err == nil {
		t.Error("unwritable log file should fail")
	}
}

func TestMymain(t *testing.T) {
	infile, err := cmmn.WrtTemp(twoChains())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(infile)
	dir := t.TempDir()

	flags := DefaultCmdFlag()
	flags.SamplesPerRes = 3
	flags.LogFile = filepath.Join(dir, "log")
	flags.Vbsty = 2
	flags.Preview = filepath.Join(dir, "x.png")
	objfile := filepath.Join(dir, "x.obj")
	if err := Mymain(&flags, infile, objfile); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(objfile)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := countOBJ(t, string(b)); n["v"] == 0 || n["f"] == 0 {
		t.Errorf("obj output has %v", n)
	}
	if _, err := os.Stat(flags.Preview); err != nil {
		t.Error(err)
	}
	logged, _ := os.ReadFile(flags.LogFile)
	if !strings.Contains(string(logged), "skipped") || !strings.Contains(string(logged), "helix 100.0%") {
		t.Errorf("log has\n%s", logged)
	}

	flags = DefaultCmdFlag()
	jsonfile := filepath.Join(dir, "x.json")
	if err := Mymain(&flags, infile, jsonfile); err != nil {
		t.Fatal(err)
	}
	b, _ = os.ReadFile(jsonfile)
	var got jpayload
	if err := json.Unmarshal(b, &got); err != nil || len(got.Chunks) != 1 {
		t.Errorf("json output: %v, %d chunks", err, len(got.Chunks))
	}

	if err := Mymain(&flags, filepath.Join(dir, "missing.pdb"), jsonfile); err == nil {
		t.Error("missing input should fail")
	}
	flags.Format = "stl"
	if err := Mymain(&flags, infile, jsonfile); err == nil {
		t.Error("unknown format should fail")
	}
}
