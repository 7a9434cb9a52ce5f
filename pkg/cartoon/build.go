// 16 Oct 2026

package cartoon

import (
	"context"
	"errors"
	"sync"

	"github.com/andrew-torda/cartoon/pkg/pdb"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
	"github.com/andrew-torda/cartoon/pkg/spline"
	"github.com/andrew-torda/cartoon/pkg/ssa"
)

// ChainResult is what came out of one chain.
type ChainResult struct {
	ChainID string
	Type    pdb.ChainType
	Labels  []pdb.SecStruct
	Summary ssa.Summary
	Chunks  []ribbon.MeshChunk
	Err     error
}

// Skipped is true if the chain was too short to draw. This is not a
// failure, there is just nothing to show.
func (r *ChainResult) Skipped() bool {
	var ib *spline.InsufficientBackboneError
	return errors.As(r.Err, &ib)
}

// doChain labels and draws one chain. Only the residues of this chain
// are written to, so chains can run in parallel.
func doChain(ch *pdb.Chain, s *ribbon.Settings, o *ssa.Options) ChainResult {
	r := ChainResult{ChainID: ch.ID, Type: ch.Type}
	r.Summary = ssa.Analyze(ch, o)
	r.Labels = ssa.Labels(ch)
	r.Chunks, r.Err = ribbon.Generate(ch, s)
	return r
}

// Build runs every chain in its own goroutine. Results come back in
// the order of st.Chains. A cancelled context stops chains that have
// not started yet, and Build then returns the context's error.
func Build(ctx context.Context, st *pdb.Structure, s *ribbon.Settings, o *ssa.Options) ([]ChainResult, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	ret := make([]ChainResult, len(st.Chains))
	var wg sync.WaitGroup
	for i, ch := range st.Chains {
		wg.Add(1)
		go func(i int, ch *pdb.Chain) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				ret[i] = ChainResult{ChainID: ch.ID, Type: ch.Type, Err: err}
				return
			}
			ret[i] = doChain(ch, s, o)
		}(i, ch)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
