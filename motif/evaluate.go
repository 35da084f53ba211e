// File: evaluate.go
// Role: the significance engine: real census, null ensemble, per-class
// statistics, report assembly.
// Determinism:
//   - Per-member seeds are dealt from the base RNG before any member runs,
//     so worker scheduling cannot perturb results.
//   - Samples land in a preallocated member-indexed matrix; fold order is
//     fixed regardless of completion order.
package motif

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/mgab/motifs/canon"
	"github.com/mgab/motifs/census"
	"github.com/mgab/motifs/core"
	"github.com/mgab/motifs/nullmodel"
)

// Evaluate censuses g at motif size k, builds an ensemble of randomized
// graphs, and scores every motif class of g against the ensemble's count
// distribution. See the package documentation for options and the exact
// statistics. Any failure aborts the whole call; no partial reports.
func Evaluate(g core.Graph, k int, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	realTab, err := census.Count(g, k, census.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("motif: real census: %w", err)
	}

	classes := realTab.Classes()
	index := make(map[canon.Signature]int, len(classes))
	for i, sig := range classes {
		index[sig] = i
	}

	// samples[c][m] = count of class c in ensemble member m; classes
	// absent from a member's census stay 0, contributing to its
	// statistics rather than being skipped.
	samples := make([][]float64, len(classes))
	for i := range samples {
		samples[i] = make([]float64, o.EnsembleSize)
	}

	// Deal every member its seed up front; the schedule depends only on
	// the base RNG, never on worker interleaving.
	seeds := make([]int64, o.EnsembleSize)
	for i := range seeds {
		seeds[i] = o.Rand.Int63()
	}

	if err = runEnsemble(g, k, o, seeds, index, samples); err != nil {
		return nil, err
	}

	rows := make([]ClassStat, 0, len(classes))
	for i, sig := range classes {
		count := realTab.Get(sig)
		if count < o.MinCount {
			continue
		}

		xs := samples[i]
		mean := stat.Mean(xs, nil)
		std := stat.PopStdDev(xs, nil)

		reached := 0
		for _, x := range xs {
			if x >= float64(count) {
				reached++
			}
		}

		cs := ClassStat{
			Signature:  sig,
			RealCount:  count,
			NullMean:   mean,
			NullStdDev: std,
			Z:          math.NaN(),
			PValue:     float64(reached) / float64(o.EnsembleSize),
		}
		if std > 0 {
			cs.Z = (float64(count) - mean) / std
			cs.ZDefined = true
		}
		rows = append(rows, cs)
	}
	sortClasses(rows)

	return &Report{
		K:                k,
		EnsembleSize:     o.EnsembleSize,
		DegreePreserving: o.mode == modeRewire,
		Classes:          rows,
	}, nil
}

// runEnsemble generates and censuses every ensemble member, filling the
// samples matrix. Members are independent, so they parcel out to Workers
// goroutines; each member writes only its own column.
func runEnsemble(
	g core.Graph,
	k int,
	o Options,
	seeds []int64,
	index map[canon.Signature]int,
	samples [][]float64,
) error {
	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	workers := o.Workers
	if workers > len(seeds) {
		workers = len(seeds)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				if err := runMember(ctx, g, k, o, seeds[m], m, index, samples); err != nil {
					fail(err)

					return
				}
			}
		}()
	}

dispatch:
	for m := range seeds {
		select {
		case jobs <- m:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	return ctx.Err()
}

// runMember randomizes one graph and folds its census into column m.
func runMember(
	ctx context.Context,
	g core.Graph,
	k int,
	o Options,
	seed int64,
	m int,
	index map[canon.Signature]int,
	samples [][]float64,
) error {
	rng := rand.New(rand.NewSource(seed))

	var rg *core.AdjGraph
	var err error
	switch o.mode {
	case modeShuffle:
		rg, err = nullmodel.Shuffle(g, nullmodel.WithRand(rng))
	default:
		rg, err = nullmodel.Rewire(g, nullmodel.WithRand(rng))
	}
	if err != nil {
		return fmt.Errorf("motif: ensemble member %d: %w", m, err)
	}

	tbl, err := census.Count(rg, k, census.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("motif: ensemble member %d census: %w", m, err)
	}

	// Only classes of the real graph are tracked; novel classes in a
	// randomized member carry no information about the real graph's
	// over-representation.
	tbl.Each(func(sig canon.Signature, count int) {
		if i, tracked := index[sig]; tracked {
			samples[i][m] = float64(count)
		}
	})

	return nil
}
