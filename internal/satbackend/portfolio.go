package satbackend

import (
	"context"
	"math/rand"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"golang.org/x/sync/errgroup"

	"github.com/rrumana/game-of-life-reverse/internal/encode"
)

// Portfolio runs several independent copies of the underlying solver
// concurrently and returns the first definite (Sat/Unsat) verdict,
// matching the glossary's "Portfolio backend" and spec §5's note that
// a multithreaded backend's internal worker threads are opaque to the
// core: the only suspension point is Solve.
//
// gini exposes no seed, polarity, or variable-order hook on *gini.Gini
// (Copy, SCopy, MaxVar, Lit, Add, Assume, Solve, Try, GoSolve, Value,
// Why, Test, Untest, Reasons, Activate*, Deactivate, Write — nothing
// randomization-related), so racing N copies of one primed instance
// gives the workers nothing to diverge on. Instead each worker builds
// its own solver from scratch, adding the same clause set in a
// per-worker permuted order: clause order never changes satisfiability,
// only the solver's internal decision/activity bookkeeping, so this is
// a safe way to give workers distinct search trajectories from
// Options.Seed. Worker 0 always adds clauses in their original order,
// giving callers one canonical, Seed-independent trajectory.
type Portfolio struct {
	clauses []encode.Clause
	opts    Options
	winner  *gini.Gini
}

var _ Backend = (*Portfolio)(nil)

// NewPortfolio returns a Portfolio backend configured with opts.
func NewPortfolio(opts Options) *Portfolio {
	p := &Portfolio{}
	p.Configure(opts)
	return p
}

func (p *Portfolio) Configure(opts Options) {
	p.opts = opts.resolveEffort()
}

func (p *Portfolio) AddClause(literals encode.Clause) error {
	if len(literals) == 0 {
		return ErrEmptyClause
	}
	p.clauses = append(p.clauses, literals)
	return nil
}

func (p *Portfolio) workerCount() int {
	n := p.opts.Threads
	if n < 2 {
		n = 2
	}
	return n
}

// buildWorker returns a fresh *gini.Gini with p.clauses added in the
// order given by perm (perm[i] is the index of the clause added i-th).
func (p *Portfolio) buildWorker(perm []int) *gini.Gini {
	g := gini.New()
	for _, idx := range perm {
		for _, lit := range p.clauses[idx] {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}
	return g
}

// workerPerm returns the clause-addition order for worker i. Worker 0
// is always the identity permutation; workers 1..n-1 are Fisher-Yates
// shuffles seeded from Options.Seed and the worker index, so a run is
// reproducible given the same Seed and thread count but each worker
// still explores the same clause set along a different path.
func workerPerm(n int, seed int64, worker int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if worker == 0 {
		return perm
	}
	rng := rand.New(rand.NewSource(seed*2654435761 + int64(worker)))
	rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}

func (p *Portfolio) Solve() (Outcome, error) {
	n := p.workerCount()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if p.opts.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer timeoutCancel()
	}

	type result struct {
		g   *gini.Gini
		out Outcome
	}
	results := make(chan result, n)

	eg, _ := errgroup.WithContext(ctx)
	numClauses := len(p.clauses)
	copies := make([]*gini.Gini, n)
	for i := 0; i < n; i++ {
		copies[i] = p.buildWorker(workerPerm(numClauses, p.opts.Seed, i))
	}
	for i := 0; i < n; i++ {
		g := copies[i]
		eg.Go(func() error {
			done := make(chan int, 1)
			go func() { done <- g.Solve() }()
			select {
			case res := <-done:
				results <- result{g: g, out: outcomeOf(res)}
			case <-ctx.Done():
				results <- result{g: g, out: Unknown}
			}
			return nil
		})
	}

	go func() {
		_ = eg.Wait()
		close(results)
	}()

	best := Unknown
	var bestG *gini.Gini
	for r := range results {
		if r.out == Sat || r.out == Unsat {
			best = r.out
			bestG = r.g
			cancel()
			break
		}
	}
	// Drain remaining workers so their goroutines don't leak past
	// this call.
	for range results {
	}

	p.winner = bestG
	return best, nil
}

func (p *Portfolio) Value(v int) bool {
	if p.winner == nil {
		return false
	}
	return p.winner.Value(z.Dimacs2Lit(v))
}

func (p *Portfolio) Reset() {
	opts := p.opts
	p.clauses = nil
	p.winner = nil
	p.opts = opts
}
