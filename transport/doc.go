// Package transport implements a Network Simplex solver for the discrete
// optimal transport (Kantorovich) problem on a complete bipartite graph.
//
// Given supply x (length n) and demand y (length m), both non-negative and
// summing to (approximately) the same total mass, and an n×m cost matrix,
// transport computes the minimum-cost flow moving all of x into y and
// returns that cost together with the transport plan itself.
//
// # Algorithm
//
//	Network Simplex (Kővári–style dense bipartite specialization):
//	  Method: maintain a spanning-tree basis over the artificial-root
//	          residual graph; price entering arcs with a block-search
//	          Dantzig rule; trace the fundamental cycle to find the
//	          leaving arc; repair the tree encoding (parent/thread/
//	          rev-thread/succ-count/last-successor/pred/forward) after
//	          every pivot.
//	  Time:   no general polynomial bound is proven for network simplex,
//	          but in practice it is highly competitive on dense
//	          transportation instances of the sizes this package targets.
//	  Memory: O(n·m) arcs + O(n+m) node bookkeeping, one-shot allocation.
//
// # Graph Model
//
// The graph is always the complete bipartite graph K(n,m): one arc per
// (supply, demand) pair, plus n+m artificial arcs anchoring an artificial
// root used to seed a feasible starting basis. There is no sparse-cost
// support and no arc capacities beyond the uncapacitated transportation
// setting.
//
// # API
//
// SolveOptions configures the solver:
//
//	opts := transport.DefaultOptions()
//	// opts.MaxIter       = 1_000_000
//	// opts.UseArcMixing  = true
//	// opts.Epsilon       = 2.2204460492503131e-15
//	// opts.SupplyType    = transport.GEQ
//	// opts.Verbose       = false
//
// The core entry points:
//
//	func Solve(x, y []float64, cost matrix.Matrix, opts SolveOptions) (*Result, error)
//	func KantorovichDistance(x, y []float64, cost matrix.Matrix, opts SolveOptions) (float64, error)
//
// Solve returns the total transport cost, the reconstructed transport plan
// as an n×m *matrix.Dense, the terminal Status, and the iteration count.
// KantorovichDistance is a thin wrapper returning only the cost, matching
// the shape of the original Kantorovich-distance entry point this package
// is built around.
//
// # Errors
//
//	ErrInvalidLength     - x or y has length 0.
//	ErrDimensionMismatch - cost does not have shape len(x) × len(y).
//	ErrEmptyGraph        - the bipartite graph has no nodes (n+m == 0).
//	ErrSupplyImbalance   - |sum(x) - sum(y)| exceeds the tolerance.
//	ErrUnbounded         - the problem is unbounded (should not occur for
//	                       finite, non-negative supply/demand).
//	ErrInfeasible        - no feasible flow satisfies supply/demand after
//	                       the pivot loop terminates.
//
// Result.Status additionally reports StatusMaxIterReached as a non-error
// outcome: the best-effort flow found before the iteration cap is still
// returned.
//
// # Integration
//
//   - Accepts github.com/katalvlaran/transport/matrix.Matrix for the cost
//     matrix, so callers can build it with matrix.NewDense/NewZeros.
//   - Has no dependency on github.com/katalvlaran/transport/core: supply and
//     demand are flat mass vectors, not graphs, so there is no natural
//     *core.Graph entry point (see SPEC_FULL.md, section 3).
package transport
