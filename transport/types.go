package transport

import (
	"errors"

	"github.com/katalvlaran/transport/matrix"
)

// Sentinel errors for the transport package. Do not wrap with fmt.Errorf
// where a sentinel suffices.
var (
	// ErrInvalidLength indicates x or y has length 0.
	ErrInvalidLength = errors.New("transport: x and y must have length >= 1")

	// ErrDimensionMismatch indicates cost does not have shape len(x) x len(y).
	ErrDimensionMismatch = errors.New("transport: cost matrix dimensions do not match x/y")

	// ErrInvalidCost indicates a non-finite (NaN or +/-Inf) cost entry.
	ErrInvalidCost = errors.New("transport: cost matrix must contain only finite values")

	// ErrEmptyGraph indicates the bipartite graph has no nodes (n+m == 0).
	ErrEmptyGraph = errors.New("transport: graph has no nodes")

	// ErrSupplyImbalance indicates |sum(x) - sum(y)| exceeds netSupplyErrorTolerance.
	ErrSupplyImbalance = errors.New("transport: supply and demand totals are not balanced")

	// ErrUnbounded indicates the problem is unbounded.
	ErrUnbounded = errors.New("transport: problem is unbounded")

	// ErrInfeasible indicates no feasible flow satisfies supply/demand.
	ErrInfeasible = errors.New("transport: no feasible flow satisfies supply/demand")
)

// Status is the terminal state of the network simplex driver.
type Status int

const (
	// StatusOptimal indicates the pivot loop converged to an optimal basis.
	StatusOptimal Status = iota
	// StatusMaxIterReached indicates the iteration cap was hit before convergence.
	// This is not an error: Result still carries the best-effort flow found so far.
	StatusMaxIterReached
	// StatusUnbounded indicates an unbounded pivot (delta >= Infinity).
	StatusUnbounded
	// StatusInfeasible indicates residual flow remained on an artificial arc.
	StatusInfeasible
)

// String implements fmt.Stringer for diagnostics and logging.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusMaxIterReached:
		return "MaxIterReached"
	case StatusUnbounded:
		return "Unbounded"
	case StatusInfeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// SupplyKind selects which side of the degenerate LEQ/GEQ supply-balance
// convention the final potential shift normalizes against. The Kantorovich
// entry point always operates on exactly-balanced supply (see basis.go), so
// in practice only the post-processing potential shift ever observes this
// field; the LEQ/GEQ basis-construction branches it would otherwise select
// are unreachable from Solve/KantorovichDistance by construction.
type SupplyKind int

const (
	// GEQ is the default supply type: potentials are shifted so the maximum is <= 0.
	GEQ SupplyKind = iota
	// LEQ shifts potentials so the minimum is >= 0.
	LEQ
)

// SolveOptions configures the network simplex solver.
//   - MaxIter: iteration cap for the pivot loop (default 1_000_000; 0 selects the
//     default, a negative value disables the cap).
//   - UseArcMixing: enable the cache-friendly arc interleaving permutation (default true).
//     Correctness does not depend on it; it only affects block-search pricing locality.
//   - Epsilon: numerical tolerance for the pricing gate and the artificial-flow
//     snap-to-zero check (default 2.2204460492503131e-15).
//   - SupplyType: which potential-shift convention to apply at the end of the solve.
//   - Verbose: if true, logs each pivot and the iteration-cap warning via fmt.Printf.
type SolveOptions struct {
	MaxIter      int
	UseArcMixing bool
	Epsilon      float64
	SupplyType   SupplyKind
	Verbose      bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		MaxIter:      1_000_000,
		UseArcMixing: true,
		Epsilon:      epsilon,
		SupplyType:   GEQ,
		Verbose:      false,
	}
}

// withDefaults fills in zero-valued fields of a caller-provided SolveOptions
// so Solve/KantorovichDistance behave sensibly even when called with the
// struct literal's zero value in places that don't care about tuning.
func (o SolveOptions) withDefaults() SolveOptions {
	if o.MaxIter == 0 {
		o.MaxIter = 1_000_000
	}
	if o.Epsilon == 0 {
		o.Epsilon = epsilon
	}

	return o
}

// Result is the outcome of a Solve call.
type Result struct {
	// TotalCost is the inner product of the final flow and cost arrays.
	TotalCost float64
	// Plan is the n x m transport plan reconstructed from the final flow on real arcs.
	Plan *matrix.Dense
	// Status is the terminal state of the pivot loop.
	Status Status
	// Iterations is the main-loop iteration count. When the iteration cap stops
	// the loop, the last counted iteration performs no pivot.
	Iterations int
}
