package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transport/matrix"
)

// maxIterWarning is printed verbatim (Verbose only) when the iteration cap
// is hit, matching the reference solver's own diagnostic: iterations can
// cycle even after the true optimum is reached, and a reduced cost close
// to machine precision usually means the solution is already correct.
const maxIterWarning = "transport: max iterations reached; result may be inaccurate " +
	"(reduced cost near machine precision usually still means the solution is correct)"

// initializeSupply fills supply[0:nNodes] from x (first n nodes) and -y
// (remaining m nodes), in the reversed node order the arc allocator uses:
// supply[nNodes-u-1] holds node u's mass. This reversal must stay in sync
// with allocateGraphStructures's arc-endpoint walk; do not "fix" it in
// isolation.
func initializeSupply(x, y []float64, g *diGraph, supply []float64) {
	n := g.n
	for node := g.nNodes - 1; node >= 0; node-- {
		if node < n {
			supply[g.nNodes-node-1] = x[node]
		} else {
			supply[g.nNodes-node-1] = -y[node-n]
		}
	}
}

// setCost writes cost_val at the storage slot for logical arc arc = i*m+j.
func setCost(arc int, costVal float64, cost []float64, g *diGraph) {
	cost[g.arcID(arc)] = costVal
}

// totalCost is the inner product of flow and cost over every allocated
// arc (real and artificial); after a feasible solve, artificial flow has
// been snapped to zero so only real arcs contribute.
func totalCost(flow, cost []float64) float64 {
	var c float64
	for i := range flow {
		c += flow[i] * cost[i]
	}

	return c
}

// buildPlan reconstructs the n x m transport plan from the final flow on
// real arcs, using arcID to locate each logical (i, j) arc's storage slot.
func buildPlan(n, m int, g *diGraph, nad *nodeArcData) (*matrix.Dense, error) {
	plan, err := matrix.NewZeros(n, m)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			slot := g.arcID(i*m + j)
			if err := plan.Set(i, j, nad.flow[slot]); err != nil {
				return nil, err
			}
		}
	}

	return plan, nil
}

// runNetworkSimplex runs the pivot loop to optimality, the iteration cap,
// unboundedness, or infeasibility, then shifts potentials per SupplyType.
//
// Complexity: no general polynomial bound; each pivot is
// O(tree depth) plus O(blockSize) amortized pricing.
func runNetworkSimplex(g *diGraph, nad *nodeArcData, st *spanningTree, sumSupply float64, searchArcNum, allArcNum int, opts SolveOptions) (Status, int) {
	bounded, inArc := constructInitialPivots(sumSupply, g, nad, st)
	if !bounded {
		return StatusUnbounded, 0
	}

	pb := newPivotBlock(searchArcNum)
	notConverged, inArc := findEnteringArc(pb, st.state, nad, inArc, opts.Epsilon)

	status := StatusOptimal
	iter := 0
	for notConverged {
		iter++
		if opts.MaxIter > 0 && iter >= opts.MaxIter {
			if opts.Verbose {
				fmt.Println(maxIterWarning)
			}
			status = StatusMaxIterReached
			break
		}

		join := findJoin(nad.source, nad.target, st.succNum, st.parent, inArc)
		change, uIn, vIn, uOut, delta := findLeavingArc(join, inArc, nad, st)
		if delta >= infinity {
			return StatusUnbounded, iter
		}

		updateFlow(change, join, delta, uOut, nad, st, inArc)
		if change {
			updateSpanningTree(st, vIn, uIn, uOut, join, inArc, nad.source)
			updatePotential(uIn, vIn, nad.pi, nad.cost, st)
		}

		if opts.Verbose {
			fmt.Printf("transport: iter=%d entering=%d delta=%g\n", iter, inArc, delta)
		}

		notConverged, inArc = findEnteringArc(pb, st.state, nad, inArc, opts.Epsilon)
	}

	if status == StatusOptimal {
		for e := searchArcNum; e < allArcNum; e++ {
			if nad.flow[e] != 0 {
				if math.Abs(nad.flow[e]) > opts.Epsilon {
					return StatusInfeasible, iter
				}
				nad.flow[e] = 0
			}
		}
	}

	if sumSupply == 0 {
		shiftPotentials(g, nad.pi, opts.SupplyType)
	}

	return status, iter
}

// shiftPotentials normalizes node potentials so the optimality conditions
// for the requested supply convention hold: GEQ shifts so the maximum
// potential is <= 0, LEQ shifts so the minimum is >= 0.
func shiftPotentials(g *diGraph, pi []float64, supplyType SupplyKind) {
	if supplyType == GEQ {
		maxPot := -infinity
		for i := 0; i < g.nNodes; i++ {
			if pi[i] > maxPot {
				maxPot = pi[i]
			}
		}
		if maxPot > 0 {
			for i := 0; i < g.nNodes; i++ {
				pi[i] -= maxPot
			}
		}
		return
	}

	minPot := infinity
	for i := 0; i < g.nNodes; i++ {
		if pi[i] < minPot {
			minPot = pi[i]
		}
	}
	if minPot < 0 {
		for i := 0; i < g.nNodes; i++ {
			pi[i] -= minPot
		}
	}
}

// Solve computes the minimum-cost flow moving supply x into demand y under
// cost, and returns the total cost, the reconstructed transport plan, the
// terminal Status, and the number of pivots performed.
//
// Preconditions: len(x) >= 1, len(y) >= 1, cost.Rows() == len(x),
// cost.Cols() == len(y), every cost entry finite, and sum(x) ~= sum(y)
// within 1e-8 (ErrSupplyImbalance otherwise).
//
// Complexity: O(n*m) allocation and cost injection, plus the pivot loop's
// cost (see runNetworkSimplex).
func Solve(x, y []float64, cost matrix.Matrix, opts SolveOptions) (*Result, error) {
	opts = opts.withDefaults()

	if err := validateInputs(x, y, cost); err != nil {
		return nil, err
	}

	n, m := len(x), len(y)
	nad, st, g := allocateGraphStructures(n, m, opts.UseArcMixing)

	initializeSupply(x, y, g, nad.supply)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			cv, err := cost.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := validateCostEntry(cv); err != nil {
				return nil, err
			}
			setCost(i*m+j, cv, nad.cost, g)
		}
	}

	ok, sumSupply, searchArcNum, allArcNum := initializeGraphStructures(g, nad, st)
	if !ok {
		if g.nNodes == 0 {
			return nil, ErrEmptyGraph
		}
		return nil, ErrSupplyImbalance
	}

	status, iters := runNetworkSimplex(g, nad, st, sumSupply, searchArcNum, allArcNum, opts)
	switch status {
	case StatusUnbounded:
		return nil, ErrUnbounded
	case StatusInfeasible:
		return nil, ErrInfeasible
	}

	plan, err := buildPlan(n, m, g, nad)
	if err != nil {
		return nil, err
	}

	return &Result{
		TotalCost:  totalCost(nad.flow, nad.cost),
		Plan:       plan,
		Status:     status,
		Iterations: iters,
	}, nil
}

// KantorovichDistance computes the minimum total cost to move supply x
// into demand y under cost, discarding the richer Result that Solve
// returns. This mirrors the original Kantorovich-distance entry point,
// including its habit of not surfacing the inner driver's status; use
// Solve directly when the status or the transport plan are needed.
func KantorovichDistance(x, y []float64, cost matrix.Matrix, opts SolveOptions) (float64, error) {
	res, err := Solve(x, y, cost, opts)
	if err != nil {
		return 0, err
	}

	return res.TotalCost, nil
}
