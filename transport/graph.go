package transport

import "math"

// Numerical constants shared by the solver. These mirror the reference
// implementation's constants exactly: epsilon bounds the pricing gate and
// the artificial-flow snap-to-zero check; infinity stands in for "no
// capacity limit" in the leaving-arc search; netSupplyErrorTolerance bounds
// how far sum(x) may drift from sum(y) before the problem is rejected as
// imbalanced.
const (
	epsilon                 = 2.2204460492503131e-15
	infinity                = math.MaxFloat64
	netSupplyErrorTolerance = 1e-8
)

// diGraph describes the complete bipartite topology of the transportation
// problem: n supply nodes, m demand nodes, and the arc-mixing parameters
// that drive arcID's cache-friendly interleaving permutation.
//
// diGraph is immutable once returned by allocateGraphStructures.
type diGraph struct {
	n, m   int // supply / demand node counts
	nNodes int // n + m
	nArcs  int // n * m

	useArcMixing bool

	mixingCoeff                   int
	subsequenceLength             int
	numBigSubsequences            int
	numTotalBigSubsequenceNumbers int
}

// arcID maps a logical arc ordinal (0 <= arc < n*m) to its storage slot,
// under the interleaving permutation set up by allocateGraphStructures.
//
// The permutation spreads neighboring logical arcs across memory to reduce
// cache-line contention in the block-search pricing loop (pricing.go); it
// has no effect on correctness. When useArcMixing is false, arcID is the
// identity on k := n*m - arc - 1.
//
// Complexity: O(1).
func (g *diGraph) arcID(arc int) int {
	k := g.nArcs - arc - 1
	if !g.useArcMixing {
		return k
	}

	smallv := 0
	if k > g.numTotalBigSubsequenceNumbers {
		smallv = 1
	}
	k -= g.numTotalBigSubsequenceNumbers * smallv

	subsequenceLen := g.subsequenceLength - smallv
	subsequenceNum := k/subsequenceLen + g.numBigSubsequences*smallv
	subsequenceOffset := (k % subsequenceLen) * g.mixingCoeff

	return subsequenceOffset + subsequenceNum
}
