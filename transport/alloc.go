package transport

import "math"

// arcState classifies a non-tree arc's flow against its bounds, or marks it
// as part of the spanning tree basis.
type arcState int8

const (
	// stateUpper means flow sits at its upper bound (never used in the
	// uncapacitated transportation setting beyond bookkeeping symmetry with
	// the original solver; kept for fidelity).
	stateUpper arcState = -1
	// stateTree means the arc is part of the current spanning-tree basis.
	stateTree arcState = 0
	// stateLower means flow sits at its lower bound (zero).
	stateLower arcState = 1
)

// nodeArcData holds the mutable arc- and node-indexed arrays shared by the
// whole solve: costs, flows, endpoints, supplies, and node potentials
// (duals). Arrays are sized once by allocateGraphStructures and never
// resized.
type nodeArcData struct {
	cost, flow     []float64 // length maxArcNum
	source, target []int     // length maxArcNum
	supply, pi     []float64 // length allNodeNum
}

// spanningTree encodes the current basis as a rooted tree over all
// nNodes+1 nodes (the +1 is the artificial root). assertTreeInvariants in
// pivot_invariants_test.go checks the invariants these seven arrays must
// jointly satisfy after every pivot.
type spanningTree struct {
	parent, pred                       []int // length allNodeNum
	thread, revThread                  []int // length allNodeNum
	succNum, lastSucc                  []int // length allNodeNum
	forward                            []bool
	state                              []arcState // length maxArcNum
	root                               int
	dirtyRevsBuf                       []int // reused scratch buffer, capacity allNodeNum
}

// allocateGraphStructures sizes all arrays for worst-case artificial arcs
// (maxArcNum = n*m + 2*(n+m)) and lays real arcs out under the interleaving
// permutation described by arcID, when useArcMixing is true.
//
// Complexity: O(n*m) time and memory.
func allocateGraphStructures(n, m int, useArcMixing bool) (*nodeArcData, *spanningTree, *diGraph) {
	nNodes := n + m
	nArcs := n * m
	allNodeNum := nNodes + 1
	maxArcNum := nArcs + 2*nNodes
	root := nNodes

	nad := &nodeArcData{
		cost:   make([]float64, maxArcNum),
		flow:   make([]float64, maxArcNum),
		source: make([]int, maxArcNum),
		target: make([]int, maxArcNum),
		supply: make([]float64, allNodeNum),
		pi:     make([]float64, allNodeNum),
	}
	st := &spanningTree{
		parent:       make([]int, allNodeNum),
		pred:         make([]int, allNodeNum),
		thread:       make([]int, allNodeNum),
		revThread:    make([]int, allNodeNum),
		succNum:      make([]int, allNodeNum),
		lastSucc:     make([]int, allNodeNum),
		forward:      make([]bool, allNodeNum),
		state:        make([]arcState, maxArcNum),
		root:         root,
		dirtyRevsBuf: make([]int, 0, allNodeNum),
	}
	g := &diGraph{
		n:            n,
		m:            m,
		nNodes:       nNodes,
		nArcs:        nArcs,
		useArcMixing: useArcMixing,
	}

	if useArcMixing {
		k := int(math.Sqrt(float64(nArcs)))
		if k < 10 {
			k = 10
		}
		g.mixingCoeff = k
		g.subsequenceLength = nArcs/k + 1
		g.numBigSubsequences = nArcs % k
		g.numTotalBigSubsequenceNumbers = g.subsequenceLength * g.numBigSubsequences

		i, j := 0, 0
		for a := nArcs - 1; a >= 0; a-- {
			nad.source[i] = nNodes - (a/m) - 1
			nad.target[i] = nNodes - ((a%m)+n) - 1
			i += k
			if i >= nArcs {
				j++
				i = j
			}
		}
	} else {
		i := 0
		for a := nArcs - 1; a >= 0; a-- {
			nad.source[i] = nNodes - (a/m) - 1
			nad.target[i] = nNodes - ((a%m)+n) - 1
			i++
		}
	}

	for i := 0; i < nArcs; i++ {
		nad.cost[i] = 1.0
	}
	// supply defaults to 0.0 (zero value of float64), matching the source.

	return nad, st, g
}
