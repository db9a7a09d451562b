package transport

import "math"

// pivotBlock holds the resumable cursor for the block-search Dantzig
// pricing rule: each call to findEnteringArc scans at most blockSize arcs
// starting at nextArc, wrapping around to 0, and tests a tolerance gate
// every blockSize arcs scanned.
type pivotBlock struct {
	blockSize    int
	nextArc      int
	searchArcNum int
}

// newPivotBlock sizes blockSize as max(floor(sqrt(searchArcNum)), 10).
func newPivotBlock(searchArcNum int) *pivotBlock {
	k := int(math.Sqrt(float64(searchArcNum)))
	if k < 10 {
		k = 10
	}

	return &pivotBlock{blockSize: k, nextArc: 0, searchArcNum: searchArcNum}
}

// findEnteringArc scans arcs for the most negative reduced cost
// state[e]*(cost[e]+pi[source[e]]-pi[target[e]]), resuming from
// pb.nextArc and wrapping around. Every blockSize arcs it tests the
// tolerance gate
//
//	a := max(|pi[source[inArc]]|, |pi[target[inArc]]|, |cost[inArc]|)
//	min < -epsilon*a
//
// and, if it passes, commits pb.nextArc and returns the candidate
// immediately. If a full sweep finds no arc passing the gate, it returns
// (false, inArc): the current basis is optimal.
//
// Complexity: O(searchArcNum) worst case per call, O(blockSize) typical.
func findEnteringArc(pb *pivotBlock, state []arcState, nad *nodeArcData, inArc int, eps float64) (bool, int) {
	cost, pi, source, target := nad.cost, nad.pi, nad.source, nad.target

	gate := func() float64 {
		if inArc < 0 {
			// No candidate arc yet (the warm start selected none).
			return 0
		}
		a := math.Abs(pi[source[inArc]])
		if t := math.Abs(pi[target[inArc]]); t > a {
			a = t
		}
		if c := math.Abs(cost[inArc]); c > a {
			a = c
		}

		return a
	}

	minVal := 0.0
	cnt := pb.blockSize

	for e := pb.nextArc; e < pb.searchArcNum; e++ {
		c := float64(state[e]) * (cost[e] + pi[source[e]] - pi[target[e]])
		if c < minVal {
			minVal = c
			inArc = e
		}

		cnt--
		if cnt == 0 {
			if minVal < -eps*gate() {
				pb.nextArc = e + 1
				return true, inArc
			}
			cnt = pb.blockSize
		}
	}

	for e := 0; e < pb.nextArc; e++ {
		c := float64(state[e]) * (cost[e] + pi[source[e]] - pi[target[e]])
		if c < minVal {
			minVal = c
			inArc = e
		}

		cnt--
		if cnt == 0 {
			if minVal < -eps*gate() {
				pb.nextArc = e + 1
				return true, inArc
			}
			cnt = pb.blockSize
		}
	}

	if minVal >= -eps*gate() {
		return false, inArc
	}

	return true, inArc
}
