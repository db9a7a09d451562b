package transport

import "math"

// constructInitialPivots warm-starts the basis via min-cost inbound (or,
// when sumSupply < 0, outbound) arcs at demand/supply nodes, or — when the
// problem degenerates to a single supply node and a single demand node — a
// reverse-reachability pass from the demand node.
//
// For each candidate arc with negative reduced cost, it performs one full
// pivot (findJoin -> findLeavingArc -> updateFlow -> updateSpanningTree ->
// updatePotential). bounded is false if any such pivot is unbounded
// (delta >= infinity), in which case the caller must report StatusUnbounded
// without entering the main loop.
//
// Complexity: O((n+m) * tree depth) typical.
func constructInitialPivots(sumSupply float64, g *diGraph, nad *nodeArcData, st *spanningTree) (bounded bool, inArc int) {
	cost, pi, source, target, supply := nad.cost, nad.pi, nad.source, nad.target, nad.supply
	n1, n2, nodeNum, nArcs := g.n, g.m, g.nNodes, g.nArcs
	state := st.state

	var total float64
	var supplyNodes, demandNodes []int
	for u := nodeNum - 1; u >= 0; u-- {
		curr := supply[nodeNum-u-1]
		switch {
		case curr > 0:
			total += curr
			supplyNodes = append(supplyNodes, u)
		case curr < 0:
			demandNodes = append(demandNodes, u)
		}
	}
	if sumSupply > 0 {
		total -= sumSupply
	}
	if total <= 0 {
		return true, -1
	}

	var arcVector []int
	switch {
	case sumSupply >= 0 && len(supplyNodes) == 1 && len(demandNodes) == 1:
		// Degenerate case: reverse reachability search from the single
		// demand node back to the single supply node.
		reached := make([]bool, nodeNum)
		s, t := supplyNodes[0], demandNodes[0]
		stack := []int{t}
		reached[t] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if v == s {
				break
			}

			firstArc := -1
			if v >= n1 {
				firstArc = nArcs + v - nodeNum
			}
			for a := firstArc; a >= 0; a -= n2 {
				u := a / n2
				if reached[u] {
					continue
				}
				j := g.arcID(a)
				// The reference solver gates this on "INF >= total", which
				// is always true for finite total; kept for fidelity.
				if infinity >= total {
					arcVector = append(arcVector, j)
					reached[u] = true
					stack = append(stack, u)
				}
			}
		}

	case sumSupply >= 0:
		// Min-cost incoming arc for each demand node.
		for _, v := range demandNodes {
			minCost := math.MaxFloat64
			minArc := -1

			firstArc := -1
			if v >= n1 {
				firstArc = nArcs + v - nodeNum
			}
			for a := firstArc; a >= 0; a -= n2 {
				if c := cost[g.arcID(a)]; c < minCost {
					minCost = c
					minArc = a
				}
			}
			if minArc != -1 {
				arcVector = append(arcVector, g.arcID(minArc))
			}
		}

	default:
		// Min-cost outgoing arc for each supply node.
		for _, u := range supplyNodes {
			minCost := math.MaxFloat64
			minArc := -1

			a := -1
			if u <= n1 {
				a = (u+1)*n2 - 1
			}
			for a%n2 != 0 && a >= 0 {
				if c := cost[g.arcID(a)]; c < minCost {
					minCost = c
					minArc = a
				}
				a--
			}
			if minArc != -1 {
				arcVector = append(arcVector, g.arcID(minArc))
			}
		}
	}

	inArc = -1
	for _, a := range arcVector {
		inArc = a
		if float64(state[inArc])*(cost[inArc]+pi[source[inArc]]-pi[target[inArc]]) >= 0 {
			continue
		}

		join := findJoin(source, target, st.succNum, st.parent, inArc)
		change, uIn, vIn, uOut, delta := findLeavingArc(join, inArc, nad, st)
		if delta >= infinity {
			return false, inArc
		}

		updateFlow(change, join, delta, uOut, nad, st, inArc)
		if change {
			updateSpanningTree(st, vIn, uIn, uOut, join, inArc, source)
			updatePotential(uIn, vIn, pi, cost, st)
		}
	}

	return true, inArc
}
