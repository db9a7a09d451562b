package transport

import "math"

// initializeGraphStructures validates supply balance, injects an artificial
// root node plus one artificial arc per real node, and assigns the
// artificial cost. It returns whether initialization succeeded, the
// (forced) net supply, and the arc-index boundaries used by the pivot loop
// to distinguish real arcs from artificial ones.
//
// ok is false when the graph is empty (nNodes == 0) or when the supply
// totals are not balanced within netSupplyErrorTolerance; the caller is
// expected to translate that into ErrEmptyGraph / ErrSupplyImbalance.
//
// Complexity: O(n + m + n*m) time (the artificial-cost scan touches every
// real arc once).
func initializeGraphStructures(g *diGraph, nad *nodeArcData, st *spanningTree) (ok bool, netSupply float64, searchArcNum, allArcNum int) {
	nNodes, nArcs := g.nNodes, g.nArcs
	cost, supply, flow, pi := nad.cost, nad.supply, nad.flow, nad.pi
	source, target := nad.source, nad.target
	parent, pred := st.parent, st.pred
	thread, revThread := st.thread, st.revThread
	succNum, lastSucc := st.succNum, st.lastSucc
	forward, state := st.forward, st.state

	if nNodes == 0 {
		return false, 0, 0, 0
	}

	for i := 0; i < nNodes; i++ {
		netSupply += supply[i]
	}
	if math.Abs(netSupply) > netSupplyErrorTolerance {
		return false, netSupply, 0, 0
	}

	// Forced to zero: the Kantorovich entry point always balances x and y,
	// so only the EQ branch below ever executes. The LEQ/GEQ branches are
	// kept for interface completeness but are unreachable from Solve /
	// KantorovichDistance; see DESIGN.md.
	netSupply = 0

	artCost := 0.0
	for i := 0; i < nArcs; i++ {
		if cost[i] > artCost {
			artCost = cost[i]
		}
	}
	artCost = (artCost + 1) * float64(nNodes)

	for i := 0; i < nArcs; i++ {
		state[i] = stateLower
	}

	root := nNodes
	parent[root] = -1
	pred[root] = -1
	thread[root] = 0
	revThread[0] = root
	succNum[root] = nNodes + 1
	lastSucc[root] = root - 1
	supply[root] = -netSupply
	pi[root] = 0

	switch {
	case netSupply == 0:
		// EQ supply constraints: one artificial arc per real node.
		searchArcNum = nArcs
		allArcNum = nArcs + nNodes
		e := nArcs
		for u := 0; u < nNodes; u++ {
			parent[u] = root
			pred[u] = e
			thread[u] = u + 1
			revThread[u+1] = u
			succNum[u] = 1
			lastSucc[u] = u
			state[e] = stateTree
			if supply[u] >= 0 {
				forward[u] = true
				pi[u] = 0
				source[e] = u
				target[e] = root
				flow[e] = supply[u]
				cost[e] = 0
			} else {
				forward[u] = false
				pi[u] = artCost
				source[e] = root
				target[e] = u
				flow[e] = -supply[u]
				cost[e] = artCost
			}
			e++
		}

	case netSupply > 0:
		// LEQ supply constraints. Dead code from the public entry points:
		// preserved verbatim for parity with the reference solver.
		searchArcNum = nArcs + nNodes
		f := nArcs + nNodes
		e := nArcs
		for u := 0; u < nNodes; u++ {
			parent[u] = root
			thread[u] = u + 1
			revThread[u+1] = u
			succNum[u] = 1
			lastSucc[u] = u
			if supply[u] >= 0 {
				forward[u] = true
				pi[u] = 0
				pred[u] = e
				source[e] = u
				target[e] = root
				flow[e] = supply[u]
				cost[e] = 0
				state[e] = stateTree
			} else {
				forward[u] = false
				pi[u] = artCost
				pred[u] = f
				source[f] = root
				target[f] = u
				flow[f] = -supply[u]
				cost[f] = artCost
				state[f] = stateTree
				source[e] = u
				target[e] = root
				cost[e] = 0
				state[e] = stateLower
				f++
			}
			e++
		}
		allArcNum = f

	default:
		// GEQ supply constraints. Dead code from the public entry points;
		// see the LEQ branch above.
		searchArcNum = nArcs + nNodes
		f := nArcs + nNodes
		e := nArcs
		for u := 0; u < nNodes; u++ {
			parent[u] = root
			thread[u] = u + 1
			revThread[u+1] = u
			succNum[u] = 1
			lastSucc[u] = u
			if supply[u] <= 0 {
				forward[u] = false
				pi[u] = 0
				pred[u] = e
				source[e] = root
				target[e] = u
				flow[e] = -supply[u]
				cost[e] = 0
				state[e] = stateTree
			} else {
				forward[u] = true
				pi[u] = -artCost
				pred[u] = f
				source[f] = u
				target[f] = root
				flow[f] = supply[u]
				state[f] = stateTree
				cost[f] = artCost
				source[e] = root
				target[e] = u
				cost[e] = 0
				state[e] = stateLower
				f++
			}
			e++
		}
		allArcNum = f
	}

	return true, netSupply, searchArcNum, allArcNum
}
