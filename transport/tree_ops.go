package transport

// findJoin walks source[inArc] and target[inArc] up the tree, always
// advancing the endpoint with the smaller subtree (succNum), until they
// meet. The meeting node is the lowest common ancestor and the apex of the
// cycle the entering arc would create.
//
// Complexity: O(tree depth).
func findJoin(source, target, succNum, parent []int, inArc int) int {
	u := source[inArc]
	v := target[inArc]
	for u != v {
		if succNum[u] < succNum[v] {
			u = parent[u]
		} else {
			v = parent[v]
		}
	}

	return u
}

// findLeavingArc traces both sides of the fundamental cycle induced by
// inArc (from first/second, ordered by state[inArc], up to join) and picks
// the arc with the smallest residual capacity along the cycle as the
// leaving arc.
//
// The tie-break is intentionally asymmetric: the first path (the side
// matching the entering arc's orientation) uses strict "<", the second
// path uses "<="; this is an anti-cycling / degeneracy rule from the
// reference solver and must not be symmetrized.
//
// change reports whether the leaving arc differs from the entering arc
// (i.e. a real basis change occurs rather than a bound flip). uIn is the
// endpoint of inArc on the same side as uOut.
//
// Complexity: O(tree depth).
func findLeavingArc(join, inArc int, nad *nodeArcData, st *spanningTree) (change bool, uIn, vIn, uOut int, delta float64) {
	source, target, flow := nad.source, nad.target, nad.flow
	state, forward, pred, parent := st.state, st.forward, st.pred, st.parent

	uOut = -1

	var first, second int
	if state[inArc] == stateLower {
		first, second = source[inArc], target[inArc]
	} else {
		first, second = target[inArc], source[inArc]
	}

	delta = infinity
	result := 0

	for u := first; u != join; u = parent[u] {
		e := pred[u]
		var d float64
		if forward[u] {
			d = flow[e]
		} else {
			d = infinity
		}
		if d < delta {
			delta = d
			uOut = u
			result = 1
		}
	}

	for u := second; u != join; u = parent[u] {
		e := pred[u]
		var d float64
		if forward[u] {
			d = infinity
		} else {
			d = flow[e]
		}
		if d <= delta {
			delta = d
			uOut = u
			result = 2
		}
	}

	if result == 1 {
		uIn, vIn = first, second
	} else {
		uIn, vIn = second, first
	}

	return result != 0, uIn, vIn, uOut, delta
}

// updateFlow pushes val = state[inArc]*delta along the cycle discovered by
// findLeavingArc (when delta > 0). On a real basis change (change == true)
// it marks inArc as a tree arc and sets the leaving arc's state; otherwise
// it flips inArc between its bounds.
//
// Complexity: O(tree depth).
func updateFlow(change bool, join int, delta float64, uOut int, nad *nodeArcData, st *spanningTree, inArc int) {
	source, target, flow := nad.source, nad.target, nad.flow
	state, pred, parent, forward := st.state, st.pred, st.parent, st.forward

	if delta > 0 {
		val := float64(state[inArc]) * delta
		flow[inArc] += val

		for u := source[inArc]; u != join; u = parent[u] {
			if forward[u] {
				flow[pred[u]] -= val
			} else {
				flow[pred[u]] += val
			}
		}
		for u := target[inArc]; u != join; u = parent[u] {
			if forward[u] {
				flow[pred[u]] += val
			} else {
				flow[pred[u]] -= val
			}
		}
	}

	if change {
		state[inArc] = stateTree
		if flow[pred[uOut]] == 0 {
			state[pred[uOut]] = stateLower
		} else {
			state[pred[uOut]] = stateUpper
		}
	} else {
		state[inArc] = -state[inArc]
	}
}

// updateSpanningTree reroots the subtree hanging under uOut by reversing
// the stem of nodes from uOut up to uIn and attaching it below vIn,
// splicing the thread/revThread pre-order lists and repairing pred,
// forward, succNum and lastSucc along the way.
//
// This is the most intricate primitive in the solver: the exact sequence
// of thread/revThread/succNum/lastSucc writes is load-bearing for the tree
// invariants (see pivot_invariants_test.go), and naive reordering silently
// corrupts subsequent pivots. It is implemented as a single routine for
// that reason.
//
// dirtyRevs reuses st.dirtyRevsBuf (capacity allNodeNum, pre-allocated by
// allocateGraphStructures) instead of growing a fresh slice per pivot; its
// length is bounded by the stem length.
//
// Complexity: O(tree depth) amortized per pivot.
func updateSpanningTree(st *spanningTree, vIn, uIn, uOut, join, inArc int, source []int) {
	parent, thread, revThread := st.parent, st.thread, st.revThread
	succNum, lastSucc := st.succNum, st.lastSucc
	forward, pred := st.forward, st.pred

	oldRevThread := revThread[uOut]
	oldSuccNum := succNum[uOut]
	oldLastSucc := lastSucc[uOut]
	vOut := parent[uOut]

	u := lastSucc[uIn]
	right := thread[u]

	var last int
	if oldRevThread == vIn {
		last = thread[lastSucc[uOut]]
	} else {
		last = thread[vIn]
	}

	// Update thread and parent along the stem nodes (between uIn and uOut,
	// whose parent pointers must be reversed).
	thread[vIn] = uIn
	stem := uIn
	dirtyRevs := st.dirtyRevsBuf[:0]
	dirtyRevs = append(dirtyRevs, vIn)
	parStem := vIn
	for stem != uOut {
		newStem := parent[stem]
		thread[u] = newStem
		dirtyRevs = append(dirtyRevs, u)

		// Remove stem's old subtree from the thread list.
		w := revThread[stem]
		thread[w] = right
		revThread[right] = w

		parent[stem] = parStem
		parStem = stem
		stem = newStem

		if lastSucc[stem] == lastSucc[parStem] {
			u = revThread[parStem]
		} else {
			u = lastSucc[stem]
		}
		right = thread[u]
	}
	parent[uOut] = parStem
	thread[u] = last
	revThread[last] = u
	lastSucc[uOut] = u

	// Remove the subtree of uOut from the thread list, except when
	// oldRevThread == vIn (join and vOut coincide in that case).
	if oldRevThread != vIn {
		thread[oldRevThread] = right
		revThread[right] = oldRevThread
	}

	for _, uu := range dirtyRevs {
		revThread[thread[uu]] = uu
	}

	// Repair pred, forward, succNum and lastSucc for the stem nodes from
	// uOut to uIn.
	tmpSc := 0
	tmpLs := lastSucc[uOut]
	u = uOut
	for u != uIn {
		w := parent[u]
		pred[u] = pred[w]
		forward[u] = !forward[w]
		tmpSc += succNum[u] - succNum[w]
		succNum[u] = tmpSc
		lastSucc[w] = tmpLs
		u = w
	}

	pred[uIn] = inArc
	forward[uIn] = uIn == source[inArc]
	succNum[uIn] = oldSuccNum

	upLimitIn, upLimitOut := -1, -1
	if lastSucc[join] == vIn {
		upLimitOut = join
	} else {
		upLimitIn = join
	}

	for u = vIn; u != upLimitIn && lastSucc[u] == vIn; u = parent[u] {
		lastSucc[u] = lastSucc[uOut]
	}

	if join != oldRevThread && vIn != oldRevThread {
		for u = vOut; u != upLimitOut && lastSucc[u] == oldLastSucc; u = parent[u] {
			lastSucc[u] = oldRevThread
		}
	} else {
		for u = vOut; u != upLimitOut && lastSucc[u] == oldLastSucc; u = parent[u] {
			lastSucc[u] = lastSucc[uOut]
		}
	}

	for u = vIn; u != join; u = parent[u] {
		succNum[u] += oldSuccNum
	}
	for u = vOut; u != join; u = parent[u] {
		succNum[u] -= oldSuccNum
	}
}

// updatePotential recomputes node potentials (duals) for the subtree rooted
// at uIn, which has just been moved under vIn by updateSpanningTree. sigma
// is the single additive correction needed to keep every tree arc's
// reduced cost at zero (invariant I1).
//
// Complexity: O(size of the moved subtree).
func updatePotential(uIn, vIn int, pi, cost []float64, st *spanningTree) {
	var sigma float64
	if st.forward[uIn] {
		sigma = pi[vIn] - pi[uIn] - cost[st.pred[uIn]]
	} else {
		sigma = pi[vIn] - pi[uIn] + cost[st.pred[uIn]]
	}

	end := st.thread[st.lastSucc[uIn]]
	for u := uIn; u != end; u = st.thread[u] {
		pi[u] += sigma
	}
}
