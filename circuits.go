// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

import "github.com/soniakeys/bits"

// ElementaryCircuits enumerates every elementary circuit of g: closed
// directed paths with no repeated node except the shared first/last node.
// Each circuit is returned as a node sequence whose first and last
// elements are equal; a self-loop (u, u) yields the circuit [u, u].
//
// Duplicate rotations of the same cycle are never emitted: each circuit
// is returned in its canonical form, the rotation starting at its least
// node index, following Johnson's own discipline for the outer loop
// variable conventionally named s.
//
// This is Donald Johnson's algorithm ("Finding All the Elementary
// Circuits of a Directed Graph", SIAM J. Comput. 4(1), 1975). The outer
// loop advances a least-vertex frontier s, decomposing the subgraph
// induced by {v : v >= s} into strongly connected components via
// StronglyConnectedComponents and searching only the least, non-trivial
// one at each step. The inner search is Johnson's CIRCUIT procedure,
// converted from recursion to an explicit stack of (node, successor
// cursor, found-a-circuit-in-this-subtree) frames so recursion depth
// never grows with path length; UNBLOCK is similarly iterative.
//
// Complexity is O((V + E)(C + 1)) where C is the number of elementary
// circuits, matching Johnson's bound.
func ElementaryCircuits(g View) [][]NI {
	n := g.NodeCount()
	var result [][]NI

	for s := NI(0); int(s) < n; {
		sub := hideBelow(g, n, s)
		if sub.NodeCount() == 0 {
			break
		}

		scc := StronglyConnectedComponents(sub)
		var chosen []NI
		chosenMin := NI(-1)
		for _, comp := range scc.Components {
			if !nonTrivial(sub, comp) {
				continue
			}
			if m := minNode(comp); chosenMin == -1 || m < chosenMin {
				chosenMin = m
				chosen = comp
			}
		}
		if chosen == nil {
			break
		}

		root := chosenMin
		compView := hideExcept(g, n, chosen)
		result = append(result, searchCircuits(compView, root)...)
		s = root + 1
	}

	return result
}

func nonTrivial(g View, comp []NI) bool {
	if len(comp) > 1 {
		return true
	}
	for _, w := range g.Successors(comp[0]) {
		if w == comp[0] {
			return true
		}
	}
	return false
}

func minNode(comp []NI) NI {
	m := comp[0]
	for _, v := range comp[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// circuitFrame is one stack frame of the CIRCUIT(v) procedure: the node
// being explored, the index of its next successor to examine, and
// whether this subtree has produced a circuit (governing UNBLOCK vs the
// B-map bookkeeping on frame completion).
type circuitFrame struct {
	v     NI
	i     int
	found bool
}

// searchCircuits runs Johnson's CIRCUIT(root) over g, which callers
// restrict to a single strongly connected component so root is both the
// search root and the least vertex in that component.
func searchCircuits(g View, root NI) [][]NI {
	n := 0
	for _, v := range g.Nodes() {
		if int(v) >= n {
			n = int(v) + 1
		}
	}
	blocked := bits.New(n)
	b := make([][]NI, n)

	var result [][]NI
	var path []NI
	var stack []circuitFrame

	stack = append(stack, circuitFrame{v: root})
	path = append(path, root)
	blocked.SetBit(int(root), 1)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		succ := g.Successors(top.v)

		if top.i < len(succ) {
			w := succ[top.i]
			top.i++
			switch {
			case w == root:
				circuit := make([]NI, len(path)+1)
				copy(circuit, path)
				circuit[len(path)] = root
				result = append(result, circuit)
				top.found = true
			case blocked.Bit(int(w)) == 0:
				blocked.SetBit(int(w), 1)
				path = append(path, w)
				stack = append(stack, circuitFrame{v: w})
			}
			continue
		}

		v := top.v
		found := top.found
		stack = stack[:len(stack)-1]
		path = path[:len(path)-1]

		if found {
			unblock(v, blocked, b)
			if len(stack) > 0 {
				stack[len(stack)-1].found = true
			}
		} else {
			for _, w := range g.Successors(v) {
				if !contains(b[w], v) {
					b[w] = append(b[w], v)
				}
			}
		}
	}

	return result
}

// unblock is Johnson's UNBLOCK(v): clear v's blocked bit, then do the
// same for every u recorded in B[v], recursively. Implemented iteratively
// with a pending-work stack so it never recurses as deep as the graph.
func unblock(v NI, blocked bits.Bits, b [][]NI) {
	pending := []NI{v}
	for len(pending) > 0 {
		u := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if blocked.Bit(int(u)) == 0 {
			continue
		}
		blocked.SetBit(int(u), 0)
		pending = append(pending, b[u]...)
		b[u] = b[u][:0]
	}
}

func contains(s []NI, v NI) bool {
	for _, u := range s {
		if u == v {
			return true
		}
	}
	return false
}
