// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

import (
	"sort"

	"github.com/soniakeys/bits"
)

// SCC is the partition of a graph's nodes into strongly connected
// components, as produced by StronglyConnectedComponents.
//
// Components is ordered the way Pearce's accounting naturally produces
// it; callers needing a specific relation to the condensation's
// topological order should not depend on the order beyond what the
// package documents as tested.
type SCC struct {
	Components [][]NI
	membership []int
}

// Len returns the number of components.
func (s *SCC) Len() int { return len(s.Components) }

// ComponentOf returns the index into Components that node v belongs to.
func (s *SCC) ComponentOf(v NI) int { return s.membership[v] }

// StronglyConnectedComponents partitions the nodes of g into maximal
// strongly connected sets.
//
// This is David Pearce's algorithm ("An Improved Algorithm for Finding
// the Strongly Connected Components of a Directed Graph", IPL 116
// (2016) 47-52), converted from the single-pass recursive depth-first
// search description into an explicit-stack iterative form so that
// recursion depth never grows with graph depth. Three explicit stacks
// replace the call stack: vsFront (the DFS call stack), vsBack (nodes
// not yet assigned to a component), and iS (each frame's next-successor
// cursor, the only piece of per-frame state beyond what already lives in
// the flat per-node arrays rindex/root).
//
// Complexity is O(V + E) time, O(V) extra space.
func StronglyConnectedComponents(g View) *SCC {
	n := g.NodeCount()
	// A sub-view keeps its parent's node indices, so per-node state is
	// sized to the largest exposed index rather than to n.
	size := 0
	for _, v := range g.Nodes() {
		if int(v) >= size {
			size = int(v) + 1
		}
	}
	rindex := make([]int, size)
	root := bits.New(size)
	index := 1
	c := n - 1

	var vsFront []NI
	var vsBack []NI
	var iS []int

	for _, v0 := range g.Nodes() {
		if rindex[v0] != 0 {
			continue
		}

		vsFront = append(vsFront, v0)
		iS = append(iS, 0)
		root.SetBit(int(v0), 1)
		rindex[v0] = index
		index++

		for len(vsFront) > 0 {
			v := vsFront[len(vsFront)-1]
			i := iS[len(iS)-1]
			succ := g.Successors(v)

			if i > 0 {
				w := succ[i-1]
				if rindex[w] < rindex[v] {
					rindex[v] = rindex[w]
					root.SetBit(int(v), 0)
				}
			}

			if i < len(succ) {
				w := succ[i]
				if rindex[w] == 0 {
					iS[len(iS)-1] = i + 1
					vsFront = append(vsFront, w)
					iS = append(iS, 0)
					root.SetBit(int(w), 1)
					rindex[w] = index
					index++
					continue
				}
				iS[len(iS)-1] = i + 1
				continue
			}

			// FinishVisit(v)
			vsFront = vsFront[:len(vsFront)-1]
			iS = iS[:len(iS)-1]
			if root.Bit(int(v)) == 1 {
				index--
				for len(vsBack) > 0 && rindex[v] <= rindex[vsBack[len(vsBack)-1]] {
					w := vsBack[len(vsBack)-1]
					vsBack = vsBack[:len(vsBack)-1]
					rindex[w] = c
					index--
				}
				rindex[v] = c
				c--
			} else {
				vsBack = append(vsBack, v)
			}
		}
	}

	buckets := make(map[int][]NI)
	for _, v := range g.Nodes() {
		lbl := rindex[v]
		buckets[lbl] = append(buckets[lbl], v)
	}
	labels := make([]int, 0, len(buckets))
	for lbl := range buckets {
		labels = append(labels, lbl)
	}
	sort.Ints(labels)

	comps := make([][]NI, len(labels))
	membership := make([]int, size)
	for ci, lbl := range labels {
		comps[ci] = buckets[lbl]
		for _, v := range buckets[lbl] {
			membership[v] = ci
		}
	}

	return &SCC{Components: comps, membership: membership}
}
