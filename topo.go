// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

import (
	"cmp"
	"container/heap"
)

// Sort computes a topological ordering of g using Kahn's algorithm: nodes
// with zero remaining in-degree are held in a min-heap ordered by ord,
// extracted one at a time, and their successors' in-degrees decremented,
// pushing any that newly reach zero.
//
// When several nodes become available simultaneously, ord breaks the tie;
// nodes with equal ord values fall back to ascending node index, so the
// output is bit-identical across runs for the same (g, ord).
//
// Sort returns a CycleFound error, discarding the partial ordering, if
// fewer than g.NodeCount() nodes can be emitted.
func Sort[O cmp.Ordered](g View, ord func(NI) O) ([]NI, error) {
	n := g.NodeCount()
	nodes := g.Nodes()

	indeg := make([]int, n)
	for _, u := range nodes {
		for _, v := range g.Successors(u) {
			indeg[v]++
		}
	}

	q := &ordHeap[O]{}
	for _, u := range nodes {
		if indeg[u] == 0 {
			heap.Push(q, ordItem[O]{node: u, key: ord(u)})
		}
	}

	order := make([]NI, 0, n)
	for q.Len() > 0 {
		u := heap.Pop(q).(ordItem[O]).node
		order = append(order, u)
		for _, v := range g.Successors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(q, ordItem[O]{node: v, key: ord(v)})
			}
		}
	}

	if len(order) != n {
		var remaining []NI
		for _, u := range nodes {
			if indeg[u] > 0 {
				remaining = append(remaining, u)
			}
		}
		return nil, CycleFound{Nodes: remaining}
	}
	return order, nil
}

// SortDefault calls Sort with each node's own index as its ord key, so
// ties are broken by ascending node index. Sort itself requires a non-nil
// ord.
func SortDefault(g View) ([]NI, error) {
	return Sort(g, func(n NI) NI { return n })
}

// ordItem and ordHeap implement the usual container/heap idiom: a slice
// of scored records satisfying heap.Interface, generalized here over any
// cmp.Ordered score type.
type ordItem[O cmp.Ordered] struct {
	node NI
	key  O
}

type ordHeap[O cmp.Ordered] []ordItem[O]

func (h ordHeap[O]) Len() int { return len(h) }

func (h ordHeap[O]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].node < h[j].node
}

func (h ordHeap[O]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *ordHeap[O]) Push(x any) {
	*h = append(*h, x.(ordItem[O]))
}

func (h *ordHeap[O]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
