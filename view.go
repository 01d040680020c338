// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

// Graph is an immutable, CSR-backed Graph View over a set of caller keys
// of type K. It is built once by Build and read concurrently thereafter;
// no method on Graph mutates it.
//
// The CSR (offsets + flat targets) layout favors cache locality for
// successor iteration over a per-node []NI slice-of-slices, at the cost
// of making Build a two-pass construction (count, then fill).
type Graph[K comparable] struct {
	keys  []K
	index map[K]NI
	off   []int32
	adj   []NI
	nodes []NI
}

// NodeCount returns n, the number of nodes in g.
func (g *Graph[K]) NodeCount() int { return len(g.keys) }

// HasNode reports whether i is a valid node index of g.
func (g *Graph[K]) HasNode(i NI) bool {
	return i >= 0 && int(i) < len(g.keys)
}

// Nodes returns the node indices of g, in the insertion order of the
// original keys argument to Build.
func (g *Graph[K]) Nodes() []NI { return g.nodes }

// Successors returns the ordered, duplicate-free list of nodes v such
// that (u, v) is an edge of g. The returned slice must not be modified.
func (g *Graph[K]) Successors(u NI) []NI {
	return g.adj[g.off[u]:g.off[u+1]]
}

// KeyOf returns the caller-supplied key that was assigned index i at
// Build time.
func (g *Graph[K]) KeyOf(i NI) K { return g.keys[i] }

// IndexOf returns the node index assigned to key k, and false if k was
// never a member of the node list this graph was built from.
func (g *Graph[K]) IndexOf(k K) (NI, bool) {
	i, ok := g.index[k]
	return i, ok
}
