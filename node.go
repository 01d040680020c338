// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

// NI is a "node int," a dense node index assigned at build time.
//
// It is used extensively as a slice index. Node numbers also account for
// a significant fraction of the memory required to represent a graph.
type NI int32

// View is the minimum read-only capability set the SCC, circuits, and
// topological sort engines require. A Graph never exposes a node outside
// [0, NodeCount()); the package's internal sub-views expose a subset of
// their parent's indices, which can lie at or past their own NodeCount().
// Successors(u) is always a subset of Nodes().
//
// Implementations must give Successors a stable order across repeated
// calls: several algorithms in this package are sensitive to it for
// determinism of output.
type View interface {
	// NodeCount returns n, the number of nodes exposed by the view.
	NodeCount() int

	// HasNode reports whether i is a currently-exposed node index.
	HasNode(i NI) bool

	// Nodes returns the exposed node indices, in insertion order for a
	// freshly built Graph, or in the order the parent view exposes them
	// for a sub-view.
	Nodes() []NI

	// Successors returns the ordered sequence of nodes v such that (u, v)
	// is an edge exposed by this view. The caller must not mutate the
	// returned slice.
	Successors(u NI) []NI
}
