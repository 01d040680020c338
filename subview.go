// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

import "github.com/soniakeys/bits"

// subView is a Graph View that hides a subset of a parent view's nodes,
// filtering Nodes and Successors on the fly without copying the parent's
// storage. It is how the circuits engine restricts its search to the
// subgraph induced by {v : v >= s}, and then further to a single
// strongly connected component within that subgraph.
//
// hidden is sized to the parent's full node-index space, mirroring the
// bitset-for-boolean-state idiom this package uses throughout (see
// scc.go's root flags).
type subView struct {
	parent View
	hidden bits.Bits
	nodes  []NI
}

func newSubView(parent View, hidden bits.Bits) *subView {
	sv := &subView{parent: parent, hidden: hidden}
	for _, n := range parent.Nodes() {
		if hidden.Bit(int(n)) == 0 {
			sv.nodes = append(sv.nodes, n)
		}
	}
	return sv
}

func (s *subView) NodeCount() int { return len(s.nodes) }

func (s *subView) HasNode(i NI) bool {
	return s.parent.HasNode(i) && hidden(s.hidden, i) == 0
}

func (s *subView) Nodes() []NI { return s.nodes }

func (s *subView) Successors(u NI) []NI {
	if hidden(s.hidden, u) == 1 {
		return nil
	}
	parentSucc := s.parent.Successors(u)
	out := make([]NI, 0, len(parentSucc))
	for _, v := range parentSucc {
		if hidden(s.hidden, v) == 0 {
			out = append(out, v)
		}
	}
	return out
}

func hidden(h bits.Bits, i NI) int {
	if i < 0 {
		return 1
	}
	return h.Bit(int(i))
}

// hideBelow returns a subView of g exposing only nodes with index >= s.
func hideBelow(g View, n int, s NI) *subView {
	h := bits.New(n)
	for i := 0; i < int(s) && i < n; i++ {
		h.SetBit(i, 1)
	}
	return newSubView(g, h)
}

// hideExcept returns a subView of g exposing only the nodes in keep.
func hideExcept(g View, n int, keep []NI) *subView {
	h := bits.New(n)
	for i := 0; i < n; i++ {
		h.SetBit(i, 1)
	}
	for _, v := range keep {
		h.SetBit(int(v), 0)
	}
	return newSubView(g, h)
}
