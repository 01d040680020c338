// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

import "fmt"

// DuplicateKey is returned by Build when a node key appears more than once
// in the input node list.
type DuplicateKey[K comparable] struct {
	Key K
}

func (e *DuplicateKey[K]) Error() string {
	return fmt.Sprintf("digraph: duplicate node key %v", e.Key)
}

// UnknownKey is returned by Build when an edge names a key that does not
// appear in the input node list.
type UnknownKey[K comparable] struct {
	Key K
}

func (e *UnknownKey[K]) Error() string {
	return fmt.Sprintf("digraph: edge references unknown node key %v", e.Key)
}

// CycleFound is returned by Sort when g contains a directed cycle. Nodes
// holds every node that Kahn's algorithm never reached a zero in-degree
// for: the nodes on a cycle together with every node reachable from one.
type CycleFound struct {
	Nodes []NI
}

func (e CycleFound) Error() string {
	return fmt.Sprintf("digraph: cycle detected, %d node(s) involved", len(e.Nodes))
}
