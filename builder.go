// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package digraph

// Build constructs an immutable Graph from a list of node keys and a list
// of key-pair edges. Node indices are assigned in the order keys appear
// in nodes, so the returned Graph's Nodes() is [0, len(nodes)).
//
// Build returns *DuplicateKey if a key appears more than once in nodes,
// and *UnknownKey if an edge names a key absent from nodes. Parallel
// edges (repeated (u, v) pairs, in either key or resolved-index form) are
// coalesced: they carry no semantic weight and would otherwise cause the
// circuits engine to revisit the same successor twice from one node.
//
// Complexity is O(V + E).
func Build[K comparable](nodes []K, edges [][2]K) (*Graph[K], error) {
	index := make(map[K]NI, len(nodes))
	keys := make([]K, len(nodes))
	for i, k := range nodes {
		if _, dup := index[k]; dup {
			return nil, &DuplicateKey[K]{Key: k}
		}
		index[k] = NI(i)
		keys[i] = k
	}

	succ := make([][]NI, len(nodes))
	seen := make([]map[NI]bool, len(nodes))
	for _, e := range edges {
		u, ok := index[e[0]]
		if !ok {
			return nil, &UnknownKey[K]{Key: e[0]}
		}
		v, ok := index[e[1]]
		if !ok {
			return nil, &UnknownKey[K]{Key: e[1]}
		}
		if seen[u] == nil {
			seen[u] = make(map[NI]bool)
		}
		if seen[u][v] {
			continue
		}
		seen[u][v] = true
		succ[u] = append(succ[u], v)
	}

	off := make([]int32, len(nodes)+1)
	for i, s := range succ {
		off[i+1] = off[i] + int32(len(s))
	}
	adj := make([]NI, off[len(nodes)])
	for i, s := range succ {
		copy(adj[off[i]:], s)
	}
	all := make([]NI, len(nodes))
	for i := range all {
		all[i] = NI(i)
	}

	return &Graph[K]{keys: keys, index: index, off: off, adj: adj, nodes: all}, nil
}
