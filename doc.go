// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package digraph is a small library of algorithms over finite directed
// graphs.
//
// The package centers on two classical algorithms implemented as
// non-recursive procedures so they scale to graphs whose depth would
// overflow the native call stack: Pearce's iterative strongly connected
// components algorithm and Johnson's elementary circuits enumeration.
// A topological sort and a minimal read-only graph view round out the
// package.
//
// Representation
//
// Graphs are built once from a list of caller-supplied keys and a list of
// key-pair edges, and presented afterward as an immutable View: a dense
// node index space [0, n), stable per-node successor ordering, and O(1)
// lookups. Views never mutate and may be read concurrently by any number
// of algorithm invocations.
//
// Terminology
//
// This package uses "node" rather than "vertex" and refers to a node's
// user-supplied identity as its "key," reserving "index" for the dense
// internal node number assigned at build time. An "elementary circuit" is
// a closed directed path with no repeated node other than the shared
// first/last node; a "strongly connected component" is a maximal set of
// nodes each mutually reachable from every other.
package digraph
