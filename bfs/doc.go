// Package bfs: hop-count traversal used as a cheap reachability pass.
//
// The multi-target selector runs BFS once from the anchor before launching
// any combined-cost search: a target in another connected component is
// reported unreachable without running Dijkstra at all.
//
// BFS(adj, start) returns hop depths indexed by vertex ID; unseen vertices
// carry Unreached. An OnVisit hook sees each vertex in visit order with its
// depth. Components labels connected components by their smallest vertex ID;
// the session view exposes those labels so clients can shade the regions an
// anchor cannot reach.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
