// Package metrics computes graph statistics over [graph.Undirected] values.
//
// # Overview
//
// Every analysis is a thin adapter over gonum:
//
//   - degree, degree distribution and rankings: neighbour counts
//   - betweenness: gonum/graph/network.Betweenness, normalised
//   - closeness: breadth-first distances from gonum/graph/traverse
//   - eigenvector: power iteration with gonum/floats
//   - clustering and transitivity: neighbour intersections
//   - connected components: gonum/graph/topo.ConnectedComponents
//
// Scores follow the conventions of the networkx scripts the reports were
// first produced with, so numbers stay comparable across tools: betweenness
// is normalised by 1/((n-1)(n-2)), closeness uses the Wasserman-Faust
// correction for disconnected graphs, and eigenvector centrality iterates on
// A+I with tolerance n·1e-6.
//
// # Edge cases
//
// Empty graphs short-circuit every computation to empty results without
// calling into gonum. When power iteration does not converge, [Eigenvector]
// returns [ErrNotConverged] and [ComputeCentrality] substitutes zero for every
// node.
//
// # Ordering
//
// Rankings are stable: ties keep the insertion order of the graph, so the
// same document always produces the same tables.
package metrics
