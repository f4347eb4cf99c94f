// Package graph is the single graph module shared by every analysis.
//
// # Overview
//
// Three graphs are derived from a meeting-summary document:
//
//   - field co-occurrence: [FieldCooccurrence], undirected and weighted
//   - co-attendance: [Coattendance], undirected and weighted
//   - path structure: [PathStructure], directed and unweighted
//
// All of them are built from the same two types. [Undirected] stores
// accumulated [Weight] values on edges; [Directed] stores at most one edge per
// ordered pair, and re-adding an edge is a no-op. Both are backed by gonum's
// simple graphs so the metrics package can run gonum algorithms on them
// directly through [Undirected.Gonum].
//
// # Identity and order
//
// Nodes are identified by [NodeID] strings. Internally each node also has a
// dense gonum ID equal to its insertion index, which lets callers use plain
// slices for per-node scores. Every listing ([Undirected.Nodes],
// [Undirected.Edges], [Undirected.Neighbors]) follows insertion order, so
// reports built from the same document are identical run to run.
//
// Self loops are never created: [Undirected.AddEdge] and [Directed.AddEdge]
// reject them with [ErrSelfLoop].
//
// # Export
//
// Any graph can be written as a node-link JSON [Document], as Graphviz DOT
// ([ToDOT], rendered to SVG with [RenderSVG]) or as GEXF 1.2 ([WriteGEXF]) for
// Gephi.
//
//	g := graph.FieldCooccurrence(doc)
//	fmt.Println(g.NodeCount(), g.EdgeCount())
//	svg, err := graph.RenderSVG(ctx, graph.ToDOT(g, graph.DOTOptions{Weights: true}))
package graph
