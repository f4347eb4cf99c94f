package graph

import (
	"github.com/SingularityNET-Archive/meetgraph/pkg/extract"
	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
)

// Cooccurrence builds an undirected graph from item sets. Every distinct item
// becomes one node and every unordered pair inside a set adds 1 to the weight
// of its edge. Repeated items within a set are counted once, and sets with
// fewer than two distinct items contribute nothing.
func Cooccurrence(sets [][]string) *Undirected {
	g := NewUndirected()
	for _, set := range sets {
		items := distinct(set)
		if len(items) < 2 {
			continue
		}
		for _, it := range items {
			g.AddNode(NodeID(it))
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				// items are distinct, so AddEdge cannot fail
				_ = g.AddEdge(NodeID(items[i]), NodeID(items[j]), 1)
			}
		}
	}
	return g
}

func distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FieldCooccurrence builds the field co-occurrence graph of a document:
// nodes are JSON keys, weights count the objects in which two keys appear
// together.
func FieldCooccurrence(doc jsontree.Value) *Undirected {
	return Cooccurrence(extract.FieldCombinations(doc))
}

// Coattendance builds the co-attendance graph of meeting records: nodes are
// people, weights count the meetings two people both attended. Records with
// fewer than two participants are skipped.
func Coattendance(records []jsontree.Value) *Undirected {
	sets := make([][]string, 0, len(records))
	for _, rec := range records {
		sets = append(sets, extract.Participants(rec))
	}
	return Cooccurrence(sets)
}

// PathStructure builds the directed containment graph of path strings. A path
// with a structural parent gets an edge parent→path; a root-level path is
// added as a node on its own.
func PathStructure(paths []string) *Directed {
	g := NewDirected()
	for _, p := range paths {
		parent, ok := extract.StructuralParent(p)
		if !ok {
			g.AddNode(NodeID(p))
			continue
		}
		// a path never equals its own prefix, so no self loop
		_ = g.AddEdge(NodeID(parent), NodeID(p))
	}
	return g
}
