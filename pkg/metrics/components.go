package metrics

import (
	"cmp"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
)

// Components describes the connected components of an undirected graph.
// Groups are ordered by size descending; equal sizes keep the order in which
// their first member was added to the graph. Members are in insertion order.
type Components struct {
	Groups   [][]graph.NodeID
	Sizes    []int
	Largest  int
	MeanSize float64
}

// Count returns the number of components.
func (c Components) Count() int { return len(c.Groups) }

// LargestSample returns up to n members of the largest component.
func (c Components) LargestSample(n int) []graph.NodeID {
	if len(c.Groups) == 0 {
		return nil
	}
	return head(c.Groups[0], n)
}

// ComputeComponents partitions g into connected components.
func ComputeComponents(g *graph.Undirected) Components {
	var c Components
	if g.NodeCount() == 0 {
		return c
	}

	raw := topo.ConnectedComponents(g.Gonum())
	ids := make([][]int64, len(raw))
	for i, comp := range raw {
		ids[i] = nodeIDs(comp)
	}
	slices.SortFunc(ids, func(a, b []int64) int { return cmp.Compare(a[0], b[0]) })
	slices.SortStableFunc(ids, func(a, b []int64) int { return cmp.Compare(len(b), len(a)) })

	total := 0
	for _, members := range ids {
		group := make([]graph.NodeID, len(members))
		for j, n := range members {
			group[j] = g.NodeOf(n)
		}
		c.Groups = append(c.Groups, group)
		c.Sizes = append(c.Sizes, len(group))
		total += len(group)
	}
	c.Largest = c.Sizes[0]
	c.MeanSize = float64(total) / float64(len(c.Groups))
	return c
}

func nodeIDs(nodes []gonum.Node) []int64 {
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	slices.Sort(out)
	return out
}
