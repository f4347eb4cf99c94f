package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
)

// Clustering holds local clustering coefficients and their aggregates.
type Clustering struct {
	Nodes        []graph.NodeID
	Local        map[graph.NodeID]float64
	Average      float64
	Transitivity float64
}

// Top returns the n nodes with the highest local coefficient.
func (c Clustering) Top(n int) []NodeScore {
	return Rank(c.Nodes, c.Local, n)
}

// ComputeClustering returns the local clustering coefficient of every node,
// their mean over all nodes, and the global transitivity.
//
// When weighted is set, triangles contribute the geometric mean of their
// edge weights, each divided by the maximum weight in the graph. Transitivity
// always counts plain triangles.
func ComputeClustering(g *graph.Undirected, weighted bool) Clustering {
	n := g.NodeCount()
	c := Clustering{Nodes: g.Nodes(), Local: make(map[graph.NodeID]float64, n)}
	if n == 0 {
		return c
	}

	adj := adjacency(g)
	gg := g.Gonum()
	maxWeight := 1.0
	if weighted {
		maxWeight = 0
		for _, e := range g.Edges() {
			maxWeight = max(maxWeight, float64(e.Weight))
		}
		if maxWeight == 0 {
			maxWeight = 1
		}
	}
	wt := func(u, v int) float64 {
		w, ok := gg.Weight(int64(u), int64(v))
		if !ok {
			return 0
		}
		return w / maxWeight
	}

	values := make([]float64, n)
	var triangles, triples float64
	for v, nbrs := range adj {
		d := len(nbrs)
		var t, wsum float64
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				a, b := nbrs[i], nbrs[j]
				if !gg.HasEdgeBetween(int64(a), int64(b)) {
					continue
				}
				t++
				if weighted {
					wsum += math.Cbrt(wt(v, a) * wt(v, b) * wt(a, b))
				}
			}
		}
		triangles += 2 * t
		triples += float64(d * (d - 1))

		if d < 2 {
			continue
		}
		if weighted {
			t = wsum
		}
		values[v] = 2 * t / float64(d*(d-1))
	}

	for i, id := range c.Nodes {
		c.Local[id] = values[i]
	}
	c.Average = stat.Mean(values, nil)
	if triangles > 0 {
		c.Transitivity = triangles / triples
	}
	return c
}
