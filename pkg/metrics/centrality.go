package metrics

import (
	"cmp"
	"errors"
	"slices"

	"gonum.org/v1/gonum/floats"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
)

const (
	eigenMaxIter = 1000
	eigenTol     = 1e-6
)

// ErrNotConverged is returned by [Eigenvector] when power iteration does not
// settle within the iteration limit.
var ErrNotConverged = errors.New("eigenvector centrality did not converge")

// NodeScore pairs a node with a real-valued score.
type NodeScore struct {
	Node  graph.NodeID
	Score float64
}

// Centrality holds the four per-node centrality measures of a graph.
type Centrality struct {
	Nodes       []graph.NodeID
	Degree      map[graph.NodeID]float64
	Betweenness map[graph.NodeID]float64
	Closeness   map[graph.NodeID]float64
	Eigenvector map[graph.NodeID]float64

	// EigenvectorConverged is false when Eigenvector holds the zero
	// fallback instead of real scores.
	EigenvectorConverged bool
}

// ComputeCentrality computes degree, betweenness, closeness and eigenvector
// centrality for every node of g.
func ComputeCentrality(g *graph.Undirected) Centrality {
	c := Centrality{
		Nodes:                g.Nodes(),
		Degree:               DegreeCentrality(g),
		Betweenness:          Betweenness(g),
		Closeness:            Closeness(g),
		EigenvectorConverged: true,
	}
	eig, err := Eigenvector(g)
	if err != nil {
		c.EigenvectorConverged = false
		eig = make(map[graph.NodeID]float64, len(c.Nodes))
		for _, id := range c.Nodes {
			eig[id] = 0
		}
	}
	c.Eigenvector = eig
	return c
}

// TopBy ranks nodes by one of the centrality maps, highest first.
func (c Centrality) TopBy(scores map[graph.NodeID]float64, n int) []NodeScore {
	return Rank(c.Nodes, scores, n)
}

// Rank orders nodes by score descending, keeping the order of nodes for ties,
// and returns at most n entries. A negative n returns every node.
func Rank(nodes []graph.NodeID, scores map[graph.NodeID]float64, n int) []NodeScore {
	out := make([]NodeScore, len(nodes))
	for i, id := range nodes {
		out[i] = NodeScore{Node: id, Score: scores[id]}
	}
	slices.SortStableFunc(out, func(a, b NodeScore) int { return cmp.Compare(b.Score, a.Score) })
	return head(out, n)
}

// DegreeCentrality returns degree/(n-1) per node. A single isolated node
// scores 1.
func DegreeCentrality(g *graph.Undirected) map[graph.NodeID]float64 {
	n := g.NodeCount()
	out := make(map[graph.NodeID]float64, n)
	if n == 1 {
		out[g.Nodes()[0]] = 1
		return out
	}
	for _, id := range g.Nodes() {
		out[id] = float64(g.Degree(id)) / float64(n-1)
	}
	return out
}

// Betweenness returns normalised shortest-path betweenness. gonum sums over
// ordered pairs, so the scale is 1/((n-1)(n-2)); graphs with two or fewer
// nodes score zero everywhere.
func Betweenness(g *graph.Undirected) map[graph.NodeID]float64 {
	n := g.NodeCount()
	out := make(map[graph.NodeID]float64, n)
	if n == 0 {
		return out
	}
	var raw map[int64]float64
	scale := 0.0
	if n > 2 {
		raw = network.Betweenness(g.Gonum())
		scale = 1 / float64((n-1)*(n-2))
	}
	for i, id := range g.Nodes() {
		out[id] = raw[int64(i)] * scale
	}
	return out
}

// Closeness returns closeness centrality with the Wasserman-Faust correction:
// (r-1)/total · (r-1)/(n-1), where r counts the nodes reachable from v
// (including v) and total is the sum of their hop distances.
func Closeness(g *graph.Undirected) map[graph.NodeID]float64 {
	n := g.NodeCount()
	out := make(map[graph.NodeID]float64, n)
	if n == 0 {
		return out
	}
	gg := g.Gonum()
	var bf traverse.BreadthFirst
	for i, id := range g.Nodes() {
		total, reached := 0, 0
		bf.Walk(gg, simple.Node(int64(i)), func(_ gonum.Node, d int) bool {
			total += d
			reached++
			return false
		})
		bf.Reset()

		if total == 0 || n < 2 {
			out[id] = 0
			continue
		}
		r := float64(reached - 1)
		out[id] = r / float64(total) * r / float64(n-1)
	}
	return out
}

// Eigenvector returns eigenvector centrality by power iteration on A+I,
// starting from the uniform vector and normalising by the L2 norm each step.
func Eigenvector(g *graph.Undirected) (map[graph.NodeID]float64, error) {
	n := g.NodeCount()
	out := make(map[graph.NodeID]float64, n)
	if n == 0 {
		return out, nil
	}
	adj := adjacency(g)

	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}
	last := make([]float64, n)
	for range eigenMaxIter {
		copy(last, x)
		for v, nbrs := range adj {
			for _, u := range nbrs {
				x[u] += last[v]
			}
		}
		norm := floats.Norm(x, 2)
		if norm == 0 {
			norm = 1
		}
		floats.Scale(1/norm, x)
		if floats.Distance(x, last, 1) < float64(n)*eigenTol {
			for i, id := range g.Nodes() {
				out[id] = x[i]
			}
			return out, nil
		}
	}
	return nil, ErrNotConverged
}

// adjacency lists neighbours by dense index, each list ascending.
func adjacency(g *graph.Undirected) [][]int {
	gg := g.Gonum()
	adj := make([][]int, g.NodeCount())
	for i := range adj {
		it := gg.From(int64(i))
		for it.Next() {
			adj[i] = append(adj[i], int(it.Node().ID()))
		}
		slices.Sort(adj[i])
	}
	return adj
}
