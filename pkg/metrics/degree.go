package metrics

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
)

// NodeDegree pairs a node with its degree.
type NodeDegree struct {
	Node   graph.NodeID
	Degree int
}

// DegreeCount is one bucket of a degree distribution.
type DegreeCount struct {
	Degree int
	Count  int
}

// DegreeSummary holds aggregate degree statistics.
type DegreeSummary struct {
	Nodes int
	Min   int
	Max   int
	Mean  float64
}

// Degree returns the number of distinct neighbours of every node.
func Degree(g graph.View) map[graph.NodeID]int {
	out := make(map[graph.NodeID]int, g.NodeCount())
	for _, id := range g.Nodes() {
		out[id] = g.Degree(id)
	}
	return out
}

// Degrees returns every node with its degree, in insertion order.
func Degrees(g graph.View) []NodeDegree {
	nodes := g.Nodes()
	out := make([]NodeDegree, len(nodes))
	for i, id := range nodes {
		out[i] = NodeDegree{Node: id, Degree: g.Degree(id)}
	}
	return out
}

// SortByDegree returns a copy of degrees ordered by degree descending. Ties
// keep their input order.
func SortByDegree(degrees []NodeDegree) []NodeDegree {
	sorted := slices.Clone(degrees)
	slices.SortStableFunc(sorted, func(a, b NodeDegree) int {
		return cmp.Compare(b.Degree, a.Degree)
	})
	return sorted
}

// TopByDegree returns the n highest-degree nodes.
func TopByDegree(g graph.View, n int) []NodeDegree {
	return head(SortByDegree(Degrees(g)), n)
}

// DegreeDistribution counts nodes per degree, ordered by degree ascending.
func DegreeDistribution(g graph.View) []DegreeCount {
	counts := map[int]int{}
	for _, d := range Degrees(g) {
		counts[d.Degree]++
	}
	out := make([]DegreeCount, 0, len(counts))
	for deg, c := range counts {
		out = append(out, DegreeCount{Degree: deg, Count: c})
	}
	slices.SortFunc(out, func(a, b DegreeCount) int { return cmp.Compare(a.Degree, b.Degree) })
	return out
}

// SummarizeDegrees returns min, max and mean degree. An empty graph yields
// the zero summary.
func SummarizeDegrees(g graph.View) DegreeSummary {
	degrees := Degrees(g)
	if len(degrees) == 0 {
		return DegreeSummary{}
	}
	values := make([]float64, len(degrees))
	s := DegreeSummary{Nodes: len(degrees), Min: degrees[0].Degree, Max: degrees[0].Degree}
	for i, d := range degrees {
		values[i] = float64(d.Degree)
		s.Min = min(s.Min, d.Degree)
		s.Max = max(s.Max, d.Degree)
	}
	s.Mean = stat.Mean(values, nil)
	return s
}

// CoreAndPeriphery splits the degree ranking into its top and bottom fifth.
// Each side holds max(1, n/5) nodes; the sides may overlap on tiny graphs.
func CoreAndPeriphery(g graph.View) (core, periphery []NodeDegree) {
	ranked := SortByDegree(Degrees(g))
	if len(ranked) == 0 {
		return nil, nil
	}
	k := max(1, len(ranked)/5)
	return ranked[:k], ranked[len(ranked)-k:]
}

func head[T any](s []T, n int) []T {
	if n >= 0 && n < len(s) {
		return s[:n]
	}
	return s
}
