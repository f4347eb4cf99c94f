package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
)

const tol = 1e-4

func buildGraph(t *testing.T, edges ...[2]graph.NodeID) *graph.Undirected {
	t.Helper()
	g := graph.NewUndirected()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// triangle a-b-c with pendant d on c.
func pendantTriangle(t *testing.T) *graph.Undirected {
	return buildGraph(t, [2]graph.NodeID{"a", "b"}, [2]graph.NodeID{"b", "c"},
		[2]graph.NodeID{"a", "c"}, [2]graph.NodeID{"c", "d"})
}

func TestDegreeRanking(t *testing.T) {
	g := pendantTriangle(t)

	wantTop := []NodeDegree{{"c", 3}, {"a", 2}, {"b", 2}, {"d", 1}}
	if diff := cmp.Diff(wantTop, TopByDegree(g, 10)); diff != "" {
		t.Errorf("TopByDegree (-want +got):\n%s", diff)
	}
	if got := TopByDegree(g, 2); len(got) != 2 {
		t.Errorf("TopByDegree(2) returned %d entries", len(got))
	}

	wantDist := []DegreeCount{{1, 1}, {2, 2}, {3, 1}}
	if diff := cmp.Diff(wantDist, DegreeDistribution(g)); diff != "" {
		t.Errorf("DegreeDistribution (-want +got):\n%s", diff)
	}

	s := SummarizeDegrees(g)
	if s.Min != 1 || s.Max != 3 || s.Nodes != 4 || !scalar.EqualWithinAbs(s.Mean, 2, tol) {
		t.Errorf("SummarizeDegrees = %+v", s)
	}

	core, periphery := CoreAndPeriphery(g)
	if diff := cmp.Diff([]NodeDegree{{"c", 3}}, core); diff != "" {
		t.Errorf("core (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]NodeDegree{{"d", 1}}, periphery); diff != "" {
		t.Errorf("periphery (-want +got):\n%s", diff)
	}

	if got := Degree(g)["c"]; got != 3 {
		t.Errorf("Degree[c] = %d, want 3", got)
	}
}

func TestCentralityPath(t *testing.T) {
	g := buildGraph(t, [2]graph.NodeID{"a", "b"}, [2]graph.NodeID{"b", "c"})
	c := ComputeCentrality(g)

	tests := []struct {
		name string
		got  map[graph.NodeID]float64
		want map[graph.NodeID]float64
	}{
		{"degree", c.Degree, map[graph.NodeID]float64{"a": 0.5, "b": 1, "c": 0.5}},
		{"closeness", c.Closeness, map[graph.NodeID]float64{"a": 2.0 / 3, "b": 1, "c": 2.0 / 3}},
		{"eigenvector", c.Eigenvector, map[graph.NodeID]float64{"a": 0.5, "b": 0.70711, "c": 0.5}},
	}
	for _, tt := range tests {
		for id, want := range tt.want {
			if got := tt.got[id]; !scalar.EqualWithinAbs(got, want, 1e-3) {
				t.Errorf("%s[%s] = %.5f, want %.5f", tt.name, id, got, want)
			}
		}
	}

	if !c.EigenvectorConverged {
		t.Error("eigenvector should converge on a path graph")
	}
	if c.Betweenness["a"] != 0 || c.Betweenness["c"] != 0 {
		t.Errorf("endpoints should have zero betweenness: %v", c.Betweenness)
	}
	if c.Betweenness["b"] <= 0 {
		t.Errorf("middle node betweenness = %v, want > 0", c.Betweenness["b"])
	}

	top := c.TopBy(c.Betweenness, 1)
	if len(top) != 1 || top[0].Node != "b" {
		t.Errorf("TopBy(betweenness) = %v, want b first", top)
	}
}

func TestCentralityDisconnected(t *testing.T) {
	g := buildGraph(t, [2]graph.NodeID{"a", "b"})
	g.AddNode("z")
	c := ComputeCentrality(g)

	if c.Closeness["z"] != 0 {
		t.Errorf("isolated closeness = %v, want 0", c.Closeness["z"])
	}
	// one reachable node at distance 1: (1/1) * (1/2)
	if !scalar.EqualWithinAbs(c.Closeness["a"], 0.5, tol) {
		t.Errorf("closeness[a] = %v, want 0.5", c.Closeness["a"])
	}
	for id, v := range c.Betweenness {
		if v != 0 {
			t.Errorf("betweenness[%s] = %v, want 0", id, v)
		}
	}
}

func TestCentralitySmallGraphs(t *testing.T) {
	empty := ComputeCentrality(graph.NewUndirected())
	if len(empty.Degree)+len(empty.Betweenness)+len(empty.Closeness)+len(empty.Eigenvector) != 0 {
		t.Errorf("empty graph should yield empty maps: %+v", empty)
	}
	if !empty.EigenvectorConverged {
		t.Error("empty graph should not report non-convergence")
	}

	single := graph.NewUndirected()
	single.AddNode("solo")
	c := ComputeCentrality(single)
	if c.Degree["solo"] != 1 {
		t.Errorf("single node degree centrality = %v, want 1", c.Degree["solo"])
	}
	if c.Closeness["solo"] != 0 || c.Betweenness["solo"] != 0 {
		t.Errorf("single node closeness/betweenness = %v/%v, want 0/0", c.Closeness["solo"], c.Betweenness["solo"])
	}
}

// pathGraph returns the path n0-n1-...-n(n-1).
func pathGraph(n int) *graph.Undirected {
	sets := make([][]string, 0, n-1)
	for i := 1; i < n; i++ {
		sets = append(sets, []string{fmt.Sprintf("n%d", i-1), fmt.Sprintf("n%d", i)})
	}
	return graph.Cooccurrence(sets)
}

func TestEigenvectorNotConverged(t *testing.T) {
	g := pathGraph(200)

	if _, err := Eigenvector(g); !errors.Is(err, ErrNotConverged) {
		t.Fatalf("Eigenvector error = %v, want ErrNotConverged", err)
	}

	c := ComputeCentrality(g)
	if c.EigenvectorConverged {
		t.Error("EigenvectorConverged should be false")
	}
	if len(c.Eigenvector) != g.NodeCount() {
		t.Fatalf("eigenvector has %d scores, want %d", len(c.Eigenvector), g.NodeCount())
	}
	for id, v := range c.Eigenvector {
		if v != 0 {
			t.Errorf("eigenvector[%s] = %v, want 0", id, v)
		}
	}
	if c.Degree["n1"] == 0 || c.Closeness["n1"] == 0 {
		t.Error("other centralities should still be computed")
	}
}

func TestRankTiesKeepOrder(t *testing.T) {
	nodes := []graph.NodeID{"x", "y", "z"}
	scores := map[graph.NodeID]float64{"x": 0.1, "y": 0.5, "z": 0.5}
	want := []NodeScore{{"y", 0.5}, {"z", 0.5}, {"x", 0.1}}
	if diff := cmp.Diff(want, Rank(nodes, scores, -1)); diff != "" {
		t.Errorf("Rank (-want +got):\n%s", diff)
	}
}

func TestClustering(t *testing.T) {
	c := ComputeClustering(pendantTriangle(t), false)

	want := map[graph.NodeID]float64{"a": 1, "b": 1, "c": 1.0 / 3, "d": 0}
	for id, w := range want {
		if !scalar.EqualWithinAbs(c.Local[id], w, tol) {
			t.Errorf("Local[%s] = %v, want %v", id, c.Local[id], w)
		}
	}
	if !scalar.EqualWithinAbs(c.Average, (1+1+1.0/3)/4, tol) {
		t.Errorf("Average = %v", c.Average)
	}
	if !scalar.EqualWithinAbs(c.Transitivity, 0.6, tol) {
		t.Errorf("Transitivity = %v, want 0.6", c.Transitivity)
	}
	if top := c.Top(2); top[0].Node != "a" || top[1].Node != "b" {
		t.Errorf("Top(2) = %v", top)
	}
}

func TestWeightedClustering(t *testing.T) {
	g := pendantTriangle(t)
	_ = g.AddEdge("a", "b", 1) // a-b now weighs 2

	c := ComputeClustering(g, true)
	// cbrt(1 * 0.5 * 0.5) after dividing by the max weight 2
	if !scalar.EqualWithinAbs(c.Local["a"], 0.62996, tol) {
		t.Errorf("weighted Local[a] = %v, want 0.62996", c.Local["a"])
	}
	if !scalar.EqualWithinAbs(c.Transitivity, 0.6, tol) {
		t.Errorf("weighted graph transitivity = %v, want 0.6", c.Transitivity)
	}
}

func TestClusteringEmpty(t *testing.T) {
	c := ComputeClustering(graph.NewUndirected(), true)
	if c.Average != 0 || c.Transitivity != 0 || len(c.Local) != 0 {
		t.Errorf("empty clustering = %+v", c)
	}
}

func TestComponents(t *testing.T) {
	g := buildGraph(t, [2]graph.NodeID{"a", "b"}, [2]graph.NodeID{"c", "d"}, [2]graph.NodeID{"d", "e"})
	g.AddNode("f")
	c := ComputeComponents(g)

	wantGroups := [][]graph.NodeID{{"c", "d", "e"}, {"a", "b"}, {"f"}}
	if diff := cmp.Diff(wantGroups, c.Groups); diff != "" {
		t.Errorf("Groups (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, c.Sizes); diff != "" {
		t.Errorf("Sizes (-want +got):\n%s", diff)
	}
	if c.Count() != 3 || c.Largest != 3 || !scalar.EqualWithinAbs(c.MeanSize, 2, tol) {
		t.Errorf("count/largest/mean = %d/%d/%v", c.Count(), c.Largest, c.MeanSize)
	}
	if diff := cmp.Diff([]graph.NodeID{"c", "d"}, c.LargestSample(2)); diff != "" {
		t.Errorf("LargestSample (-want +got):\n%s", diff)
	}

	if empty := ComputeComponents(graph.NewUndirected()); empty.Count() != 0 || empty.LargestSample(10) != nil {
		t.Errorf("empty components = %+v", empty)
	}
}

func TestPathStats(t *testing.T) {
	s := ComputePathStats([]string{"[0]", "[0].a", "[0].a.b", "[0].xs", "[0].xs[0]"})

	if s.Total != 5 || s.MaxDepth != 3 || !scalar.EqualWithinAbs(s.MeanDepth, 2.2, tol) {
		t.Errorf("totals = %d/%d/%v", s.Total, s.MaxDepth, s.MeanDepth)
	}
	wantDeep := []string{"[0].a.b", "[0].xs[0]"}
	if diff := cmp.Diff(wantDeep, s.Deepest); diff != "" {
		t.Errorf("Deepest (-want +got):\n%s", diff)
	}
	wantParents := []PrefixCount{{"[0]", 4}, {"[0].a", 1}}
	if diff := cmp.Diff(wantParents, s.Parents); diff != "" {
		t.Errorf("Parents (-want +got):\n%s", diff)
	}

	if empty := ComputePathStats(nil); empty.Total != 0 || empty.Parents != nil {
		t.Errorf("empty stats = %+v", empty)
	}
}
