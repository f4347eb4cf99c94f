package graph_test

import (
	"fmt"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
)

func ExampleCooccurrence() {
	g := graph.Cooccurrence([][]string{
		{"host", "date", "peoplePresent"},
		{"host", "date"},
	})

	for _, e := range g.Edges() {
		fmt.Printf("%s -- %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// host -- date (2)
	// host -- peoplePresent (1)
	// date -- peoplePresent (1)
}

func ExamplePathStructure() {
	g := graph.PathStructure([]string{"meetingInfo", "meetingInfo.host", "tags", "tags.emotions"})

	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "edges")
	fmt.Println(g.Successors("meetingInfo"))
	// Output:
	// 4 nodes, 2 edges
	// [meetingInfo.host]
}
