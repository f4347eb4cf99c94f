package report

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SingularityNET-Archive/meetgraph/pkg/extract"
	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/metrics"
	"github.com/SingularityNET-Archive/meetgraph/pkg/schema"
)

// Method names accepted by [ForMethod].
const (
	MethodDegree     = "degree"
	MethodCentrality = "centrality"
	MethodClustering = "clustering"
	MethodComponents = "components"
	MethodPaths      = "paths"
)

// Methods lists the per-method reports in display order.
var Methods = []string{MethodDegree, MethodCentrality, MethodClustering, MethodComponents, MethodPaths}

// interpretationTop is the number of fields named in interpretation prose.
const interpretationTop = 5

// ForMethod renders the per-method report called name over the field
// co-occurrence graph and path list. It returns false for unknown names.
func ForMethod(name string, fields *graph.Undirected, paths []string, now time.Time) ([]byte, bool) {
	switch name {
	case MethodDegree:
		return Degree(fields, now), true
	case MethodCentrality:
		return Centrality(fields, metrics.ComputeCentrality(fields), now), true
	case MethodClustering:
		return Clustering(fields, metrics.ComputeClustering(fields, true), now), true
	case MethodComponents:
		return Components(fields, metrics.ComputeComponents(fields), now), true
	case MethodPaths:
		return Paths(metrics.ComputePathStats(paths), now), true
	default:
		return nil, false
	}
}

// Degree renders the field degree report with its core and periphery
// interpretation.
func Degree(g graph.View, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "JSON Field Degree Analysis Report", now)

	s := metrics.SummarizeDegrees(g)
	buf.WriteString("## Summary Statistics\n")
	fmt.Fprintf(&buf, "- Total Unique Fields: %d\n", s.Nodes)
	fmt.Fprintf(&buf, "- Maximum Degree: %d\n", s.Max)
	fmt.Fprintf(&buf, "- Minimum Degree: %d\n\n", s.Min)

	buf.WriteString("## Top 15 JSON Fields by Degree\n")
	writeTable(&buf, []string{"Rank", "Field Name", "Degree"}, degreeRows(metrics.TopByDegree(g, 15)))
	buf.WriteString("## Degree Distribution\n")
	writeTable(&buf, []string{"Degree", "Count of Fields"}, distRows(metrics.DegreeDistribution(g)))

	if s.Nodes == 0 {
		buf.WriteString("No fields found to analyze.\n")
		return buf.Bytes()
	}

	core, periphery := metrics.CoreAndPeriphery(g)
	buf.WriteString("## Interpretation of Degree Results\n\n")
	buf.WriteString("The **degree** of a field is the number of other fields it co-occurs with " +
		"across the dataset. High-degree fields appear together with many others and are " +
		"likely *core schema components*. Low-degree fields are isolated or specialized.\n\n")
	fmt.Fprintf(&buf, "- **Average degree:** %.2f\n", s.Mean)
	fmt.Fprintf(&buf, "- **Maximum degree:** %d\n", s.Max)
	fmt.Fprintf(&buf, "- **Minimum degree:** %d\n\n", s.Min)
	buf.WriteString("### Core (Highly Connected) Fields\n\n")
	buf.WriteString(joinDegrees(core) + "\n\n")
	buf.WriteString("### Peripheral (Low-Connectivity) Fields\n\n")
	buf.WriteString(joinDegrees(periphery) + "\n\n")
	buf.WriteString("_Interpretation:_\n\n")
	buf.WriteString("Core fields are the metadata present in nearly every record, such as " +
		"identifiers, titles and timestamps. Peripheral fields hold optional or contextual " +
		"data used only in specific parts of the schema.\n")
	return buf.Bytes()
}

func joinDegrees(ds []metrics.NodeDegree) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprintf("%s (%d)", d.Node, d.Degree)
	}
	return strings.Join(parts, ", ")
}

// Centrality renders the field centrality report.
func Centrality(g *graph.Undirected, c metrics.Centrality, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "JSON Field Centrality Analysis Report", now)
	fmt.Fprintf(&buf, "- Total Fields: %d\n", g.NodeCount())
	fmt.Fprintf(&buf, "- Total Relationships: %d\n\n", g.EdgeCount())

	buf.WriteString("## Top 10 Fields by Centrality\n")
	writeTable(&buf, []string{"Rank", "Field", "Degree", "Betweenness", "Closeness", "Eigenvector"}, centralityRows(c))
	if !c.EigenvectorConverged {
		buf.WriteString("> Eigenvector centrality did not converge; its scores are reported as 0.\n\n")
	}

	buf.WriteString("## Interpretation of Centrality Results\n\n")
	buf.WriteString("Centrality measures identify the most structurally influential fields. " +
		"High degree marks central fields, high betweenness marks connectors, high closeness " +
		"marks fields that reach others quickly, and high eigenvector marks fields linked to " +
		"other influential fields.\n\n")
	for _, m := range []struct {
		title  string
		scores map[graph.NodeID]float64
	}{
		{"Most Connected Fields (Degree Centrality)", c.Degree},
		{"Key Bridge Fields (Betweenness Centrality)", c.Betweenness},
		{"Most Accessible Fields (Closeness Centrality)", c.Closeness},
		{"Most Influential Fields (Eigenvector Centrality)", c.Eigenvector},
	} {
		fmt.Fprintf(&buf, "### %s\n%s\n\n", m.title, joinScores(c.TopBy(m.scores, interpretationTop)))
	}
	buf.WriteString("_Interpretation:_\n")
	buf.WriteString("Fields with **high degree** appear alongside many others and form the structural core. " +
		"Fields with **high betweenness** link otherwise separate parts of the schema. " +
		"Fields with **high closeness** sit near everything else and can reach most fields in few steps. " +
		"Fields with **high eigenvector centrality** are connected to other important fields; " +
		"they are the hubs where the schema's sections meet.\n")
	return buf.Bytes()
}

// Clustering renders the field clustering report. c is normally computed
// with weights.
func Clustering(g *graph.Undirected, c metrics.Clustering, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "JSON Field Clustering Coefficient Report", now)
	fmt.Fprintf(&buf, "- Total Fields (Nodes): %d\n", g.NodeCount())
	fmt.Fprintf(&buf, "- Total Relationships (Edges): %d\n\n", g.EdgeCount())

	buf.WriteString("## Local Clustering Coefficients (Top 10 Fields)\n")
	var rows [][]string
	for i, s := range c.Top(10) {
		rows = append(rows, []string{itoa(i + 1), label(s.Node), f3(s.Score)})
	}
	writeTable(&buf, []string{"Rank", "Field", "Clustering Coefficient"}, rows)

	buf.WriteString("## Interpretation of Clustering Results\n\n")
	buf.WriteString("The clustering coefficient measures how likely the neighbours of a field are " +
		"to be connected to one another. High clustering means related fields consistently " +
		"appear together and form tightly interconnected groups.\n\n")
	buf.WriteString("### Global Measures\n")
	fmt.Fprintf(&buf, "- **Average Clustering Coefficient:** %.3f\n", c.Average)
	fmt.Fprintf(&buf, "- **Network Transitivity:** %.3f\n\n", c.Transitivity)
	buf.WriteString("### Fields with Highest Local Clustering\n")
	buf.WriteString(joinScores(c.Top(interpretationTop)) + "\n\n")
	buf.WriteString("_Interpretation:_\n")
	buf.WriteString("A high average coefficient (above 0.5) means many fields co-occur in cohesive " +
		"substructures. A low value (below 0.2) points to a modular schema where fields are " +
		"grouped into separate contexts. Fields with high local clustering are cluster cores; " +
		"fields with low clustering tend to bridge distinct sections.\n")
	return buf.Bytes()
}

// Components renders the connected components report, listing the members of
// the five largest components alphabetically.
func Components(g *graph.Undirected, c metrics.Components, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "JSON Connected Components Report", now)
	fmt.Fprintf(&buf, "- Total Fields (Nodes): %d\n", g.NodeCount())
	fmt.Fprintf(&buf, "- Total Relationships (Edges): %d\n\n", g.EdgeCount())

	buf.WriteString("## Connected Components Summary\n")
	fmt.Fprintf(&buf, "- Number of Components: %d\n", c.Count())
	fmt.Fprintf(&buf, "- Largest Component Size: %d\n", c.Largest)
	fmt.Fprintf(&buf, "- Average Component Size: %.2f\n\n", c.MeanSize)

	buf.WriteString("## Top 5 Largest Components\n")
	for i, group := range head(c.Groups, 5) {
		names := make([]string, len(group))
		for j, id := range group {
			names[j] = string(id)
		}
		slices.Sort(names)
		fmt.Fprintf(&buf, "### Component %d (%d fields)\n", i+1, len(group))
		buf.WriteString(strings.Join(names, ", ") + "\n\n")
	}

	buf.WriteString("## Interpretation of Connected Components\n\n")
	buf.WriteString("Connected components are clusters of fields linked directly or indirectly " +
		"because they co-occur in the same sections of the data.\n\n")
	fmt.Fprintf(&buf, "- **Number of Components:** %d\n", c.Count())
	fmt.Fprintf(&buf, "- **Largest Component Size:** %d\n", c.Largest)
	fmt.Fprintf(&buf, "- **Average Component Size:** %.2f\n\n", c.MeanSize)
	buf.WriteString("_Interpretation:_\n\n")
	buf.WriteString("- A **small number of large components** suggests a cohesive schema where most fields are interrelated.\n")
	buf.WriteString("- A **large number of small components** means parts of the data are isolated or used in specialized contexts.\n")
	buf.WriteString("- The **largest component** is the core schema tying most fields together.\n")
	return buf.Bytes()
}

// Paths renders the JSON path structure report.
func Paths(s metrics.PathStats, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "JSON Path Analysis Report", now)

	buf.WriteString("## Summary Statistics\n")
	fmt.Fprintf(&buf, "- Total Unique Paths: %d\n", s.Total)
	fmt.Fprintf(&buf, "- Maximum Depth: %d\n", s.MaxDepth)
	fmt.Fprintf(&buf, "- Average Depth: %.2f\n\n", s.MeanDepth)

	buf.WriteString("## Deepest JSON Paths\n")
	for _, p := range head(s.Deepest, deepestSample) {
		fmt.Fprintf(&buf, "- `%s`\n", p)
	}
	buf.WriteString("\n")

	buf.WriteString("## Most Common Parent Paths\n")
	writeTable(&buf, []string{"Rank", "Parent Path", "Count"}, parentRows(head(s.Parents, 10)))

	buf.WriteString("## Interpretation\n")
	buf.WriteString("Each path is one traversal route through nested keys and arrays. " +
		"The **maximum depth** shows how deeply some fields are nested, and the " +
		"**most common parent paths** reveal recurring structural patterns.\n")
	return buf.Bytes()
}

// Workgroups renders the workgroup tally and, when t was filled by
// [extract.WorkgroupTally.CountRecords], the meetings of each workgroup.
func Workgroups(t *extract.WorkgroupTally, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "Workgroup Analysis Report", now)

	rows := t.Sorted()
	total := 0
	table := make([][]string, len(rows))
	for i, r := range rows {
		total += r.Count
		table[i] = []string{itoa(i + 1), label(graph.NodeID(r.Name)), itoa(r.Count)}
	}

	buf.WriteString("## Summary\n")
	fmt.Fprintf(&buf, "- Total Unique Workgroups: %d\n", t.Len())
	fmt.Fprintf(&buf, "- Total Mentions: %d\n\n", total)

	buf.WriteString("## Workgroup Counts\n")
	writeTable(&buf, []string{"Rank", "Workgroup", "Mentions"}, table)

	var wroteHeading bool
	for _, r := range rows {
		meetings := t.Meetings(r.Name)
		if len(meetings) == 0 {
			continue
		}
		if !wroteHeading {
			buf.WriteString("## Meetings by Workgroup\n\n")
			wroteHeading = true
		}
		fmt.Fprintf(&buf, "### %s (%d)\n", r.Name, len(meetings))
		for _, m := range meetings {
			fmt.Fprintf(&buf, "- %s\n", m)
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// Schema renders an inferred schema as a nested list.
func Schema(n schema.Node, now time.Time) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "JSON Schema Report", now)
	buf.WriteString("## Inferred Schema\n\n")
	for _, line := range schema.Markdown(n) {
		buf.WriteString(line + "\n")
	}
	return buf.Bytes()
}
