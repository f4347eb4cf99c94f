package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/SingularityNET-Archive/meetgraph/pkg/metrics"
)

// deepestSample is the number of deepest paths listed in the unified report.
const deepestSample = 10

// Markdown renders the unified analysis report.
func Markdown(d *Data) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "Unified Graph Analysis Report", d.GeneratedAt)

	buf.WriteString("## Summary\n")
	for _, item := range d.Summary() {
		fmt.Fprintf(&buf, "- %s: %d\n", item.Label, item.Value)
	}
	buf.WriteString("\n")

	buf.WriteString("## Degree (Co-attendance) Analysis\n")
	buf.WriteString("### Top Nodes by Degree\n")
	writeTable(&buf, []string{"Rank", "Node", "Degree"}, degreeRows(d.CoattendanceTop))
	buf.WriteString("### Degree Distribution\n")
	writeTable(&buf, []string{"Degree", "Count of Nodes"}, distRows(d.CoattendanceDist))

	buf.WriteString("## JSON Field Degree Analysis\n")
	buf.WriteString("### Top Fields by Degree\n")
	writeTable(&buf, []string{"Rank", "Field", "Degree"}, degreeRows(d.FieldTop))
	buf.WriteString("### Degree Distribution\n")
	writeTable(&buf, []string{"Degree", "Count of Fields"}, distRows(d.FieldDist))

	writePathSection(&buf, d.PathStats, d.LimitTop)
	writeCentralitySection(&buf, d.Centrality)

	buf.WriteString("## Clustering (Field Co-occurrence Graph)\n")
	fmt.Fprintf(&buf, "- Average Clustering Coefficient: %.3f\n\n", d.Clustering.Average)
	buf.WriteString("### Top Nodes by Clustering Coefficient\n")
	var clusterRows [][]string
	for i, s := range d.Clustering.Top(d.LimitTop) {
		clusterRows = append(clusterRows, []string{itoa(i + 1), label(s.Node), f3(s.Score)})
	}
	writeTable(&buf, []string{"Rank", "Field", "Clustering"}, clusterRows)

	buf.WriteString("## Connected Components (Field Co-occurrence Graph)\n")
	fmt.Fprintf(&buf, "- Number of Components: %d\n", d.Components.Count())
	fmt.Fprintf(&buf, "- Component Sizes (top 10): %s\n", intList(head(d.Components.Sizes, 10)))
	buf.WriteString("- Sample of Largest Component Nodes (top 10):\n")
	for _, n := range d.Components.LargestSample(min(d.LimitTop, 10)) {
		fmt.Fprintf(&buf, "  - %s\n", label(n))
	}
	buf.WriteString("\n")

	if d.Fingerprint != "" {
		fmt.Fprintf(&buf, "<!-- dataset %s -->\n", d.Fingerprint)
	}
	return buf.Bytes()
}

// WriteMarkdown writes the unified report to w.
func WriteMarkdown(w io.Writer, d *Data) error {
	_, err := w.Write(Markdown(d))
	return err
}

func writePathSection(buf *bytes.Buffer, s metrics.PathStats, limitTop int) {
	buf.WriteString("## JSON Path Structure Analysis\n")
	fmt.Fprintf(buf, "- Total Unique Paths: %d\n", s.Total)
	fmt.Fprintf(buf, "- Maximum Depth: %d\n", s.MaxDepth)
	fmt.Fprintf(buf, "- Average Depth: %.2f\n\n", s.MeanDepth)

	buf.WriteString("### Deepest JSON Paths (sample)\n")
	for _, p := range head(s.Deepest, deepestSample) {
		fmt.Fprintf(buf, "- `%s`\n", p)
	}
	buf.WriteString("\n")

	buf.WriteString("### Most Common Parent Paths\n")
	writeTable(buf, []string{"Rank", "Parent Path", "Count"}, parentRows(head(s.Parents, limitTop)))
}

func parentRows(parents []metrics.PrefixCount) [][]string {
	rows := make([][]string, len(parents))
	for i, p := range parents {
		rows[i] = []string{itoa(i + 1), "`" + p.Prefix + "`", itoa(p.Count)}
	}
	return rows
}

// writeCentralitySection lists the ten fields with the highest degree
// centrality along with their other scores.
func writeCentralitySection(buf *bytes.Buffer, c metrics.Centrality) {
	buf.WriteString("## Field Centrality (Co-occurrence)\n")
	writeTable(buf, []string{"Rank", "Field", "Degree", "Betweenness", "Closeness", "Eigenvector"}, centralityRows(c))
}

func centralityRows(c metrics.Centrality) [][]string {
	top := c.TopBy(c.Degree, 10)
	rows := make([][]string, len(top))
	for i, s := range top {
		rows[i] = []string{
			itoa(i + 1),
			label(s.Node),
			f3(c.Degree[s.Node]),
			f3(c.Betweenness[s.Node]),
			f3(c.Closeness[s.Node]),
			f3(c.Eigenvector[s.Node]),
		}
	}
	return rows
}

func head[T any](s []T, n int) []T {
	if n >= 0 && n < len(s) {
		return s[:n]
	}
	return s
}
