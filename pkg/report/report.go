// Package report renders analysis results as Markdown and HTML documents.
//
// # Documents
//
// The unified report ([Markdown], [HTML]) covers every analysis in one
// document. Per-method reports ([Degree], [Centrality], [Clustering],
// [Components], [Paths]) focus on a single metric and add a short
// interpretation; [Workgroups] and [Schema] describe the dataset itself.
//
// Every renderer returns the full document as bytes so callers can write it
// once, after all computations have succeeded. Apart from the generation
// timestamp, the output depends only on its inputs.
//
// # Tables
//
// Markdown tables are laid out with github.com/olekukonko/tablewriter and
// padded to aligned columns; they render identically to unpadded pipe
// tables.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/metrics"
)

// DefaultLimitTop is the default number of rows in top-N tables.
const DefaultLimitTop = 10

// LabelLimit is the maximum label length, in runes, in report tables.
const LabelLimit = 80

// TimeLayout formats the "Generated on" line.
const TimeLayout = "2006-01-02 15:04:05"

// Data holds every input of the unified report. The pipeline fills it once
// all metrics are computed.
type Data struct {
	GeneratedAt time.Time
	Source      string
	Fingerprint string
	LimitTop    int

	Coattendance *graph.Undirected
	Fields       *graph.Undirected
	Paths        *graph.Directed

	CoattendanceTop  []metrics.NodeDegree
	CoattendanceDist []metrics.DegreeCount
	FieldTop         []metrics.NodeDegree
	FieldDist        []metrics.DegreeCount
	PathStats        metrics.PathStats
	Centrality       metrics.Centrality
	Clustering       metrics.Clustering
	Components       metrics.Components
}

// NewData computes the unified report inputs for the three graphs.
func NewData(coattendance, fields *graph.Undirected, paths *graph.Directed, pathList []string, limitTop int) *Data {
	if limitTop <= 0 {
		limitTop = DefaultLimitTop
	}
	return &Data{
		LimitTop:         limitTop,
		Coattendance:     coattendance,
		Fields:           fields,
		Paths:            paths,
		CoattendanceTop:  metrics.TopByDegree(coattendance, limitTop),
		CoattendanceDist: metrics.DegreeDistribution(coattendance),
		FieldTop:         metrics.TopByDegree(fields, limitTop),
		FieldDist:        metrics.DegreeDistribution(fields),
		PathStats:        metrics.ComputePathStats(pathList),
		Centrality:       metrics.ComputeCentrality(fields),
		Clustering:       metrics.ComputeClustering(fields, false),
		Components:       metrics.ComputeComponents(fields),
	}
}

// SummaryItem is one line of the summary section.
type SummaryItem struct {
	Label string
	Value int
}

// Summary returns the node and edge counts of the three graphs.
func (d *Data) Summary() []SummaryItem {
	return []SummaryItem{
		{"Co-attendance graph (nodes)", d.Coattendance.NodeCount()},
		{"Co-attendance graph (edges)", d.Coattendance.EdgeCount()},
		{"Path graph (nodes)", d.Paths.NodeCount()},
		{"Path graph (edges)", d.Paths.EdgeCount()},
		{"Field graph (nodes)", d.Fields.NodeCount()},
		{"Field graph (edges)", d.Fields.EdgeCount()},
	}
}

// =============================================================================
// Markdown helpers
// =============================================================================

func writeHeader(buf *bytes.Buffer, title string, now time.Time) {
	fmt.Fprintf(buf, "# %s\n", title)
	fmt.Fprintf(buf, "**Generated on:** %s\n\n", now.Format(TimeLayout))
}

// writeTable appends a pipe table followed by a blank line.
func writeTable(buf *bytes.Buffer, header []string, rows [][]string) {
	t := tablewriter.NewWriter(buf)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetBorders(tablewriter.Border{Left: true, Right: true})
	t.SetCenterSeparator("|")
	for _, row := range rows {
		t.Append(escapeCells(row))
	}
	t.Render()
	buf.WriteString("\n")
}

var cellEscaper = strings.NewReplacer("|", `\|`)

// escapeCells escapes pipes so a cell cannot split a table row.
func escapeCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = cellEscaper.Replace(c)
	}
	return out
}

func label(id graph.NodeID) string {
	return graph.TruncateLabel(string(id), LabelLimit)
}

func itoa(n int) string { return strconv.Itoa(n) }

func f3(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }

func degreeRows(top []metrics.NodeDegree) [][]string {
	rows := make([][]string, len(top))
	for i, nd := range top {
		rows[i] = []string{itoa(i + 1), label(nd.Node), itoa(nd.Degree)}
	}
	return rows
}

func distRows(dist []metrics.DegreeCount) [][]string {
	rows := make([][]string, len(dist))
	for i, dc := range dist {
		rows[i] = []string{itoa(dc.Degree), itoa(dc.Count)}
	}
	return rows
}

// joinScores formats "name (0.123)" entries separated by commas.
func joinScores(scores []metrics.NodeScore) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%s (%s)", s.Node, f3(s.Score))
	}
	return strings.Join(parts, ", ")
}

// intList formats ints as a bracketed list: "[3, 2, 1]".
func intList(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
