package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/metrics"
)

//go:embed templates/report.html.tmpl
var htmlSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlSource))

// Tab IDs of the HTML report, in display order.
const (
	TabSummary       = "summary"
	TabCoattendance  = "coattendance"
	TabFieldDegree   = "field-degree"
	TabPathStructure = "path-structure"
	TabCentrality    = "centrality"
	TabClustering    = "clustering"
	TabComponents    = "components"
)

type htmlTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

type htmlTab struct {
	ID     string
	Title  string
	Notes  []string
	Charts []string
	Tables []htmlTable
}

type htmlView struct {
	Title       string
	Generated   string
	Source      string
	Fingerprint string
	Tabs        []htmlTab
	Charts      chartData
	Graph       graphData
}

// chartData feeds the Plotly charts. Field names are part of the page
// script's contract.
type chartData struct {
	Summary          map[string]int    `json:"summary"`
	CoattendanceTop  []nodeDegreeJSON  `json:"coattendanceTop"`
	CoattendanceDist []degreeCountJSON `json:"coattendanceDist"`
	FieldDegreeTop   []fieldDegreeJSON `json:"fieldDegreeTop"`
	FieldDegreeDist  []degreeCountJSON `json:"fieldDegreeDist"`
	PathStructure    []parentCountJSON `json:"pathStructure"`
	Centrality       []centralityJSON  `json:"centrality"`
	Clustering       []clusteringJSON  `json:"clustering"`
	Components       componentsJSON    `json:"components"`
}

type nodeDegreeJSON struct {
	Node   string `json:"node"`
	Degree int    `json:"degree"`
}

type fieldDegreeJSON struct {
	Field  string `json:"field"`
	Degree int    `json:"degree"`
}

type degreeCountJSON struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

type parentCountJSON struct {
	Parent string `json:"parent"`
	Count  int    `json:"count"`
}

type centralityJSON struct {
	Field       string  `json:"field"`
	Degree      float64 `json:"degree"`
	Betweenness float64 `json:"betweenness"`
	Closeness   float64 `json:"closeness"`
	Eigenvector float64 `json:"eigenvector"`
}

type clusteringJSON struct {
	Field      string  `json:"field"`
	Clustering float64 `json:"clustering"`
}

type componentsJSON struct {
	Sizes []int `json:"sizes"`
}

// graphData is the vis-network payload of the co-attendance graph.
type graphData struct {
	Nodes []visNode `json:"nodes"`
	Edges []visEdge `json:"edges"`
}

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type visEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value int    `json:"value"`
}

// HTML renders the unified report as a single page with tabs, Plotly charts
// and an interactive co-attendance network.
func HTML(d *Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newHTMLView(d)); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML writes the HTML report to w.
func WriteHTML(w io.Writer, d *Data) error {
	page, err := HTML(d)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

func newHTMLView(d *Data) htmlView {
	var summaryRows [][]string
	for _, item := range d.Summary() {
		summaryRows = append(summaryRows, []string{item.Label, itoa(item.Value)})
	}
	var clusterRows [][]string
	for i, s := range d.Clustering.Top(d.LimitTop) {
		clusterRows = append(clusterRows, []string{itoa(i + 1), label(s.Node), f3(s.Score)})
	}
	var sample []string
	for _, n := range d.Components.LargestSample(min(d.LimitTop, 10)) {
		sample = append(sample, label(n))
	}
	deepest := make([][]string, 0, deepestSample)
	for _, p := range head(d.PathStats.Deepest, deepestSample) {
		deepest = append(deepest, []string{p})
	}

	return htmlView{
		Title:       "Unified Graph Analysis Report",
		Generated:   d.GeneratedAt.Format(TimeLayout),
		Source:      d.Source,
		Fingerprint: d.Fingerprint,
		Tabs: []htmlTab{
			{
				ID: TabSummary, Title: "Summary",
				Charts: []string{"summary-chart"},
				Tables: []htmlTable{{Headers: []string{"Metric", "Value"}, Rows: summaryRows}},
			},
			{
				ID: TabCoattendance, Title: "Co-attendance Degree",
				Charts: []string{"coattendance-top-chart", "coattendance-dist-chart", "coattendance-network"},
				Tables: []htmlTable{
					{Title: "Top Nodes by Degree", Headers: []string{"Rank", "Node", "Degree"}, Rows: degreeRows(d.CoattendanceTop)},
					{Title: "Degree Distribution", Headers: []string{"Degree", "Count of Nodes"}, Rows: distRows(d.CoattendanceDist)},
				},
			},
			{
				ID: TabFieldDegree, Title: "Field Degree",
				Charts: []string{"field-degree-top-chart", "field-degree-dist-chart"},
				Tables: []htmlTable{
					{Title: "Top Fields by Degree", Headers: []string{"Rank", "Field", "Degree"}, Rows: degreeRows(d.FieldTop)},
					{Title: "Degree Distribution", Headers: []string{"Degree", "Count of Fields"}, Rows: distRows(d.FieldDist)},
				},
			},
			{
				ID: TabPathStructure, Title: "Path Structure",
				Notes: []string{
					fmt.Sprintf("Total Unique Paths: %d", d.PathStats.Total),
					fmt.Sprintf("Maximum Depth: %d", d.PathStats.MaxDepth),
					fmt.Sprintf("Average Depth: %.2f", d.PathStats.MeanDepth),
				},
				Charts: []string{"path-structure-chart"},
				Tables: []htmlTable{
					{Title: "Deepest JSON Paths (sample)", Headers: []string{"Path"}, Rows: deepest},
					{Title: "Most Common Parent Paths", Headers: []string{"Rank", "Parent Path", "Count"}, Rows: parentRows(head(d.PathStats.Parents, d.LimitTop))},
				},
			},
			{
				ID: TabCentrality, Title: "Centrality",
				Charts: []string{"centrality-chart"},
				Tables: []htmlTable{{
					Headers: []string{"Rank", "Field", "Degree", "Betweenness", "Closeness", "Eigenvector"},
					Rows:    centralityRows(d.Centrality),
				}},
			},
			{
				ID: TabClustering, Title: "Clustering",
				Notes:  []string{fmt.Sprintf("Average Clustering Coefficient: %.3f", d.Clustering.Average)},
				Charts: []string{"clustering-chart"},
				Tables: []htmlTable{{Title: "Top Nodes by Clustering Coefficient", Headers: []string{"Rank", "Field", "Clustering"}, Rows: clusterRows}},
			},
			{
				ID: TabComponents, Title: "Components",
				Notes: []string{
					fmt.Sprintf("Number of Components: %d", d.Components.Count()),
					fmt.Sprintf("Component Sizes (top 10): %s", intList(head(d.Components.Sizes, 10))),
					fmt.Sprintf("Sample of Largest Component Nodes: %s", joinStrings(sample)),
				},
				Charts: []string{"components-chart"},
			},
		},
		Charts: newChartData(d),
		Graph:  newGraphData(d.Coattendance),
	}
}

func newChartData(d *Data) chartData {
	c := chartData{Summary: map[string]int{}}
	for _, item := range d.Summary() {
		c.Summary[item.Label] = item.Value
	}
	for _, nd := range d.CoattendanceTop {
		c.CoattendanceTop = append(c.CoattendanceTop, nodeDegreeJSON{Node: label(nd.Node), Degree: nd.Degree})
	}
	for _, nd := range d.FieldTop {
		c.FieldDegreeTop = append(c.FieldDegreeTop, fieldDegreeJSON{Field: label(nd.Node), Degree: nd.Degree})
	}
	c.CoattendanceDist = distJSON(d.CoattendanceDist)
	c.FieldDegreeDist = distJSON(d.FieldDist)
	for _, p := range head(d.PathStats.Parents, d.LimitTop) {
		c.PathStructure = append(c.PathStructure, parentCountJSON{Parent: p.Prefix, Count: p.Count})
	}
	cent := d.Centrality
	for _, s := range cent.TopBy(cent.Degree, 10) {
		c.Centrality = append(c.Centrality, centralityJSON{
			Field:       label(s.Node),
			Degree:      cent.Degree[s.Node],
			Betweenness: cent.Betweenness[s.Node],
			Closeness:   cent.Closeness[s.Node],
			Eigenvector: cent.Eigenvector[s.Node],
		})
	}
	for _, s := range d.Clustering.Top(d.LimitTop) {
		c.Clustering = append(c.Clustering, clusteringJSON{Field: label(s.Node), Clustering: s.Score})
	}
	c.Components.Sizes = head(d.Components.Sizes, 10)
	return c
}

func distJSON(dist []metrics.DegreeCount) []degreeCountJSON {
	out := make([]degreeCountJSON, len(dist))
	for i, dc := range dist {
		out[i] = degreeCountJSON{Degree: dc.Degree, Count: dc.Count}
	}
	return out
}

func newGraphData(g *graph.Undirected) graphData {
	gd := graphData{Nodes: []visNode{}, Edges: []visEdge{}}
	for _, id := range g.Nodes() {
		gd.Nodes = append(gd.Nodes, visNode{ID: string(id), Label: label(id), Value: g.Degree(id)})
	}
	for _, e := range g.Edges() {
		gd.Edges = append(gd.Edges, visEdge{From: string(e.From), To: string(e.To), Value: int(e.Weight)})
	}
	return gd
}

func joinStrings(xs []string) string {
	if len(xs) == 0 {
		return "none"
	}
	return strings.Join(xs, ", ")
}
