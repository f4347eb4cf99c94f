// Package pipeline runs the meetgraph analysis end to end.
//
// This package implements the fetch → parse → build → metrics pipeline that
// every CLI command shares, so a report, an export and a schema dump of the
// same input all see the same graphs.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Fetch: Read the raw document from a URL, file, s3:// URI or stdin
//  2. Parse: Decode the JSON into an order-preserving tree
//  3. Build: Derive the co-attendance, field co-occurrence and path graphs
//  4. Metrics: Compute degree, centrality, clustering, components and path stats
//
// Output is not part of the run: [Result] carries everything the renderers
// need, and [WriteReports] writes files only once every stage has succeeded.
//
// # Usage
//
//	runner := pipeline.NewRunner(fetch.New(), logger)
//	res, err := runner.Execute(ctx, pipeline.Options{Input: src, LimitTop: 10})
//	if err != nil {
//	    return err
//	}
//	err = pipeline.WriteReports(res.Data, "reports/unified_analysis_report.md", true)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/SingularityNET-Archive/meetgraph/pkg/extract"
	"github.com/SingularityNET-Archive/meetgraph/pkg/fetch"
	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultLimitTop is the number of rows in top-N tables.
const DefaultLimitTop = report.DefaultLimitTop

// Graph kinds accepted by exports.
const (
	GraphCoattendance = "coattendance"
	GraphField        = "field"
	GraphPath         = "path"
	GraphMeeting      = "meeting"
)

// Graphs lists the exportable graph kinds.
var Graphs = []string{GraphCoattendance, GraphField, GraphPath, GraphMeeting}

// Export formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatGEXF = "gexf"
)

// Formats lists the export formats.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatGEXF}

// =============================================================================
// Options and Result
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Input is a URL, file path, s3:// URI or "-" for stdin.
	Input string

	// LimitTop bounds top-N tables. Zero means DefaultLimitTop.
	LimitTop int

	// Now stamps the report. Nil means time.Now.
	Now func() time.Time

	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Input == "" {
		o.Input = fetch.DefaultInput
	}
	if o.LimitTop <= 0 {
		o.LimitTop = DefaultLimitTop
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Result holds the output of every stage.
type Result struct {
	Source string
	Raw    []byte
	Doc    jsontree.Value

	Records []jsontree.Value
	Paths   []string

	Coattendance *graph.Undirected
	Fields       *graph.Undirected
	PathGraph    *graph.Directed

	// Data is the metrics bundle rendered by the report package.
	Data *report.Data

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bytes       int
	Cached      bool
	FetchTime   time.Duration
	ParseTime   time.Duration
	BuildTime   time.Duration
	MetricsTime time.Duration
}

// Tally counts workgroups. By default it counts the record-level workgroup
// of each meeting and collects meeting lines; nested counts every value under
// a workgroup(s) key anywhere in the document instead.
func (r *Result) Tally(nested bool) *extract.WorkgroupTally {
	var t extract.WorkgroupTally
	if nested {
		t.CountNested(r.Doc)
	} else {
		t.CountRecords(r.Records)
	}
	return &t
}
