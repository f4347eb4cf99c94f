// Package pkg provides the libraries behind meetgraph, a graph analysis of
// archived meeting summaries.
//
// # Overview
//
// meetgraph reads a JSON array of meeting summaries, derives three graphs
// from it and reports network metrics over them:
//
//   - co-attendance: participants linked by the meetings they shared
//   - field co-occurrence: JSON keys linked by appearing in the same object
//   - path structure: every JSON path linked to its structural parent
//
// # Architecture
//
// The typical data flow:
//
//	URL / file / s3:// / stdin
//	         ↓
//	    [fetch] (optional [cache] in front of remote sources)
//	         ↓
//	    [jsontree] (order-preserving parse)
//	         ↓
//	    [extract] (records, participants, field sets, paths, workgroups)
//	         ↓
//	    [graph] (undirected weighted and directed graphs)
//	         ↓
//	    [metrics] (degree, centrality, clustering, components, path stats)
//	         ↓
//	    [report] (Markdown and HTML)
//
// [pipeline] runs these stages for the CLI; each package is usable alone.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(fetch.New(), nil)
//	res, err := runner.Execute(ctx, pipeline.Options{Input: "meetings.json"})
//	if err != nil {
//	    return err
//	}
//	files, err := pipeline.WriteReports(res.Data, "reports/unified_analysis_report.md", true)
//
// # Main Packages
//
// ## Analysis
//
// [jsontree] - JSON values that keep object key order, built on gjson.
//
// [extract] - Tree walks that harvest meeting records, participant lists,
// field-name sets, path strings and workgroup tallies.
//
// [graph] - Graph storage over gonum with stable node order, plus JSON, DOT,
// SVG and GEXF output.
//
// [metrics] - networkx-compatible degree, centrality, clustering and
// component metrics.
//
// [meeting] - Knowledge graph of meetings, people, workgroups, documents and
// decisions.
//
// [schema] - Structural outline of a JSON document as Markdown or JSON Schema.
//
// [report] - Unified and per-method Markdown reports and the tabbed HTML page.
//
// ## Infrastructure
//
// [fetch] - Source retrieval over HTTP, S3, files and stdin.
//
// [cache] - File and Redis caches for remote sources.
//
// [config] - Layered settings from defaults, files, environment and flags.
//
// [errors] - Error codes for user-facing failures.
//
// [observability] - Optional hooks for pipeline, cache and HTTP events.
//
// ## External Integrations
//
// [integrations] - Shared HTTP client; [integrations/github] lists review
// issues for [audit], which aggregates reviewer ratings into reviews.json.
//
// [fetch]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/fetch
// [cache]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/cache
// [jsontree]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/jsontree
// [extract]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/extract
// [graph]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/graph
// [metrics]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/metrics
// [meeting]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/meeting
// [schema]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/schema
// [report]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/observability
// [integrations]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/integrations
// [integrations/github]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/integrations/github
// [audit]: https://pkg.go.dev/github.com/SingularityNET-Archive/meetgraph/pkg/audit
package pkg
