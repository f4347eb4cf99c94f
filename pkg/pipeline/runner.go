package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/extract"
	"github.com/SingularityNET-Archive/meetgraph/pkg/fetch"
	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
	"github.com/SingularityNET-Archive/meetgraph/pkg/observability"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
)

// Runner executes pipeline stages with a shared fetcher and logger.
//
// The Runner is stateless apart from those two; it does not keep results
// between runs.
type Runner struct {
	Fetcher *fetch.Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil fetcher uses fetch.New() and a nil
// logger uses log.Default().
func NewRunner(f *fetch.Fetcher, logger *log.Logger) *Runner {
	if f == nil {
		f = fetch.New()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Execute runs fetch → parse → build → metrics.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	res, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded document",
		"source", res.Source,
		"bytes", res.Stats.Bytes,
		"cached", res.Stats.Cached,
		"records", len(res.Records),
		"duration", res.Stats.FetchTime+res.Stats.ParseTime)

	buildStart := time.Now()
	done := observability.Stage(ctx, observability.StageBuild)
	Build(res)
	done(nil)
	res.Stats.BuildTime = time.Since(buildStart)
	logger.Debug("built graphs",
		"coattendance_nodes", res.Coattendance.NodeCount(),
		"coattendance_edges", res.Coattendance.EdgeCount(),
		"field_nodes", res.Fields.NodeCount(),
		"field_edges", res.Fields.EdgeCount(),
		"paths", len(res.Paths),
		"duration", res.Stats.BuildTime)

	metricsStart := time.Now()
	done = observability.Stage(ctx, observability.StageMetrics)
	res.Data = report.NewData(res.Coattendance, res.Fields, res.PathGraph, res.Paths, opts.LimitTop)
	res.Data.GeneratedAt = opts.Now()
	res.Data.Source = res.Source
	res.Data.Fingerprint = report.Fingerprint(res.Raw)
	done(nil)
	res.Stats.MetricsTime = time.Since(metricsStart)

	if !res.Data.Centrality.EigenvectorConverged && res.Fields.NodeCount() > 0 {
		logger.Warn("eigenvector centrality did not converge, reporting zeros")
	}
	logger.Debug("computed metrics",
		"components", res.Data.Components.Count(),
		"avg_clustering", res.Data.Clustering.Average,
		"duration", res.Stats.MetricsTime)

	return res, nil
}

// Load runs the fetch and parse stages only. Commands that need the tree but
// no metrics (schema, workgroups) stop here.
func (r *Runner) Load(ctx context.Context, input string) (*Result, error) {
	if input == "" {
		input = fetch.DefaultInput
	}
	fetchStart := time.Now()
	done := observability.Stage(ctx, observability.StageFetch)
	fr, err := r.Fetcher.Fetch(ctx, input)
	done(err)
	if err != nil {
		return nil, classifyFetch(err, input)
	}
	res := &Result{Source: fr.Source, Raw: fr.Data}
	res.Stats.Bytes = len(fr.Data)
	res.Stats.Cached = fr.Cached
	res.Stats.FetchTime = time.Since(fetchStart)

	parseStart := time.Now()
	done = observability.Stage(ctx, observability.StageParse)
	doc, err := Parse(fr.Data, input)
	done(err)
	if err != nil {
		return nil, err
	}
	res.Doc = doc
	res.Records = extract.Records(doc)
	res.Stats.ParseTime = time.Since(parseStart)
	return res, nil
}

// Parse decodes a JSON document.
func Parse(data []byte, source string) (jsontree.Value, error) {
	doc, err := jsontree.Parse(data)
	if err != nil {
		return jsontree.Value{}, mgerrors.Wrap(mgerrors.ErrCodeInvalidJSON, err, "%s is not valid JSON", source)
	}
	return doc, nil
}

// Build derives the three analysis graphs from a loaded result.
func Build(res *Result) {
	res.Paths = extract.Paths(res.Doc)
	res.Coattendance = graph.Coattendance(res.Records)
	res.Fields = graph.FieldCooccurrence(res.Doc)
	res.PathGraph = graph.PathStructure(res.Paths)
}
