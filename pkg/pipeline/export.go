package pipeline

import (
	"bytes"
	"context"
	"fmt"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/graph"
	"github.com/SingularityNET-Archive/meetgraph/pkg/meeting"
)

// ValidateGraph checks that kind is an exportable graph.
func ValidateGraph(kind string) error {
	return mgerrors.ValidateChoice(mgerrors.ErrCodeInvalidInput, "graph", kind, Graphs)
}

// ValidateFormat checks that format is an export format.
func ValidateFormat(format string) error {
	return mgerrors.ValidateChoice(mgerrors.ErrCodeInvalidFormat, "export format", format, Formats)
}

// SelectGraph returns the graph of the given kind. The path graph and the
// meeting knowledge graph are built on demand when the result has not been
// through [Build].
func SelectGraph(res *Result, kind string) (graph.View, error) {
	if err := ValidateGraph(kind); err != nil {
		return nil, err
	}
	if kind == GraphMeeting {
		g, _, err := meeting.Build(res.Records)
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "build meeting graph")
		}
		return g, nil
	}
	if res.Fields == nil {
		Build(res)
	}
	switch kind {
	case GraphCoattendance:
		return res.Coattendance, nil
	case GraphField:
		return res.Fields, nil
	}
	return res.PathGraph, nil
}

// Export serializes g in format. description ends up in GEXF metadata.
func Export(ctx context.Context, g graph.View, format, description string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	opts := graph.DOTOptions{Weights: !g.IsDirected(), TypeAttr: meeting.AttrType}
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := graph.WriteDocument(g, &buf); err != nil {
			return nil, fmt.Errorf("export json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(graph.ToDOT(g, opts)), nil
	case FormatSVG:
		svg, err := graph.RenderSVG(ctx, graph.ToDOT(g, opts))
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	}
	var buf bytes.Buffer
	if err := graph.WriteGEXF(&buf, g, description); err != nil {
		return nil, fmt.Errorf("export gexf: %w", err)
	}
	return buf.Bytes(), nil
}
