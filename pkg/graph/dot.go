package graph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures DOT output.
type DOTOptions struct {
	// Weights labels undirected edges with their weight and scales pen width.
	Weights bool

	// TypeAttr names the node attribute used to pick a fill colour, e.g.
	// "type" for the meeting knowledge graph. Empty disables colouring.
	TypeAttr string
}

var typePalette = []string{
	"#cfe2ff", "#d1e7dd", "#fff3cd", "#f8d7da", "#e2d9f3",
	"#cff4fc", "#ffe5d0", "#e9ecef", "#d3f9d8",
}

// ToDOT converts a graph to Graphviz DOT. Undirected graphs are emitted as
// "graph" with "--" edges, directed graphs as "digraph" with "->" edges.
func ToDOT(g View, opts DOTOptions) string {
	keyword, arrow := "graph", "--"
	if g.IsDirected() {
		keyword, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	colours := map[string]string{}
	for _, id := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", TruncateLabel(string(id), 40))}
		if opts.TypeAttr != "" {
			if t := g.NodeAttrs(id)[opts.TypeAttr]; t != "" {
				c, ok := colours[t]
				if !ok {
					c = typePalette[len(colours)%len(typePalette)]
					colours[t] = c
				}
				attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
			}
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", string(id), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		var attrs []string
		switch {
		case e.Label != "":
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		case opts.Weights && e.Weight > 0:
			attrs = append(attrs, fmt.Sprintf("label=\"%d\"", e.Weight), fmt.Sprintf("penwidth=%d", min(int(e.Weight), 8)))
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q %s %q;\n", string(e.From), arrow, string(e.To))
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", string(e.From), arrow, string(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG with the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// TruncateLabel flattens newlines and trims text to at most limit runes, ending
// with "…" when shortened.
func TruncateLabel(text string, limit int) string {
	safe := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	r := []rune(safe)
	if len(r) <= limit {
		return safe
	}
	return string(r[:limit-1]) + "…"
}
