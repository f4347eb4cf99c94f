package graph

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// GEXF 1.2 document structure. Only the subset Gephi needs for static graphs
// with string node attributes is modelled.
type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Meta    gexfMeta  `xml:"meta"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfMeta struct {
	Creator     string `xml:"creator"`
	Description string `xml:"description,omitempty"`
}

type gexfGraph struct {
	Mode            string          `xml:"mode,attr"`
	DefaultEdgeType string          `xml:"defaultedgetype,attr"`
	Attributes      *gexfAttributes `xml:"attributes,omitempty"`
	Nodes           []gexfNode      `xml:"nodes>node"`
	Edges           []gexfEdge      `xml:"edges>edge"`
}

type gexfAttributes struct {
	Class string          `xml:"class,attr"`
	Attrs []gexfAttribute `xml:"attribute"`
}

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID        string          `xml:"id,attr"`
	Label     string          `xml:"label,attr"`
	AttValues []gexfAttrValue `xml:"attvalues>attvalue,omitempty"`
}

type gexfAttrValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	ID     string  `xml:"id,attr"`
	Source string  `xml:"source,attr"`
	Target string  `xml:"target,attr"`
	Weight float64 `xml:"weight,attr,omitempty"`
	Label  string  `xml:"label,attr,omitempty"`
}

// WriteGEXF writes g as a GEXF 1.2 document. Node attributes become string
// attribute columns, declared in sorted order; relation labels become edge
// labels and weights edge weights.
func WriteGEXF(w io.Writer, g View, description string) error {
	nodes := g.Nodes()

	var keys []string
	seen := map[string]bool{}
	for _, id := range nodes {
		for k := range g.NodeAttrs(id) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	slices.Sort(keys)

	edgeType := "undirected"
	if g.IsDirected() {
		edgeType = "directed"
	}
	doc := gexfDoc{
		XMLNS:   "http://gexf.net/1.2",
		Version: "1.2",
		Meta:    gexfMeta{Creator: "meetgraph", Description: description},
		Graph: gexfGraph{
			Mode:            "static",
			DefaultEdgeType: edgeType,
			Nodes:           make([]gexfNode, 0, len(nodes)),
		},
	}

	if len(keys) > 0 {
		attrs := &gexfAttributes{Class: "node"}
		for i, k := range keys {
			attrs.Attrs = append(attrs.Attrs, gexfAttribute{ID: strconv.Itoa(i), Title: k, Type: "string"})
		}
		doc.Graph.Attributes = attrs
	}

	for _, id := range nodes {
		n := gexfNode{ID: string(id), Label: string(id)}
		a := g.NodeAttrs(id)
		for i, k := range keys {
			if v, ok := a[k]; ok {
				n.AttValues = append(n.AttValues, gexfAttrValue{For: strconv.Itoa(i), Value: v})
			}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}

	for i, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     strconv.Itoa(i),
			Source: string(e.From),
			Target: string(e.To),
			Weight: float64(e.Weight),
			Label:  e.Label,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gexf: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
