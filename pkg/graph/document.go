package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document - Node-Link Serialization
// =============================================================================

// Document is the node-link JSON form of a graph. It feeds the interactive
// view of the HTML report and the json export format.
//
//	{
//	  "directed": false,
//	  "nodes": [{"id": "Alice", "degree": 2}],
//	  "edges": [{"from": "Alice", "to": "Bob", "weight": 3}]
//	}
type Document struct {
	Directed bool      `json:"directed"`
	Nodes    []DocNode `json:"nodes"`
	Edges    []DocEdge `json:"edges"`
}

// DocNode is a serialized node.
type DocNode struct {
	ID     string            `json:"id"`
	Degree int               `json:"degree"`
	Attrs  map[string]string `json:"attrs,omitempty"`
}

// DocEdge is a serialized edge.
type DocEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight,omitempty"`
	Label  string `json:"label,omitempty"`
}

// ToDocument converts a graph to its serialization form. Nodes and edges keep
// insertion order.
func ToDocument(g View) Document {
	nodes := g.Nodes()
	edges := g.Edges()
	doc := Document{
		Directed: g.IsDirected(),
		Nodes:    make([]DocNode, len(nodes)),
		Edges:    make([]DocEdge, len(edges)),
	}
	for i, id := range nodes {
		doc.Nodes[i] = DocNode{ID: string(id), Degree: g.Degree(id), Attrs: g.NodeAttrs(id)}
	}
	for i, e := range edges {
		doc.Edges[i] = DocEdge{From: string(e.From), To: string(e.To), Weight: int(e.Weight), Label: e.Label}
	}
	return doc
}

// MarshalDocument converts a graph to indented JSON bytes.
func MarshalDocument(g View) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDocument(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocument writes a graph as indented JSON to w.
func WriteDocument(g View, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteDocumentFile writes a graph as JSON to path.
func WriteDocumentFile(g View, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(g, f)
}

// ReadDocument decodes a node-link document and rebuilds the graph it
// describes. Undirected documents yield an [*Undirected], directed ones a
// [*Directed].
func ReadDocument(r io.Reader) (View, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Directed {
		g := NewDirected()
		if err := fillNodes(doc, g.AddNode, g.SetAttr); err != nil {
			return nil, err
		}
		for _, e := range doc.Edges {
			if err := g.AddLabeledEdge(NodeID(e.From), NodeID(e.To), e.Label); err != nil {
				return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
			}
		}
		return g, nil
	}

	g := NewUndirected()
	if err := fillNodes(doc, g.AddNode, g.SetAttr); err != nil {
		return nil, err
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(NodeID(e.From), NodeID(e.To), Weight(e.Weight)); err != nil {
			return nil, fmt.Errorf("add edge %s–%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

func fillNodes(doc Document, add func(NodeID), setAttr func(NodeID, string, string) error) error {
	for _, n := range doc.Nodes {
		add(NodeID(n.ID))
		for k, v := range n.Attrs {
			if err := setAttr(NodeID(n.ID), k, v); err != nil {
				return err
			}
		}
	}
	return nil
}
