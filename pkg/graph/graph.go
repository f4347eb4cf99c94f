package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrSelfLoop is returned when an edge would connect a node to itself.
	ErrSelfLoop = errors.New("self loop")

	// ErrUnknownNode is returned when a node ID is not present in the graph.
	ErrUnknownNode = errors.New("unknown node")
)

// NodeID identifies a node: a field name, a person, a path or an entity label.
type NodeID string

// Weight counts how often two items co-occurred.
type Weight int

// Attrs holds string attributes attached to a node, such as its entity type.
type Attrs map[string]string

// Edge is one edge in insertion order. For undirected graphs From and To
// follow the orientation of the first insertion.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight Weight // 0 for directed graphs
	Label  string // relation label, directed graphs only
}

// View is the read-only surface shared by [Undirected] and [Directed]. The
// exporters accept any View.
type View interface {
	IsDirected() bool
	Nodes() []NodeID
	Edges() []Edge
	NodeCount() int
	EdgeCount() int
	Degree(id NodeID) int
	NodeAttrs(id NodeID) Attrs
}

// =============================================================================
// Node index
// =============================================================================

// nodeIndex maps NodeIDs to dense gonum IDs and keeps attributes.
type nodeIndex struct {
	ids   map[NodeID]int64
	names []NodeID
	attrs map[NodeID]Attrs
}

func newNodeIndex() nodeIndex {
	return nodeIndex{
		ids:   make(map[NodeID]int64),
		attrs: make(map[NodeID]Attrs),
	}
}

// intern returns the gonum ID for id, allocating one when id is new.
func (x *nodeIndex) intern(id NodeID) (int64, bool) {
	if n, ok := x.ids[id]; ok {
		return n, false
	}
	n := int64(len(x.names))
	x.ids[id] = n
	x.names = append(x.names, id)
	return n, true
}

// GonumID returns the dense gonum ID of a node.
func (x *nodeIndex) GonumID(id NodeID) (int64, bool) {
	n, ok := x.ids[id]
	return n, ok
}

// NodeOf returns the NodeID for a gonum ID.
func (x *nodeIndex) NodeOf(n int64) NodeID { return x.names[n] }

// HasNode reports whether id is in the graph.
func (x *nodeIndex) HasNode(id NodeID) bool {
	_, ok := x.ids[id]
	return ok
}

// Nodes returns all node IDs in insertion order.
func (x *nodeIndex) Nodes() []NodeID { return slices.Clone(x.names) }

// NodeCount returns the number of nodes.
func (x *nodeIndex) NodeCount() int { return len(x.names) }

// SetAttr sets an attribute on an existing node.
func (x *nodeIndex) SetAttr(id NodeID, key, value string) error {
	if !x.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	a := x.attrs[id]
	if a == nil {
		a = Attrs{}
		x.attrs[id] = a
	}
	a[key] = value
	return nil
}

// NodeAttrs returns a copy of the attributes of id, or nil.
func (x *nodeIndex) NodeAttrs(id NodeID) Attrs {
	a := x.attrs[id]
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

func (x *nodeIndex) sortedNames(it gonum.Nodes) []NodeID {
	var ns []int64
	for it.Next() {
		ns = append(ns, it.Node().ID())
	}
	slices.Sort(ns)
	out := make([]NodeID, len(ns))
	for i, n := range ns {
		out[i] = x.names[n]
	}
	return out
}

// =============================================================================
// Undirected
// =============================================================================

// Undirected is a weighted undirected graph without self loops.
type Undirected struct {
	nodeIndex
	g     *simple.WeightedUndirectedGraph
	order [][2]int64
}

// NewUndirected returns an empty undirected graph.
func NewUndirected() *Undirected {
	return &Undirected{
		nodeIndex: newNodeIndex(),
		g:         simple.NewWeightedUndirectedGraph(0, 0),
	}
}

// IsDirected reports false.
func (g *Undirected) IsDirected() bool { return false }

// AddNode adds id if it is not present yet.
func (g *Undirected) AddNode(id NodeID) {
	if n, isNew := g.intern(id); isNew {
		g.g.AddNode(simple.Node(n))
	}
}

// AddEdge adds w to the weight of the edge u–v, creating the edge and its
// endpoints when missing.
func (g *Undirected) AddEdge(u, v NodeID, w Weight) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}
	g.AddNode(u)
	g.AddNode(v)
	un, vn := g.ids[u], g.ids[v]

	current := 0.0
	if g.g.HasEdgeBetween(un, vn) {
		current = g.g.WeightedEdge(un, vn).Weight()
	} else {
		g.order = append(g.order, [2]int64{un, vn})
	}
	g.g.SetWeightedEdge(g.g.NewWeightedEdge(simple.Node(un), simple.Node(vn), current+float64(w)))
	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Undirected) HasEdge(u, v NodeID) bool {
	un, ok1 := g.ids[u]
	vn, ok2 := g.ids[v]
	return ok1 && ok2 && g.g.HasEdgeBetween(un, vn)
}

// Weight returns the weight of the edge u–v.
func (g *Undirected) Weight(u, v NodeID) (Weight, bool) {
	if !g.HasEdge(u, v) {
		return 0, false
	}
	return Weight(g.g.WeightedEdge(g.ids[u], g.ids[v]).Weight()), true
}

// EdgeCount returns the number of edges.
func (g *Undirected) EdgeCount() int { return len(g.order) }

// Edges returns all edges in insertion order with their current weights.
func (g *Undirected) Edges() []Edge {
	out := make([]Edge, len(g.order))
	for i, e := range g.order {
		out[i] = Edge{
			From:   g.names[e[0]],
			To:     g.names[e[1]],
			Weight: Weight(g.g.WeightedEdge(e[0], e[1]).Weight()),
		}
	}
	return out
}

// Neighbors returns the nodes adjacent to id in insertion order.
func (g *Undirected) Neighbors(id NodeID) []NodeID {
	n, ok := g.ids[id]
	if !ok {
		return nil
	}
	return g.sortedNames(g.g.From(n))
}

// Degree returns the number of distinct neighbours of id.
func (g *Undirected) Degree(id NodeID) int {
	n, ok := g.ids[id]
	if !ok {
		return 0
	}
	return g.g.From(n).Len()
}

// Gonum exposes the backing gonum graph for algorithm calls. Node IDs in it
// are the dense insertion indexes; see [Undirected.NodeOf].
func (g *Undirected) Gonum() *simple.WeightedUndirectedGraph { return g.g }

// =============================================================================
// Directed
// =============================================================================

// Directed is an unweighted directed graph without self loops. Each ordered
// pair holds at most one edge, optionally labelled with a relation.
type Directed struct {
	nodeIndex
	g      *simple.DirectedGraph
	order  [][2]int64
	labels map[[2]int64]string
}

// NewDirected returns an empty directed graph.
func NewDirected() *Directed {
	return &Directed{
		nodeIndex: newNodeIndex(),
		g:         simple.NewDirectedGraph(),
		labels:    make(map[[2]int64]string),
	}
}

// IsDirected reports true.
func (g *Directed) IsDirected() bool { return true }

// AddNode adds id if it is not present yet.
func (g *Directed) AddNode(id NodeID) {
	if n, isNew := g.intern(id); isNew {
		g.g.AddNode(simple.Node(n))
	}
}

// AddEdge adds the edge from→to, creating endpoints when missing. Adding an
// existing edge is a no-op.
func (g *Directed) AddEdge(from, to NodeID) error {
	return g.AddLabeledEdge(from, to, "")
}

// AddLabeledEdge adds the edge from→to with a relation label. When the edge
// already exists only a non-empty label is updated.
func (g *Directed) AddLabeledEdge(from, to NodeID, label string) error {
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	g.AddNode(from)
	g.AddNode(to)
	key := [2]int64{g.ids[from], g.ids[to]}
	if !g.g.HasEdgeFromTo(key[0], key[1]) {
		g.g.SetEdge(g.g.NewEdge(simple.Node(key[0]), simple.Node(key[1])))
		g.order = append(g.order, key)
	}
	if label != "" {
		g.labels[key] = label
	}
	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Directed) HasEdge(from, to NodeID) bool {
	fn, ok1 := g.ids[from]
	tn, ok2 := g.ids[to]
	return ok1 && ok2 && g.g.HasEdgeFromTo(fn, tn)
}

// EdgeCount returns the number of edges.
func (g *Directed) EdgeCount() int { return len(g.order) }

// Edges returns all edges in insertion order.
func (g *Directed) Edges() []Edge {
	out := make([]Edge, len(g.order))
	for i, e := range g.order {
		out[i] = Edge{From: g.names[e[0]], To: g.names[e[1]], Label: g.labels[e]}
	}
	return out
}

// Successors returns the targets of edges leaving id in insertion order.
func (g *Directed) Successors(id NodeID) []NodeID {
	n, ok := g.ids[id]
	if !ok {
		return nil
	}
	return g.sortedNames(g.g.From(n))
}

// Predecessors returns the sources of edges entering id in insertion order.
func (g *Directed) Predecessors(id NodeID) []NodeID {
	n, ok := g.ids[id]
	if !ok {
		return nil
	}
	return g.sortedNames(g.g.To(n))
}

// Degree returns in-degree plus out-degree of id.
func (g *Directed) Degree(id NodeID) int {
	n, ok := g.ids[id]
	if !ok {
		return 0
	}
	return g.g.From(n).Len() + g.g.To(n).Len()
}

// Gonum exposes the backing gonum graph.
func (g *Directed) Gonum() *simple.DirectedGraph { return g.g }

var (
	_ View = (*Undirected)(nil)
	_ View = (*Directed)(nil)
)
