// Package extract derives the structural views that the graph builders
// consume: field co-occurrence sets, dot/bracket path strings, and the
// participant list of a meeting record.
//
// Every function here is total: missing or mis-typed substructure yields an
// empty result instead of an error, because meeting exports are written by
// hand and routinely omit fields.
package extract

import (
	"strconv"
	"strings"

	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
)

// Records returns the meeting records held by a document: the items of a
// top-level array, the document itself when it is an object, and nothing
// otherwise.
func Records(doc jsontree.Value) []jsontree.Value {
	switch doc.Kind() {
	case jsontree.Array:
		return doc.Items()
	case jsontree.Object:
		return []jsontree.Value{doc}
	default:
		return nil
	}
}

// FieldCombinations returns the key set of every object in v that has more
// than one key, nested objects included. Keys keep document order. The same
// set is emitted once per object it appears in.
func FieldCombinations(v jsontree.Value) [][]string {
	var sets [][]string
	collectFieldSets(v, &sets)
	return sets
}

func collectFieldSets(v jsontree.Value, sets *[][]string) {
	switch v.Kind() {
	case jsontree.Object:
		if v.Len() > 1 {
			*sets = append(*sets, v.Keys())
		}
		for _, m := range v.Members() {
			collectFieldSets(m.Value, sets)
		}
	case jsontree.Array:
		for _, item := range v.Items() {
			collectFieldSets(item, sets)
		}
	case jsontree.String, jsontree.Number, jsontree.Bool, jsontree.Null:
	}
}

// Paths returns every path reachable from v in depth-first order, parents
// before children. Object members extend the prefix with ".key" (or "key" at
// the root) and array items with "[i]".
//
//	Paths({"a": {"b": 1}}) == ["a", "a.b"]
//	Paths({"xs": [{"y": 1}]}) == ["xs", "xs[0]", "xs[0].y"]
func Paths(v jsontree.Value) []string {
	var paths []string
	collectPaths(v, "", &paths)
	return paths
}

func collectPaths(v jsontree.Value, prefix string, paths *[]string) {
	switch v.Kind() {
	case jsontree.Object:
		for _, m := range v.Members() {
			p := m.Key
			if prefix != "" {
				p = prefix + "." + m.Key
			}
			*paths = append(*paths, p)
			collectPaths(m.Value, p, paths)
		}
	case jsontree.Array:
		for i, item := range v.Items() {
			p := prefix + "[" + strconv.Itoa(i) + "]"
			*paths = append(*paths, p)
			collectPaths(item, p, paths)
		}
	case jsontree.String, jsontree.Number, jsontree.Bool, jsontree.Null:
	}
}

// Participants returns the people attached to a meeting record:
// the comma-separated meetingInfo.peoplePresent entries followed by the host
// and documenter, trimmed, without empties, deduplicated in first-seen order.
// Names are compared by exact string equality.
func Participants(record jsontree.Value) []string {
	info := record.Field("meetingInfo")

	names := SplitList(info.StringField("peoplePresent"))
	for _, key := range []string{"host", "documenter"} {
		if p := strings.TrimSpace(info.StringField(key)); p != "" {
			names = append(names, p)
		}
	}
	return dedupe(names)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SplitList splits a comma-separated free-text field into trimmed, non-empty
// entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
