// Package jsontree provides an order-preserving, tagged representation of
// JSON documents.
//
// # Overview
//
// Meeting-summary exports are heterogeneous: the same key can hold a string in
// one record and an object in the next, and the order in which keys appear
// matters when path strings are reported. Decoding into map[string]any loses
// that order, so this package parses documents with gjson into a [Value], a
// tagged variant with exactly one case per JSON kind:
//
//   - [Object]: ordered members, see [Value.Members]
//   - [Array]: items, see [Value.Items]
//   - [String], [Number], [Bool], [Null]: scalars
//
// Traversals switch on [Value.Kind] and handle every case explicitly.
//
// # Duplicate keys
//
// When an object repeats a key, the member keeps the position of its first
// occurrence and the value of its last one, which matches what most JSON
// decoders expose to callers.
//
// # Usage
//
//	doc, err := jsontree.Parse(data)
//	if err != nil {
//	    return err
//	}
//	info, _ := doc.Get("meetingInfo")
//	host := info.StringField("host")
package jsontree
