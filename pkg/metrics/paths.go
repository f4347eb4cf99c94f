package metrics

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/SingularityNET-Archive/meetgraph/pkg/extract"
)

// PrefixCount is the number of paths sharing a parent prefix.
type PrefixCount struct {
	Prefix string
	Count  int
}

// PathStats summarises the structure of a list of JSON paths.
type PathStats struct {
	Total     int
	MaxDepth  int
	MeanDepth float64

	// Deepest lists the paths at MaxDepth in input order.
	Deepest []string

	// Parents counts parent prefixes, most common first, ties in order of
	// first appearance.
	Parents []PrefixCount
}

// ComputePathStats computes depth and parent-prefix statistics for paths.
func ComputePathStats(paths []string) PathStats {
	s := PathStats{Total: len(paths)}
	if len(paths) == 0 {
		return s
	}

	depths := make([]float64, len(paths))
	var order []string
	counts := map[string]int{}
	for i, p := range paths {
		d := extract.PathDepth(p)
		depths[i] = float64(d)
		s.MaxDepth = max(s.MaxDepth, d)

		prefix := extract.ParentPrefix(p)
		if counts[prefix] == 0 {
			order = append(order, prefix)
		}
		counts[prefix]++
	}
	s.MeanDepth = stat.Mean(depths, nil)
	for i, p := range paths {
		if int(depths[i]) == s.MaxDepth {
			s.Deepest = append(s.Deepest, p)
		}
	}

	s.Parents = make([]PrefixCount, len(order))
	for i, p := range order {
		s.Parents[i] = PrefixCount{Prefix: p, Count: counts[p]}
	}
	slices.SortStableFunc(s.Parents, func(a, b PrefixCount) int { return cmp.Compare(b.Count, a.Count) })
	return s
}
