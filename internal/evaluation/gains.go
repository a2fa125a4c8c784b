package evaluation

import (
	"sort"

	"github.com/smarttask/typeval/internal/hierarchy"
)

// TypeGains computes the linear-decay gain for each predicted type, in rank
// order, against a set of gold types. A prediction outside the expanded
// gold neighborhood gains 0; inside it, the gain is 1 - d/h where d is the
// hierarchy distance to the closest gold type and h the maximum hierarchy
// depth. An exact match gains 1 and gains never go negative: expansion
// membership guarantees a finite distance of at most h.
func TypeGains(h *hierarchy.Hierarchy, predicted, gold []string) []float64 {
	expanded := make(map[string]bool)
	for _, t := range h.Expand(gold) {
		expanded[t] = true
	}
	maxDepth := h.MaxDepth()

	gains := make([]float64, len(predicted))
	for i, p := range predicted {
		if !expanded[p] {
			continue
		}
		// Not every gold type lies on a shared branch with p; those are
		// infinitely far and dominated by the closest one.
		minDist, found := 0, false
		for _, g := range gold {
			if d, ok := h.Distance(p, g); ok && (!found || d < minDist) {
				minDist, found = d, true
			}
		}
		if found {
			gains[i] = 1 - float64(minDist)/float64(maxDepth)
		}
	}
	return gains
}

// IdealTypeGains computes the gain sequence an oracle ranking would produce
// for a gold type set: every type in the expanded gold closure scored
// against the gold set, sorted descending. The closure is usually longer
// than any prediction list; DCG's k cutoff truncates it, which is the
// intended way the ideal sequence is bounded.
func IdealTypeGains(h *hierarchy.Hierarchy, gold []string) []float64 {
	gains := TypeGains(h, h.Expand(gold), gold)
	sort.Sort(sort.Reverse(sort.Float64Slice(gains)))
	return gains
}
