package hierarchy

import "sort"

// Distance returns the number of parent hops between two types when one is
// an ancestor-or-self of the other. ok is false when the types do not lie on
// a common root-to-node path (conceptually infinite distance).
func (h *Hierarchy) Distance(a, b string) (int, bool) {
	na, okA := h.nodes[a]
	nb, okB := h.nodes[b]
	if !okA || !okB {
		return 0, false
	}

	dist, found := 0, false
	if i := index(nb.path, a); i >= 0 {
		dist, found = i, true
	}
	if i := index(na.path, b); i >= 0 && (!found || i < dist) {
		dist, found = i, true
	}
	return dist, found
}

// MostSpecific removes every type that is a strict ancestor of another type
// in the same set, keeping only the maximal elements under the is-a order.
// Input order is preserved; unknown names pass through untouched.
func (h *Hierarchy) MostSpecific(types []string) []string {
	redundant := make(map[string]bool)
	for _, t := range types {
		n, ok := h.nodes[t]
		if !ok {
			continue
		}
		for _, ancestor := range n.path[1:] {
			redundant[ancestor] = true
		}
	}

	filtered := make([]string, 0, len(types))
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		if redundant[t] || seen[t] {
			continue
		}
		seen[t] = true
		filtered = append(filtered, t)
	}
	return filtered
}

// Expand returns the closure of a type set under both ancestor and
// descendant relations: for each input type, its full ancestor path plus
// every subtype below it. This is the "on-topic" neighborhood a prediction
// must fall into to earn any gain. The result is sorted for determinism.
func (h *Hierarchy) Expand(types []string) []string {
	expanded := make(map[string]bool)
	for _, t := range types {
		n, ok := h.nodes[t]
		if !ok {
			continue
		}
		for _, ancestor := range n.path {
			expanded[ancestor] = true
		}
		h.descend(t, expanded)
	}

	out := make([]string, 0, len(expanded))
	for t := range expanded {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// descend walks the precomputed child index below a type. The original
// formulation scanned every node in the hierarchy per call; the child index
// gives the same set in time proportional to the subtree.
func (h *Hierarchy) descend(t string, into map[string]bool) {
	for _, child := range h.nodes[t].children {
		if into[child] {
			continue
		}
		into[child] = true
		h.descend(child, into)
	}
}

func index(path []string, name string) int {
	for i, p := range path {
		if p == name {
			return i
		}
	}
	return -1
}
