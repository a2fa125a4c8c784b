// Package hierarchy holds the answer-type ontology: a single-parent tree of
// type names with root-relative depths, and the tree operations the gain
// model is built on.
package hierarchy

import (
	"fmt"
	"sort"

	"github.com/smarttask/typeval/internal/pkg/errors"
)

// Row is one parsed line of the type hierarchy table.
type Row struct {
	Name   string
	Depth  int
	Parent string
}

type node struct {
	parent string
	depth  int
	// path is the ancestor chain starting at the node itself and stopping
	// just before the root boundary (the first name not present in the
	// table, e.g. owl:Thing). Precomputed at load so lookups need no
	// synchronization when questions are scored concurrently.
	path []string
	// children holds immediate subtypes, used by Expand to walk down.
	children []string
}

// Hierarchy is the immutable type tree. All mutation happens in Load.
type Hierarchy struct {
	nodes    map[string]*node
	maxDepth int
}

// Load builds a Hierarchy from already-parsed rows and precomputes every
// node's ancestor path and child list. The maximum depth seen across all
// rows becomes the distance normalizer for linear gains.
func Load(rows []Row) (*Hierarchy, error) {
	h := &Hierarchy{nodes: make(map[string]*node, len(rows))}
	for _, r := range rows {
		if r.Name == "" {
			return nil, errors.MalformedInput("hierarchy row has empty type name")
		}
		if r.Depth < 0 {
			return nil, errors.MalformedInput(fmt.Sprintf("type %q has negative depth %d", r.Name, r.Depth))
		}
		h.nodes[r.Name] = &node{parent: r.Parent, depth: r.Depth}
		if r.Depth > h.maxDepth {
			h.maxDepth = r.Depth
		}
	}

	for name, n := range h.nodes {
		if p, ok := h.nodes[n.parent]; ok {
			p.children = append(p.children, name)
		}
	}
	for _, n := range h.nodes {
		sort.Strings(n.children)
	}

	for name := range h.nodes {
		if _, err := h.computePath(name, len(h.nodes)); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hierarchy) computePath(name string, budget int) ([]string, error) {
	n := h.nodes[name]
	if n.path != nil {
		return n.path, nil
	}
	path := []string{name}
	current := n.parent
	for {
		pn, ok := h.nodes[current]
		if !ok {
			break // root boundary, intentionally excluded from paths
		}
		if len(path) > budget {
			return nil, errors.MalformedInput(fmt.Sprintf("parent cycle detected at type %q", name))
		}
		if pn.path != nil {
			path = append(path, pn.path...)
			break
		}
		path = append(path, current)
		current = pn.parent
	}
	n.path = path
	return path, nil
}

// MaxDepth returns the deepest depth value seen at load time.
func (h *Hierarchy) MaxDepth() int {
	return h.maxDepth
}

// Len returns the number of types in the hierarchy.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// Contains reports whether a type name is present in the hierarchy.
func (h *Hierarchy) Contains(name string) bool {
	_, ok := h.nodes[name]
	return ok
}

// Depth returns the stored depth for a type name.
func (h *Hierarchy) Depth(name string) (int, error) {
	n, ok := h.nodes[name]
	if !ok {
		return 0, errors.TypeNotFound(name)
	}
	return n.depth, nil
}

// PathOf returns the ancestor path of a type: the type itself first, then
// each ancestor up to (and excluding) the root boundary. The returned slice
// is shared and must not be modified. Unknown names are a checked error
// rather than a panic.
func (h *Hierarchy) PathOf(name string) ([]string, error) {
	n, ok := h.nodes[name]
	if !ok {
		return nil, errors.TypeNotFound(name)
	}
	return n.path, nil
}
