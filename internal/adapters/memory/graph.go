// Package memory provides an in-memory ports.Graph with a builder API.
// It backs tests and is the materialization target of the snapshot loader.
package memory

import (
	"fmt"

	"github.com/mestiri/wrangler/pkg/ports"
	"github.com/mestiri/wrangler/pkg/scene"
)

type node struct {
	path         string
	typ          scene.NodeType
	ref          string // reference node id, "" when unreferenced
	intermediate bool
	children     []string
}

// Graph is an in-memory scene graph. The zero value is not usable; use New.
// Builder methods are not safe for concurrent use; the query side is
// read-only once built.
type Graph struct {
	nodes     map[string]*node
	roots     []string
	refs      map[string]string // reference node id -> source file
	selection []string
	sceneName string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
		refs:  make(map[string]string),
	}
}

// NodeOption configures a node added to the graph.
type NodeOption func(*node)

// WithRef marks the node as reference-backed by the given reference node.
func WithRef(refNode string) NodeOption {
	return func(n *node) {
		n.ref = refNode
	}
}

// AsIntermediate marks a shape as an intermediate (construction-history)
// object; intermediate shapes are hidden from child listings.
func AsIntermediate() NodeOption {
	return func(n *node) {
		n.intermediate = true
	}
}

// SetSceneName records the file path of the scene the graph was built from.
func (g *Graph) SetSceneName(name string) { g.sceneName = name }

// AddReference registers a reference node and the file it points at.
func (g *Graph) AddReference(refNode, file string) { g.refs[refNode] = file }

// Select replaces the current selection.
func (g *Graph) Select(nodes ...string) error {
	for _, n := range nodes {
		if _, ok := g.nodes[n]; !ok {
			return fmt.Errorf("select %s: %w", n, ports.ErrNodeNotFound)
		}
	}
	g.selection = append([]string(nil), nodes...)
	return nil
}

// AddNode inserts a node by full path. The parent must already exist unless
// the node sits directly under the scene root.
func (g *Graph) AddNode(path string, typ scene.NodeType, opts ...NodeOption) error {
	if path == "" || path == "|" {
		return fmt.Errorf("empty node path")
	}
	if _, ok := g.nodes[path]; ok {
		return fmt.Errorf("node already exists: %s", path)
	}

	parent := scene.ParentPath(path)
	if parent != "" {
		p, ok := g.nodes[parent]
		if !ok {
			return fmt.Errorf("parent of %s: %w", path, ports.ErrNodeNotFound)
		}
		p.children = append(p.children, path)
	}

	n := &node{path: path, typ: typ}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[path] = n
	if parent == "" {
		g.roots = append(g.roots, path)
	}
	return nil
}

func (g *Graph) lookup(path string) (*node, error) {
	n, ok := g.nodes[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ports.ErrNodeNotFound)
	}
	return n, nil
}

// Roots lists the transform nodes directly under the scene root.
func (g *Graph) Roots() ([]string, error) {
	var roots []string
	for _, path := range g.roots {
		if g.nodes[path].typ == scene.TypeTransform {
			roots = append(roots, path)
		}
	}
	return roots, nil
}

// Children lists direct children filtered by type, skipping intermediates.
func (g *Graph) Children(path string, typ scene.NodeType) ([]string, error) {
	n, err := g.lookup(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, child := range n.children {
		c := g.nodes[child]
		if c.intermediate {
			continue
		}
		if typ != scene.TypeAny && c.typ != typ {
			continue
		}
		out = append(out, child)
	}
	return out, nil
}

// Parent returns the parent identifier, "" for top-level nodes.
func (g *Graph) Parent(path string) (string, error) {
	if _, err := g.lookup(path); err != nil {
		return "", err
	}
	return scene.ParentPath(path), nil
}

// TypeOf returns the node's scene-graph type.
func (g *Graph) TypeOf(path string) (scene.NodeType, error) {
	n, err := g.lookup(path)
	if err != nil {
		return "", err
	}
	return n.typ, nil
}

// Reference returns the node's reference group, nil when unreferenced.
func (g *Graph) Reference(path string) (*scene.Reference, error) {
	n, err := g.lookup(path)
	if err != nil {
		return nil, err
	}
	if n.ref == "" {
		return nil, nil
	}
	return &scene.Reference{Node: n.ref, File: g.refs[n.ref]}, nil
}

// Selection lists the currently selected nodes.
func (g *Graph) Selection() ([]string, error) {
	return append([]string(nil), g.selection...), nil
}

// SceneName returns the scene file path the graph was built from.
func (g *Graph) SceneName() (string, error) { return g.sceneName, nil }

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

var _ ports.Graph = (*Graph)(nil)
