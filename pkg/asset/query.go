package asset

import (
	"fmt"
	"regexp"

	"github.com/mestiri/wrangler/pkg/ports"
	"github.com/mestiri/wrangler/pkg/scene"
)

// Ancestors returns the ancestor chain of a node, immediate parent first,
// outermost (scene-root-most) ancestor last.
func Ancestors(g ports.Graph, node string) ([]string, error) {
	var ancestors []string
	cur := node
	for {
		parent, err := g.Parent(cur)
		if err != nil {
			return nil, fmt.Errorf("ancestors of %s: %w", node, err)
		}
		if parent == "" {
			return ancestors, nil
		}
		ancestors = append(ancestors, parent)
		cur = parent
	}
}

// SameReference reports whether two nodes belong to the same referenced-file
// group. Unreferenced nodes never share a group, not even with themselves.
func SameReference(g ports.Graph, a, b string) (bool, error) {
	refA, err := g.Reference(a)
	if err != nil {
		return false, err
	}
	if refA == nil {
		return false, nil
	}
	refB, err := g.Reference(b)
	if err != nil {
		return false, err
	}
	if refB == nil {
		return false, nil
	}
	return refA.Node == refB.Node, nil
}

// DescendantsByType collects the descendants of root (root included) whose
// scene-graph type is typ, in hierarchy order. For shape types the result is
// the parent transforms of the matching shapes, de-duplicated.
// Restricting the query to an intermediate group is done by passing that
// group as root.
func DescendantsByType(g ports.Graph, root string, typ scene.NodeType) ([]string, error) {
	var matches []string
	if err := walkByType(g, root, typ, &matches); err != nil {
		return nil, err
	}
	if !typ.Shape() {
		return matches, nil
	}

	// Shapes resolve to their parent transforms.
	var parents []string
	seen := make(map[string]bool)
	for _, shape := range matches {
		parent, err := g.Parent(shape)
		if err != nil {
			return nil, err
		}
		if parent == "" || seen[parent] {
			continue
		}
		seen[parent] = true
		parents = append(parents, parent)
	}
	return parents, nil
}

func walkByType(g ports.Graph, node string, typ scene.NodeType, matches *[]string) error {
	typeOf, err := g.TypeOf(node)
	if err != nil {
		return err
	}
	if typ == scene.TypeAny || typeOf == typ {
		*matches = append(*matches, node)
	}
	children, err := g.Children(node, scene.TypeAny)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := walkByType(g, child, typ, matches); err != nil {
			return err
		}
	}
	return nil
}

// FilterChildren returns the children of node of the given type whose simple
// name matches pattern. The pattern is a regular expression anchored at the
// start of the name.
func FilterChildren(g ports.Graph, node, pattern string, typ scene.NodeType) ([]string, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	children, err := g.Children(node, typ)
	if err != nil {
		return nil, err
	}
	var matched []string
	for _, child := range children {
		if re.MatchString(scene.SimpleName(child)) {
			matched = append(matched, child)
		}
	}
	return matched, nil
}
