package scene

import "strings"

// NodeType tags the scene-graph category of a node.
type NodeType string

// Node type constants mirror the host application's type names.
const (
	// TypeTransform is a positional group in the hierarchy. Asset roots are
	// always transforms.
	TypeTransform NodeType = "transform"
	// TypeMesh is a polygonal geometry shape.
	TypeMesh NodeType = "mesh"
	// TypeCurve is a NURBS curve shape, used for animation controls.
	TypeCurve NodeType = "nurbsCurve"
	// TypeJoint is a skeleton joint.
	TypeJoint NodeType = "joint"

	// TypeAny matches every node type in queries that accept a type filter.
	TypeAny NodeType = ""
)

// Shape reports whether the type describes a shape node rather than a
// hierarchy node. Descendant queries for shape types resolve to the parent
// transforms of the matching shapes.
func (t NodeType) Shape() bool {
	return t == TypeMesh || t == TypeCurve
}

// Reference identifies the file-reference group a node belongs to.
// Two nodes are in the same group when their reference node ids are equal.
type Reference struct {
	// Node is the host-side reference node id (e.g. "jjRN").
	Node string `json:"node" yaml:"node"`
	// File is the path of the referenced scene file.
	File string `json:"file" yaml:"file"`
}

const (
	pathSep      = "|"
	namespaceSep = ":"
)

// SimpleName strips the hierarchy-path prefix and namespace prefix from a
// node identifier: "|set_grp|jj:jj_char_grp" becomes "jj_char_grp".
func SimpleName(node string) string {
	base := node
	if i := strings.LastIndex(base, pathSep); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, namespaceSep); i >= 0 {
		base = base[i+1:]
	}
	return base
}

// Namespace returns the namespace portion of the node's own name, without
// separators, or "" when the node is not namespaced.
func Namespace(node string) string {
	base := node
	if i := strings.LastIndex(base, pathSep); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, namespaceSep); i >= 0 {
		return base[:i]
	}
	return ""
}

// Split breaks a full node identifier into its hierarchy segments, outermost
// first. Leading separators produce no empty segments.
func Split(node string) []string {
	var segs []string
	for _, s := range strings.Split(node, pathSep) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Join assembles hierarchy segments into a full identifier rooted at the
// scene root.
func Join(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	return pathSep + strings.Join(segments, pathSep)
}

// ParentPath returns the identifier of the node's parent, or "" when the node
// sits directly under the scene root.
func ParentPath(node string) string {
	i := strings.LastIndex(node, pathSep)
	if i <= 0 {
		return ""
	}
	return node[:i]
}
