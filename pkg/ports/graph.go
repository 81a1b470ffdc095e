package ports

import (
	"errors"

	"github.com/mestiri/wrangler/pkg/scene"
)

// ErrNodeNotFound is returned by Graph implementations when a node id does
// not exist in the scene.
var ErrNodeNotFound = errors.New("node not found")

// Graph is the host application's scene-query API.
//
// Every method is a synchronous, blocking query against the host scene graph.
// The graph is an external, uncontrolled resource: wrangler never locks it,
// and results observed across calls may be inconsistent if the scene mutates
// concurrently (the host environment does not generally allow that).
type Graph interface {
	// Roots lists the transform nodes sitting directly under the scene root.
	Roots() ([]string, error)

	// Children lists the direct children of node, filtered by type.
	// scene.TypeAny disables the filter. Intermediate (construction-history)
	// shapes are never returned. Unknown nodes yield ErrNodeNotFound.
	Children(node string, typ scene.NodeType) ([]string, error)

	// Parent returns the identifier of the node's parent, or "" when the
	// node sits directly under the scene root.
	Parent(node string) (string, error)

	// TypeOf returns the scene-graph type of the node.
	TypeOf(node string) (scene.NodeType, error)

	// Reference returns the reference group the node belongs to, or nil when
	// the node is not reference-backed.
	Reference(node string) (*scene.Reference, error)

	// Selection lists the currently selected nodes as full identifiers.
	Selection() ([]string, error)

	// SceneName returns the file path of the currently open scene, or ""
	// for an unsaved scene.
	SceneName() (string, error)
}
