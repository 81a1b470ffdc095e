package asset

import (
	"fmt"

	"github.com/mestiri/wrangler/pkg/ports"
	"github.com/mestiri/wrangler/pkg/scene"
)

// Asset is a classified grouping of scene nodes under a root transform.
//
// Assets are constructed by the Factory per query and never persisted. The
// root is guaranteed to identify a transform node at classification time; if
// the scene changes afterwards the asset goes stale silently (there is no
// invalidation mechanism).
type Asset interface {
	fmt.Stringer

	// Root returns the root node identifier of the asset.
	Root() string
	// Kind returns the classified type tag.
	Kind() Kind
	// AuxRoots lists additional root nodes folded into this logical asset,
	// e.g. extra reference roots resolved from the same selection.
	AuxRoots() []string
	// AddRoot folds an additional root node into the asset.
	AddRoot(node string)

	// Geometry lists the mesh-bearing transforms of the asset.
	Geometry() ([]string, error)
	// Controls lists the control-curve transforms of the asset.
	Controls() ([]string, error)
	// Joints lists the skeleton joints of the asset.
	Joints() ([]string, error)

	// IsReferenced reports whether the asset root is reference-backed.
	IsReferenced() (bool, error)
	// Namespace returns the namespace of the asset root, "" when none.
	Namespace() string
	// SourceFile returns the reference file the root came from, or the
	// current scene file for unreferenced assets.
	SourceFile() (string, error)
}

// base provides the default accessor implementations shared by all variants:
// unscoped descendant queries from the asset root.
type base struct {
	g    ports.Graph
	root string
	kind Kind
	name string
	aux  []string
}

func (b *base) String() string { return fmt.Sprintf("%s(%q)", b.name, b.root) }

func (b *base) Root() string { return b.root }

func (b *base) Kind() Kind { return b.kind }

func (b *base) AuxRoots() []string {
	out := make([]string, len(b.aux))
	copy(out, b.aux)
	return out
}

func (b *base) AddRoot(node string) { b.aux = append(b.aux, node) }

func (b *base) Geometry() ([]string, error) {
	return DescendantsByType(b.g, b.root, scene.TypeMesh)
}

func (b *base) Controls() ([]string, error) {
	return DescendantsByType(b.g, b.root, scene.TypeCurve)
}

func (b *base) Joints() ([]string, error) {
	return DescendantsByType(b.g, b.root, scene.TypeJoint)
}

func (b *base) IsReferenced() (bool, error) {
	ref, err := b.g.Reference(b.root)
	if err != nil {
		return false, err
	}
	return ref != nil, nil
}

func (b *base) Namespace() string { return scene.Namespace(b.root) }

func (b *base) SourceFile() (string, error) {
	ref, err := b.g.Reference(b.root)
	if err != nil {
		return "", err
	}
	if ref != nil {
		return ref.File, nil
	}
	return b.g.SceneName()
}

// group returns the first child transform whose simple name matches pattern.
func (b *base) group(pattern string) (string, error) {
	groups, err := FilterChildren(b.g, b.root, pattern, scene.TypeTransform)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "", fmt.Errorf("%q under %s: %w", pattern, b.root, ErrGroupNotFound)
	}
	return groups[0], nil
}

// Character is a rigged character asset. Its accessors are narrowed to the
// conventional geo/ctls/rig groups directly under the root.
type Character struct{ base }

// GeoGroup returns the geometry group under the character root.
func (c *Character) GeoGroup() (string, error) { return c.group(`.*geo_grp$`) }

// ControlsGroup returns the animation-controls group under the character root.
func (c *Character) ControlsGroup() (string, error) { return c.group(`.*ctls_grp$`) }

// RigGroup returns the rig/skeleton group under the character root.
func (c *Character) RigGroup() (string, error) { return c.group(`.*rig_grp$`) }

func (c *Character) Geometry() ([]string, error) {
	grp, err := c.GeoGroup()
	if err != nil {
		return nil, err
	}
	return DescendantsByType(c.g, grp, scene.TypeMesh)
}

func (c *Character) Controls() ([]string, error) {
	grp, err := c.ControlsGroup()
	if err != nil {
		return nil, err
	}
	return DescendantsByType(c.g, grp, scene.TypeCurve)
}

func (c *Character) Joints() ([]string, error) {
	grp, err := c.RigGroup()
	if err != nil {
		return nil, err
	}
	return DescendantsByType(c.g, grp, scene.TypeJoint)
}

// Prop is a prop asset: a transform carrying a global control curve.
type Prop struct{ base }

// Environment is an environment grouping asset.
type Environment struct{ base }

// Generic is an unclassified group that still follows asset-root naming.
type Generic struct{ base }

// Vehicle is a reserved asset type; nothing validates as one yet.
type Vehicle struct{ base }
