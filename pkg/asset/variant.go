package asset

import (
	"regexp"
	"strings"

	"github.com/mestiri/wrangler/pkg/ports"
	"github.com/mestiri/wrangler/pkg/scene"
)

// Variant pairs a validation predicate with an asset constructor. The
// Factory tries variants in order and builds the first one that validates.
type Variant interface {
	// Kind returns the tag this variant classifies as.
	Kind() Kind
	// Validate reports whether the node satisfies this variant's structural
	// convention. A false result is not an error.
	Validate(g ports.Graph, node string) (bool, error)
	// New constructs the asset for a validated root.
	New(g ports.Graph, root string) Asset
}

// DefaultVariants returns the built-in variant family in classification
// order: Character, Prop, Environment, Generic, Vehicle.
func DefaultVariants() []Variant {
	return []Variant{
		characterVariant{},
		propVariant{},
		environmentVariant{},
		genericVariant{},
		vehicleVariant{},
	}
}

var (
	propNameRE    = regexp.MustCompile(`(?i)^.*_glbl\d?$`)
	envNameRE     = regexp.MustCompile(`^ENV_grp`)
	genericNameRE = regexp.MustCompile(`(?i)^(.*_grp|.*root)`)
)

func isTransform(g ports.Graph, node string) (bool, error) {
	typ, err := g.TypeOf(node)
	if err != nil {
		return false, err
	}
	return typ == scene.TypeTransform, nil
}

type characterVariant struct{}

func (characterVariant) Kind() Kind { return KindCharacter }

// Validate requires transform children named *geo_grp, *ctls_grp and *rig_grp.
func (characterVariant) Validate(g ports.Graph, node string) (bool, error) {
	ok, err := isTransform(g, node)
	if err != nil || !ok {
		return false, err
	}
	children, err := g.Children(node, scene.TypeTransform)
	if err != nil {
		return false, err
	}
	for _, suffix := range []string{"geo_grp", "ctls_grp", "rig_grp"} {
		if !anyHasSuffix(children, suffix) {
			return false, nil
		}
	}
	return true, nil
}

func (characterVariant) New(g ports.Graph, root string) Asset {
	return &Character{base{g: g, root: root, kind: KindCharacter, name: "Character"}}
}

func anyHasSuffix(nodes []string, suffix string) bool {
	for _, n := range nodes {
		if strings.HasSuffix(scene.SimpleName(n), suffix) {
			return true
		}
	}
	return false
}

type propVariant struct{}

func (propVariant) Kind() Kind { return KindProp }

// Validate requires a nurbs-curve shape child and a *_glbl / *_glbl<digit> name.
func (propVariant) Validate(g ports.Graph, node string) (bool, error) {
	ok, err := isTransform(g, node)
	if err != nil || !ok {
		return false, err
	}
	curves, err := g.Children(node, scene.TypeCurve)
	if err != nil {
		return false, err
	}
	if len(curves) == 0 {
		return false, nil
	}
	return propNameRE.MatchString(scene.SimpleName(node)), nil
}

func (propVariant) New(g ports.Graph, root string) Asset {
	return &Prop{base{g: g, root: root, kind: KindProp, name: "Prop"}}
}

type environmentVariant struct{}

func (environmentVariant) Kind() Kind { return KindEnvironment }

// Validate requires an ENV_grp name and no shape children.
func (environmentVariant) Validate(g ports.Graph, node string) (bool, error) {
	ok, err := isTransform(g, node)
	if err != nil || !ok {
		return false, err
	}
	for _, typ := range []scene.NodeType{scene.TypeMesh, scene.TypeCurve} {
		shapes, err := g.Children(node, typ)
		if err != nil {
			return false, err
		}
		if len(shapes) > 0 {
			return false, nil
		}
	}
	return envNameRE.MatchString(scene.SimpleName(node)), nil
}

func (environmentVariant) New(g ports.Graph, root string) Asset {
	return &Environment{base{g: g, root: root, kind: KindEnvironment, name: "Environment"}}
}

type genericVariant struct{}

func (genericVariant) Kind() Kind { return KindGeneric }

// Validate accepts any transform following asset-root naming (*_grp, *root).
func (genericVariant) Validate(g ports.Graph, node string) (bool, error) {
	ok, err := isTransform(g, node)
	if err != nil || !ok {
		return false, err
	}
	return genericNameRE.MatchString(scene.SimpleName(node)), nil
}

func (genericVariant) New(g ports.Graph, root string) Asset {
	return &Generic{base{g: g, root: root, kind: KindGeneric, name: "Generic"}}
}

type vehicleVariant struct{}

func (vehicleVariant) Kind() Kind { return KindVehicle }

// Validate never matches; the vehicle convention is not defined yet.
func (vehicleVariant) Validate(ports.Graph, string) (bool, error) {
	return false, nil
}

func (vehicleVariant) New(g ports.Graph, root string) Asset {
	return &Vehicle{base{g: g, root: root, kind: KindVehicle, name: "Vehicle"}}
}
