package asset

import (
	"path/filepath"
	"strings"
)

// Kind tags the classified type of an asset. The tag values double as the
// folder names used by asset storage conventions (e.g. ".../assets/char/jj").
type Kind string

const (
	// KindCharacter is a rigged character: geo, controls and rig groups.
	KindCharacter Kind = "char"
	// KindProp is a prop with a global control curve.
	KindProp Kind = "prop"
	// KindEnvironment is an environment grouping node.
	KindEnvironment Kind = "envr"
	// KindGeneric is an unclassified group that still looks like an asset root.
	KindGeneric Kind = "unknown"
	// KindVehicle is reserved; no structural convention exists for it yet.
	KindVehicle Kind = "vhcl"
)

func (k Kind) String() string { return string(k) }

// Kinds returns all asset kinds in classification order. The order decides
// ties when several variants validate the same root: first match wins.
func Kinds() []Kind {
	return []Kind{KindCharacter, KindProp, KindEnvironment, KindGeneric, KindVehicle}
}

// KindFromPath infers an expected asset kind from a scene file's storage
// path: a folder segment equal to a kind tag selects that kind.
// Matching is case-insensitive.
func KindFromPath(path string) (Kind, bool) {
	normalized := strings.ToLower(filepath.ToSlash(path))
	for _, seg := range strings.Split(normalized, "/") {
		for _, k := range Kinds() {
			if seg == string(k) {
				return k, true
			}
		}
	}
	return "", false
}
