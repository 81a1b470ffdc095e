// Package file loads scene snapshots from YAML files into memory graphs.
//
// A snapshot is the serialized form of a host scene graph, as exported by the
// pipeline's publish step: the source scene path, a flat node list with full
// identifiers and types, the reference table, and (optionally) a selection.
package file

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/mestiri/wrangler/internal/adapters/memory"
	"github.com/mestiri/wrangler/pkg/scene"
)

// snapshot is the raw YAML document. Node entries stay untyped here and are
// decoded individually so a single malformed record names its node.
type snapshot struct {
	Scene      string            `yaml:"scene"`
	References map[string]string `yaml:"references"`
	Nodes      []map[string]any  `yaml:"nodes"`
	Selection  []string          `yaml:"selection"`
}

// nodeRecord is one decoded node entry.
type nodeRecord struct {
	Path         string `mapstructure:"path"`
	Type         string `mapstructure:"type"`
	Ref          string `mapstructure:"ref"`
	Intermediate bool   `mapstructure:"intermediate"`
}

// Load reads a snapshot file and materializes it as an in-memory graph.
func Load(path string) (*memory.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return g, nil
}

// Parse materializes a YAML snapshot as an in-memory graph.
func Parse(data []byte) (*memory.Graph, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	records := make([]nodeRecord, 0, len(snap.Nodes))
	for i, raw := range snap.Nodes {
		var rec nodeRecord
		if err := mapstructure.Decode(raw, &rec); err != nil {
			return nil, fmt.Errorf("node entry %d: %w", i, err)
		}
		if rec.Path == "" {
			return nil, fmt.Errorf("node entry %d: missing path", i)
		}
		if rec.Type == "" {
			return nil, fmt.Errorf("node %s: missing type", rec.Path)
		}
		records = append(records, rec)
	}

	// Parents must exist before their children; snapshots are not required
	// to be ordered, so insert shallow nodes first.
	sort.SliceStable(records, func(i, j int) bool {
		return depth(records[i].Path) < depth(records[j].Path)
	})

	g := memory.New()
	g.SetSceneName(snap.Scene)
	for refNode, file := range snap.References {
		g.AddReference(refNode, file)
	}
	for _, rec := range records {
		var opts []memory.NodeOption
		if rec.Ref != "" {
			opts = append(opts, memory.WithRef(rec.Ref))
		}
		if rec.Intermediate {
			opts = append(opts, memory.AsIntermediate())
		}
		if err := g.AddNode(rec.Path, scene.NodeType(rec.Type), opts...); err != nil {
			return nil, fmt.Errorf("adding node: %w", err)
		}
	}
	if len(snap.Selection) > 0 {
		if err := g.Select(snap.Selection...); err != nil {
			return nil, fmt.Errorf("restoring selection: %w", err)
		}
	}
	return g, nil
}

func depth(path string) int {
	return strings.Count(path, "|")
}
