package asset

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mestiri/wrangler/pkg/ports"
)

// Factory enumerates candidate root nodes and classifies them against the
// registered variant family.
type Factory struct {
	g         ports.Graph
	variants  []Variant
	inferKind bool
	logger    *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithVariants replaces the default variant family. Order decides ties:
// the first variant that validates wins.
func WithVariants(variants ...Variant) FactoryOption {
	return func(f *Factory) {
		f.variants = variants
	}
}

// WithPathInference makes the factory infer an expected asset kind from the
// current scene's storage path and try that kind's variant first.
func WithPathInference() FactoryOption {
	return func(f *Factory) {
		f.inferKind = true
	}
}

// WithLogger sets a structured logger for classification tracing.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory creates a Factory over the given scene graph.
func NewFactory(g ports.Graph, opts ...FactoryOption) *Factory {
	f := &Factory{
		g:        g,
		variants: DefaultVariants(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find classifies every top-level transform in the scene. Roots that no
// variant validates are skipped silently.
func (f *Factory) Find() ([]Asset, error) {
	roots, err := f.g.Roots()
	if err != nil {
		return nil, fmt.Errorf("listing scene roots: %w", err)
	}
	var assets []Asset
	for _, root := range roots {
		a, err := f.Classify(root)
		if err != nil {
			return nil, err
		}
		if a != nil {
			assets = append(assets, a)
		}
	}
	return assets, nil
}

// FromSelection resolves each selected node to its asset root and classifies
// the resolved roots. Selected nodes resolving to the same root, or to roots
// in the same reference group as an already classified asset, fold into one
// asset (the extra roots become auxiliary roots).
func (f *Factory) FromSelection() ([]Asset, error) {
	selected, err := f.g.Selection()
	if err != nil {
		return nil, fmt.Errorf("listing selection: %w", err)
	}

	var roots []string
	seen := make(map[string]bool)
	for _, node := range selected {
		root, err := f.resolveRoot(node)
		if err != nil {
			return nil, err
		}
		if seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}

	var assets []Asset
	for _, root := range roots {
		if folded, err := f.foldRoot(assets, root); err != nil {
			return nil, err
		} else if folded {
			continue
		}
		a, err := f.Classify(root)
		if err != nil {
			return nil, err
		}
		if a != nil {
			assets = append(assets, a)
		}
	}
	return assets, nil
}

// foldRoot attaches root as an auxiliary root of an existing asset when both
// belong to the same reference group.
func (f *Factory) foldRoot(assets []Asset, root string) (bool, error) {
	for _, a := range assets {
		same, err := SameReference(f.g, a.Root(), root)
		if err != nil {
			return false, err
		}
		if same {
			a.AddRoot(root)
			f.logger.Debug("folded auxiliary root", "root", root, "asset", a.Root())
			return true, nil
		}
	}
	return false, nil
}

// Classify runs the node through the variant predicates and constructs the
// first match. It returns (nil, nil) when no variant validates.
func (f *Factory) Classify(node string) (Asset, error) {
	for _, v := range f.order() {
		ok, err := v.Validate(f.g, node)
		if err != nil {
			return nil, fmt.Errorf("validating %s as %s: %w", node, v.Kind(), err)
		}
		if ok {
			f.logger.Debug("classified node", "node", node, "kind", v.Kind().String())
			return v.New(f.g, node), nil
		}
	}
	f.logger.Debug("no variant matched", "node", node)
	return nil, nil
}

// order returns the variant iteration order, moving the path-inferred kind
// to the front when inference is enabled.
func (f *Factory) order() []Variant {
	if !f.inferKind {
		return f.variants
	}
	name, err := f.g.SceneName()
	if err != nil || name == "" {
		return f.variants
	}
	kind, ok := KindFromPath(name)
	if !ok {
		return f.variants
	}
	ordered := make([]Variant, 0, len(f.variants))
	for _, v := range f.variants {
		if v.Kind() == kind {
			ordered = append(ordered, v)
		}
	}
	for _, v := range f.variants {
		if v.Kind() != kind {
			ordered = append(ordered, v)
		}
	}
	return ordered
}

// resolveRoot finds the asset root for a selected node.
//
// Unreferenced nodes extend to their outermost ancestor. Reference-backed
// nodes extend upward only while each successive ancestor stays in the same
// reference group; the last matching node is the root.
func (f *Factory) resolveRoot(node string) (string, error) {
	ref, err := f.g.Reference(node)
	if err != nil {
		return "", fmt.Errorf("resolving root of %s: %w", node, err)
	}
	ancestors, err := Ancestors(f.g, node)
	if err != nil {
		return "", err
	}

	if ref == nil {
		if len(ancestors) == 0 {
			return node, nil
		}
		return ancestors[len(ancestors)-1], nil
	}

	root := node
	for _, anc := range ancestors {
		same, err := SameReference(f.g, node, anc)
		if err != nil {
			return "", err
		}
		if !same {
			break
		}
		root = anc
	}
	return root, nil
}
