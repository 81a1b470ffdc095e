/*
Package wrangler classifies asset root nodes in 3D scene graphs.

Given a scene (or a selection of nodes within it), wrangler identifies asset
roots — characters, props, environments, vehicles, or unclassified groups —
and exposes accessors for each asset's geometry, control curves and skeleton
joints. Classification is rule-based: each asset kind pairs a structural
predicate with type-specific accessors, and the first kind that validates a
candidate root wins.

The host application's scene-query API is modeled as the ports.Graph
interface. In production that port is implemented against the running host;
for batch tooling and tests, the bundled adapters load scene snapshots
(YAML exports of a scene graph) into an in-memory implementation.

# Usage

	eng := wrangler.New(wrangler.WithLogger(logger))

	rec, err := eng.ScanFile(ctx, "jj_rig_v012.scene.yaml")
	if err != nil {
		log.Fatal(err)
	}
	for _, a := range rec.Assets {
		fmt.Printf("%s %s: %d meshes\n", a.Kind, a.Root, a.Geometry)
	}

Hosts that embed wrangler pass their own Graph implementation instead:

	assets, err := eng.Assets(hostGraph)
	selected, err := eng.AssetsFromSelection(hostGraph)
*/
package wrangler
