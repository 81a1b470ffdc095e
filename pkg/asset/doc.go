/*
Package asset implements the classification core of wrangler.

An asset is a logical grouping of nodes (geometry, controls, skeleton) under
one or more root nodes, classified by structural convention. The package
defines a family of asset variants (Character, Prop, Environment, Generic,
Vehicle), each pairing a validation predicate with type-specific accessors,
and a Factory that resolves candidate root nodes and constructs the first
variant that validates.

All queries go through the ports.Graph interface, so the package works
against any scene-graph backend: the host application in production, the
in-memory and snapshot-file adapters in tests and batch tools.
*/
package asset
