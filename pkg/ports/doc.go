/*
Package ports defines the driven ports (interfaces) for the wrangler library.

These interfaces decouple the classification core from external
implementations, allowing it to run against any scene-graph backend and any
result cache.

# Key Interfaces

  - Graph: the host application's scene-query API (node listing, hierarchy
    traversal, reference lookup, current-scene query).
  - ResultStore: persistence for classification results, used as a scan cache.
*/
package ports
