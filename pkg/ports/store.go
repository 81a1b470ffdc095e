package ports

import (
	"context"
	"errors"
	"time"
)

// ErrNotCached is returned when a scan record cannot be found in the store.
var ErrNotCached = errors.New("scan record not cached")

// ScanRecord is the persisted form of a classified scene. It is a flat
// summary: enough to answer "what lives in this file" without reopening it.
type ScanRecord struct {
	// Scene is the source scene file the snapshot was taken from.
	Scene string `json:"scene"`
	// ScannedAt is when the classification ran.
	ScannedAt time.Time `json:"scanned_at"`
	// Assets lists the classified asset roots found in the scene.
	Assets []AssetRecord `json:"assets"`
}

// AssetRecord summarizes one classified asset.
type AssetRecord struct {
	Root     string   `json:"root"`
	Kind     string   `json:"kind"`
	AuxRoots []string `json:"aux_roots,omitempty"`
	Geometry int      `json:"geometry"`
	Controls int      `json:"controls"`
	Joints   int      `json:"joints"`
}

// ResultStore defines the interface for persisting scan results.
// It is used as a cache: scans key records by snapshot path and fall through
// to classification on ErrNotCached.
type ResultStore interface {
	// Save persists the record under the given key.
	Save(ctx context.Context, key string, rec *ScanRecord) error

	// Load retrieves the record for a key.
	// Returns ErrNotCached when no record exists.
	Load(ctx context.Context, key string) (*ScanRecord, error)

	// Delete removes the record for a key.
	Delete(ctx context.Context, key string) error
}
