package wrangler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/mestiri/wrangler/internal/adapters/file"
	"github.com/mestiri/wrangler/internal/metrics"
	"github.com/mestiri/wrangler/pkg/asset"
	"github.com/mestiri/wrangler/pkg/ports"
)

// Engine is the high-level entry point for the wrangler library.
// It wraps the classification factory and provides snapshot scanning with
// optional result caching and metrics.
type Engine struct {
	logger    *slog.Logger
	store     ports.ResultStore
	metrics   *metrics.Metrics
	inferKind bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithResultStore enables scan-result caching through the given store.
func WithResultStore(store ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithMetrics records scan metrics into the given collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithPathInference makes classification try the asset kind inferred from
// the scene's storage path first.
func WithPathInference() Option {
	return func(e *Engine) {
		e.inferKind = true
	}
}

// New initializes a new wrangler Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) factory(g ports.Graph) *asset.Factory {
	opts := []asset.FactoryOption{asset.WithLogger(e.logger)}
	if e.inferKind {
		opts = append(opts, asset.WithPathInference())
	}
	return asset.NewFactory(g, opts...)
}

// Assets classifies every top-level transform in the graph.
func (e *Engine) Assets(g ports.Graph) ([]asset.Asset, error) {
	return e.factory(g).Find()
}

// AssetsFromSelection resolves the current selection to asset roots and
// classifies them.
func (e *Engine) AssetsFromSelection(g ports.Graph) ([]asset.Asset, error) {
	return e.factory(g).FromSelection()
}

// ScanGraph classifies a graph and summarizes the result as a scan record.
func (e *Engine) ScanGraph(ctx context.Context, g ports.Graph) (*ports.ScanRecord, error) {
	start := time.Now()
	rec, err := e.scanGraph(g)
	e.metrics.ScanDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		e.metrics.ScenesScanned.WithLabelValues("error").Inc()
		return nil, err
	}
	e.metrics.ScenesScanned.WithLabelValues("ok").Inc()
	for _, a := range rec.Assets {
		e.metrics.AssetsFound.WithLabelValues(a.Kind).Inc()
	}
	return rec, nil
}

func (e *Engine) scanGraph(g ports.Graph) (*ports.ScanRecord, error) {
	sceneName, err := g.SceneName()
	if err != nil {
		return nil, fmt.Errorf("querying scene name: %w", err)
	}
	assets, err := e.Assets(g)
	if err != nil {
		return nil, err
	}

	rec := &ports.ScanRecord{
		Scene:     sceneName,
		ScannedAt: time.Now().UTC(),
	}
	for _, a := range assets {
		geo, err := a.Geometry()
		if err != nil {
			return nil, fmt.Errorf("asset %s geometry: %w", a.Root(), err)
		}
		ctls, err := a.Controls()
		if err != nil {
			return nil, fmt.Errorf("asset %s controls: %w", a.Root(), err)
		}
		joints, err := a.Joints()
		if err != nil {
			return nil, fmt.Errorf("asset %s joints: %w", a.Root(), err)
		}
		rec.Assets = append(rec.Assets, ports.AssetRecord{
			Root:     a.Root(),
			Kind:     a.Kind().String(),
			AuxRoots: a.AuxRoots(),
			Geometry: len(geo),
			Controls: len(ctls),
			Joints:   len(joints),
		})
		e.logger.Info("classified asset",
			"asset", a.String(),
			"geometry", len(geo),
			"controls", len(ctls),
			"joints", len(joints),
		)
	}
	return rec, nil
}

// ScanSnapshot classifies a raw YAML snapshot document.
func (e *Engine) ScanSnapshot(ctx context.Context, data []byte) (*ports.ScanRecord, error) {
	g, err := file.Parse(data)
	if err != nil {
		e.metrics.ScenesScanned.WithLabelValues("error").Inc()
		return nil, err
	}
	return e.ScanGraph(ctx, g)
}

// ScanFile classifies a snapshot file, consulting the result store first
// when one is configured. Cache failures are logged and never fail the scan.
func (e *Engine) ScanFile(ctx context.Context, path string) (*ports.ScanRecord, error) {
	if e.store != nil {
		rec, err := e.store.Load(ctx, path)
		if err == nil {
			e.logger.Debug("scan cache hit", "path", path)
			return rec, nil
		}
		if !errors.Is(err, ports.ErrNotCached) {
			e.logger.Warn("scan cache load failed", "path", path, "err", err)
		}
	}

	g, err := file.Load(path)
	if err != nil {
		e.metrics.ScenesScanned.WithLabelValues("error").Inc()
		return nil, err
	}
	rec, err := e.ScanGraph(ctx, g)
	if err != nil {
		return nil, err
	}

	if e.store != nil {
		if err := e.store.Save(ctx, path, rec); err != nil {
			e.logger.Warn("scan cache save failed", "path", path, "err", err)
		}
	}
	return rec, nil
}

// ScanDir walks a directory tree and classifies every snapshot file
// (.yaml/.yml) in it. When kindFilter is non-empty, only files whose path
// contains that folder segment are visited (mirroring asset storage layout,
// e.g. ".../assets/char/...").
//
// A snapshot that fails to open or classify is logged and skipped; the walk
// continues. The error return covers the walk itself and context
// cancellation only.
func (e *Engine) ScanDir(ctx context.Context, dir, kindFilter string) ([]ports.ScanRecord, error) {
	var records []ports.ScanRecord
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		if kindFilter != "" && !pathHasSegment(filepath.Dir(path), kindFilter) {
			return nil
		}

		rec, err := e.ScanFile(ctx, path)
		if err != nil {
			e.logger.Warn("skipping snapshot", "path", path, "err", err)
			return nil
		}
		records = append(records, *rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return records, nil
}

func pathHasSegment(dir, segment string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(dir), "/") {
		if strings.EqualFold(seg, segment) {
			return true
		}
	}
	return false
}
