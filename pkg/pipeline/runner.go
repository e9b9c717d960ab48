package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deckjson/pkg/cache"
	"github.com/matzehuels/deckjson/pkg/deck"
	"github.com/matzehuels/deckjson/pkg/errors"
	deckio "github.com/matzehuels/deckjson/pkg/io"
	"github.com/matzehuels/deckjson/pkg/observability"
	"github.com/matzehuels/deckjson/pkg/serial"
)

// cacheKeyType labels artifact lookups in cache hooks.
const cacheKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → serialize pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		InputHash: cache.Hash(opts.Input),
	}

	// Stage 1: Load
	loadStart := time.Now()
	d, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Deck = d
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.LayerCount = len(d.Layers)

	r.Logger.Info("loaded deck",
		"source", opts.Source,
		"layers", result.Stats.LayerCount,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Serialize
	serializeStart := time.Now()
	artifacts, hit, err := r.serializeWithCacheInfo(ctx, d, result.InputHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.SerializeTime = time.Since(serializeStart)
	result.CacheInfo.SerializeHit = hit

	r.Logger.Info("serialized deck",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.SerializeTime)

	return result, nil
}

// Load decodes the input document of opts into a deck.
func (r *Runner) Load(ctx context.Context, opts Options) (d *deck.Deck, err error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Source)
	start := time.Now()
	defer func() {
		layers := 0
		if d != nil {
			layers = len(d.Layers)
		}
		hooks.OnLoadComplete(ctx, opts.Source, layers, time.Since(start), err)
	}()

	d, err = deckio.ReadDeckBytes(opts.Input, opts.InputFormat)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", opts.Source)
	}
	return d, nil
}

// Serialize encodes d in every format of opts. Artifacts are cached under
// the hash of opts.Input, so the input document must be the one d was
// loaded from.
func (r *Runner) Serialize(ctx context.Context, d *deck.Deck, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.serializeWithCacheInfo(ctx, d, cache.Hash(opts.Input), opts)
	return artifacts, err
}

func (r *Runner) serializeWithCacheInfo(ctx context.Context, d *deck.Deck, inputHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForSerialize(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err == nil && hit {
				observability.Cache().OnCacheHit(ctx, cacheKeyType)
				r.Logger.Debug("cache hit", "format", format)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		}
		allCached = false

		data, err := Serialize(ctx, d, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
		}
	}

	return artifacts, allCached, nil
}

// Serialize encodes d in a single format without caching.
func Serialize(ctx context.Context, d *deck.Deck, format string, opts Options) (out []byte, err error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnSerializeStart(ctx, format)
	start := time.Now()
	defer func() {
		hooks.OnSerializeComplete(ctx, format, len(out), time.Since(start), err)
	}()

	var text string
	switch format {
	case FormatJSON:
		text, err = d.ToJSONCanonical(opts.SerialOptions(format)...)
	case FormatDialect:
		text, err = serial.SerializeDialect(d, opts.SerialOptions(format)...)
	}
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
