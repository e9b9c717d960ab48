// Package pipeline provides the load → serialize pipeline behind the
// deckjson CLI.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Decode a deck document (TOML or JSON) into a [deck.Deck]
//  2. Serialize: Encode the deck in each requested output format
//
// Each stage can be run independently or as part of the complete pipeline.
// Serialized artifacts are cached under a key derived from the hash of the
// input document and the serialization options, so unchanged inputs are
// served from the cache.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:       data,
//	    InputFormat: "toml",
//	    Formats:     []string{"json", "dialect"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := result.Artifacts["json"]
//
// Run individual stages:
//
//	d, err := runner.Load(ctx, opts)
//	artifacts, err := runner.Serialize(ctx, d, opts)
//
// [deck.Deck]: github.com/matzehuels/deckjson/pkg/deck.Deck
package pipeline

import (
	"slices"
	"time"

	"github.com/matzehuels/deckjson/pkg/attrs"
	"github.com/matzehuels/deckjson/pkg/cache"
	"github.com/matzehuels/deckjson/pkg/casing"
	"github.com/matzehuels/deckjson/pkg/deck"
	"github.com/matzehuels/deckjson/pkg/errors"
	deckio "github.com/matzehuels/deckjson/pkg/io"
	"github.com/matzehuels/deckjson/pkg/serial"
)

// Format constants for output formats.
const (
	FormatJSON    = "json"
	FormatDialect = "dialect"
)

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = FormatJSON

// DefaultSource names inputs that did not come from a file.
const DefaultSource = "<input>"

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:    true,
	FormatDialect: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the serialization pipeline.
type Options struct {
	// Load options
	Input       []byte `json:"-"`
	InputFormat string `json:"input_format"`
	Source      string `json:"source,omitempty"`
	Refresh     bool   `json:"refresh,omitempty"`

	// Serialize options
	Formats   []string `json:"formats,omitempty"`
	Indent    string   `json:"indent,omitempty"`
	NoRemap   bool     `json:"no_remap,omitempty"`
	BlockList []string `json:"block_list,omitempty"` // Extra names added to the default block-list

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Deck is the loaded deck.
	Deck *deck.Deck

	// InputHash is the content hash of the input document.
	InputHash string

	// Artifacts contains serialized outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount    int
	LoadTime      time.Duration
	SerializeTime time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	SerializeHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if err := errors.ValidateFormat(format, ValidFormats); err != nil {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, dialect)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForSerialize(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if len(o.Input) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "input document is empty")
	}
	if err := errors.ValidateFormat(o.InputFormat, deckio.Formats); err != nil {
		return err
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	return nil
}

// ValidateForSerialize validates and sets defaults for serialization.
func (o *Options) ValidateForSerialize() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.Formats = slices.Compact(slices.Sorted(slices.Values(o.Formats)))
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, name := range o.BlockList {
		if err := errors.ValidateKeyName(name); err != nil {
			return err
		}
	}
	return nil
}

// Blocked returns the default block-list extended with o.BlockList.
func (o *Options) Blocked() attrs.BlockList {
	return attrs.DefaultBlockList().With(o.BlockList...)
}

// SerialOptions returns the encoder options for format.
func (o *Options) SerialOptions(format string) []serial.Option {
	opts := []serial.Option{serial.WithBlockList(o.Blocked())}
	if o.NoRemap {
		opts = append(opts, serial.WithRemap(casing.NoRemap))
	}
	if format == FormatJSON && o.Indent != "" {
		opts = append(opts, serial.WithIndent(o.Indent))
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		NoRemap:   o.NoRemap,
		BlockList: o.BlockList,
	}
	if format == FormatJSON {
		k.Indent = o.Indent
	}
	return k
}
