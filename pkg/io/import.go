package io

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"

	"github.com/matzehuels/deckjson/pkg/deck"
	"github.com/matzehuels/deckjson/pkg/errors"
)

// Document formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Formats lists the document formats [ReadDeck] accepts.
var Formats = map[string]bool{FormatTOML: true, FormatJSON: true}

var extensions = map[string]string{
	".toml": FormatTOML,
	".json": FormatJSON,
}

var decodeJSON = jsoniter.Config{
	UseNumber:             true,
	DisallowUnknownFields: true,
}.Froze()

type document struct {
	MapStyle         string         `toml:"map_style" json:"map_style"`
	MapProvider      string         `toml:"map_provider" json:"map_provider"`
	Description      string         `toml:"description" json:"description"`
	Tooltip          any            `toml:"tooltip" json:"tooltip"`
	Parameters       map[string]any `toml:"parameters" json:"parameters"`
	InitialViewState *viewState     `toml:"initial_view_state" json:"initial_view_state"`
	Layers           []layer        `toml:"layers" json:"layers"`
	Views            []view         `toml:"views" json:"views"`
}

type viewState struct {
	Latitude  float64  `toml:"latitude" json:"latitude"`
	Longitude float64  `toml:"longitude" json:"longitude"`
	Zoom      *float64 `toml:"zoom" json:"zoom"`
	MinZoom   *float64 `toml:"min_zoom" json:"min_zoom"`
	MaxZoom   *float64 `toml:"max_zoom" json:"max_zoom"`
	Pitch     float64  `toml:"pitch" json:"pitch"`
	Bearing   float64  `toml:"bearing" json:"bearing"`
}

type layer struct {
	Type  string         `toml:"type" json:"type"`
	ID    string         `toml:"id" json:"id"`
	Data  any            `toml:"data" json:"data"`
	Props map[string]any `toml:"props" json:"props"`
}

type view struct {
	Type       string `toml:"type" json:"type"`
	Controller *bool  `toml:"controller" json:"controller"`
}

// FormatFromPath returns the document format implied by the extension of
// path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported deck file extension %q (use .toml or .json)", ext)
	}
	return format, nil
}

// ReadDeck decodes a deck document in the given format from r.
//
// ReadDeck returns an INVALID_FORMAT error for an unknown format and an
// INVALID_CONFIG error when the document is malformed, carries unknown keys
// or describes an invalid deck (see [deck.Deck.Validate]). It does not
// close r.
func ReadDeck(r io.Reader, format string) (*deck.Deck, error) {
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return nil, err
	}

	var doc document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml deck")
		}
		if keys := unknownKeys(md.Undecoded()); len(keys) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in deck: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		if err := decodeJSON.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json deck")
		}
		doc.coerceNumbers()
	}

	d := doc.build()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ReadDeckBytes is [ReadDeck] over an in-memory document.
func ReadDeckBytes(data []byte, format string) (*deck.Deck, error) {
	return ReadDeck(bytes.NewReader(data), format)
}

// ImportDeck reads the deck file at path. The format follows the file
// extension.
func ImportDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "deck path cannot be empty")
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadDeckBytes(data, format)
}

// ReadFile returns the raw contents of the deck file at path. A missing
// file yields a FILE_NOT_FOUND error.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "deck path cannot be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "deck file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return data, nil
}

// freeform holds the key paths whose contents are arbitrary values.
var freeform = [][]string{
	{"tooltip"},
	{"parameters"},
	{"layers", "data"},
	{"layers", "props"},
}

func unknownKeys(undecoded []toml.Key) []string {
	var keys []string
	for _, k := range undecoded {
		if !underFreeform(k) {
			keys = append(keys, k.String())
		}
	}
	sort.Strings(keys)
	return keys
}

func underFreeform(k toml.Key) bool {
	for _, prefix := range freeform {
		if len(k) > len(prefix) && slices.Equal([]string(k[:len(prefix)]), prefix) {
			return true
		}
	}
	return false
}

func (doc *document) build() *deck.Deck {
	var opts []deck.Option
	if doc.MapStyle != "" {
		opts = append(opts, deck.WithMapStyle(doc.MapStyle))
	}
	if doc.MapProvider != "" {
		opts = append(opts, deck.WithMapProvider(doc.MapProvider))
	}
	if doc.Description != "" {
		opts = append(opts, deck.WithDescription(doc.Description))
	}
	if doc.Tooltip != nil {
		opts = append(opts, deck.WithTooltip(doc.Tooltip))
	}
	if doc.Parameters != nil {
		opts = append(opts, deck.WithParameters(doc.Parameters))
	}

	if vs := doc.InitialViewState; vs != nil {
		zoom := deck.DefaultZoom
		if vs.Zoom != nil {
			zoom = *vs.Zoom
		}
		state := deck.NewViewState(vs.Latitude, vs.Longitude, zoom)
		state.MinZoom = vs.MinZoom
		state.MaxZoom = vs.MaxZoom
		state.Pitch = vs.Pitch
		state.Bearing = vs.Bearing
		opts = append(opts, deck.WithViewState(state))
	}

	for _, l := range doc.Layers {
		var lopts []deck.LayerOption
		if l.ID != "" {
			lopts = append(lopts, deck.WithID(l.ID))
		}
		opts = append(opts, deck.WithLayers(deck.NewLayer(l.Type, l.Data, l.Props, lopts...)))
	}

	if len(doc.Views) > 0 {
		views := make([]*deck.View, len(doc.Views))
		for i, v := range doc.Views {
			controller := true
			if v.Controller != nil {
				controller = *v.Controller
			}
			views[i] = deck.NewView(v.Type, controller)
		}
		opts = append(opts, deck.WithViews(views...))
	}

	return deck.New(opts...)
}

func (doc *document) coerceNumbers() {
	doc.Tooltip = coerceNumber(doc.Tooltip)
	coerceMap(doc.Parameters)
	for i := range doc.Layers {
		doc.Layers[i].Data = coerceNumber(doc.Layers[i].Data)
		coerceMap(doc.Layers[i].Props)
	}
}

type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

// coerceNumber replaces decoded JSON numbers by int64 when they are
// integral and by float64 otherwise.
func coerceNumber(v any) any {
	switch x := v.(type) {
	case number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		coerceMap(x)
	case []any:
		for i := range x {
			x[i] = coerceNumber(x[i])
		}
	}
	return v
}

func coerceMap(m map[string]any) {
	for k, v := range m {
		m[k] = coerceNumber(v)
	}
}
