// Package pkg provides the core libraries for deckjson, the deck.gl
// configuration serializer.
//
// # Overview
//
// deckjson turns Go descriptions of deck.gl visualizations into the JSON
// document the deck.gl JSON converter renders. The pkg directory is
// organized into three areas:
//
//  1. Serialization core ([casing], [attrs], [normalize], [serial])
//  2. Domain model ([deck])
//  3. Infrastructure ([io], [cache], [pipeline], [observability], [errors])
//
// # Architecture
//
// The typical data flow through deckjson:
//
//	TOML/JSON deck document
//	         ↓
//	    [io] package (decode into a deck.Deck)
//	         ↓
//	    [attrs] package (drop nulls and blocked attributes)
//	         ↓
//	    [casing] package (snake_case → camelCase keys)
//	         ↓
//	    [normalize] package (array-like values → nested lists)
//	         ↓
//	    [serial] package (canonical JSON or dialect text)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/deckjson/pkg/deck"
//	    "github.com/matzehuels/deckjson/pkg/serial"
//	)
//
//	layer := deck.NewLayer("ScatterplotLayer", points, map[string]any{
//	    "get_fill_color": []int{255, 0, 0},
//	})
//	d := deck.New(deck.WithLayers(layer))
//
//	out, err := serial.Serialize(d)
//
// # Main Packages
//
//   - [casing]: snake_case to camelCase conversion and key remapping
//   - [attrs]: attribute extraction, null dropping and the block-list
//   - [normalize]: array-like values to plain nested sequences
//   - [serial]: canonical JSON, the dialect text form and the Mixin
//   - [deck]: Deck, Layer, View and ViewState
//   - [io]: deck documents in and serialized artifacts out
//   - [cache]: content-addressed artifact cache
//   - [pipeline]: load → serialize orchestration with caching
//   - [observability]: pipeline and cache event hooks
//   - [errors]: coded errors shared by every package
//   - [buildinfo]: version information
//
// [casing]: github.com/matzehuels/deckjson/pkg/casing
// [attrs]: github.com/matzehuels/deckjson/pkg/attrs
// [normalize]: github.com/matzehuels/deckjson/pkg/normalize
// [serial]: github.com/matzehuels/deckjson/pkg/serial
// [deck]: github.com/matzehuels/deckjson/pkg/deck
// [io]: github.com/matzehuels/deckjson/pkg/io
// [cache]: github.com/matzehuels/deckjson/pkg/cache
// [pipeline]: github.com/matzehuels/deckjson/pkg/pipeline
// [observability]: github.com/matzehuels/deckjson/pkg/observability
// [errors]: github.com/matzehuels/deckjson/pkg/errors
// [buildinfo]: github.com/matzehuels/deckjson/pkg/buildinfo
package pkg
