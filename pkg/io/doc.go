// Package io reads deck documents and writes serialized artifacts.
//
// # Deck Documents
//
// A deck document describes a [deck.Deck] with snake_case keys. TOML:
//
//	map_style = "light"
//	description = "Bike stations"
//
//	[initial_view_state]
//	latitude = 37.76
//	longitude = -122.4
//	zoom = 11
//
//	[[layers]]
//	type = "ScatterplotLayer"
//	id = "stations"
//	data = "https://example.com/stations.json"
//
//	[layers.props]
//	get_position = "@@=[lng, lat]"
//	get_radius = 100
//
//	[[views]]
//	type = "MapView"
//	controller = true
//
// The same layout is accepted as JSON. Recognized top-level keys are
// map_style, map_provider, description, tooltip, parameters,
// initial_view_state, layers and views; any other key is rejected.
// Omitted settings take the defaults of [deck.New].
//
// # Import
//
// Use [ImportDeck] to read a file, picking the format from its extension,
// or [ReadDeck] to read from any io.Reader:
//
//	d, err := io.ImportDeck("deck.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// JSON numbers without a fractional part decode as integers, so a value
// written as 100 keeps rendering as 100 rather than 100.0.
//
// # Export
//
// [WriteText] and [ExportText] write a serialized artifact, followed by a
// newline, to a writer or a file.
//
// [deck.Deck]: github.com/matzehuels/deckjson/pkg/deck.Deck
// [deck.New]: github.com/matzehuels/deckjson/pkg/deck.New
package io
