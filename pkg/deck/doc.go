// Package deck models a deck.gl visualization: a [Deck] holding [Layer]s,
// [View]s and an initial [ViewState].
//
// # Building a Deck
//
// Decks are assembled with functional options:
//
//	layer := deck.NewLayer("ScatterplotLayer", points, map[string]any{
//	    "get_position": "@@=[lng, lat]",
//	    "get_radius":   100,
//	})
//	d := deck.New(
//	    deck.WithLayers(layer),
//	    deck.WithViewState(deck.NewViewState(37.76, -122.4, 11)),
//	)
//	out, err := d.ToJSONCanonical()
//
// Unset options fall back to the carto map provider, the dark map style,
// a view state centered on (0, 0) at zoom 1 and a single controllable
// MapView.
//
// # Serialization
//
// Every type embeds [serial.Mixin], so printing a value with fmt yields its
// dialect text. [Deck.ToJSONCanonical] produces canonical JSON with sorted
// camelCase keys. API keys and widget handles are withheld by the default
// block-list.
//
// Layer properties are kept in a map and flattened into the layer's
// attributes, so snake_case names such as get_fill_color appear as
// getFillColor in the output. The layer type is written under the @@type key
// read by the deck.gl JSON converter.
//
// The mixin is bound to the value returned by the constructor. Copies of a
// Deck, Layer, View or ViewState keep rendering the original.
//
// [serial.Mixin]: github.com/matzehuels/deckjson/pkg/serial.Mixin
package deck
