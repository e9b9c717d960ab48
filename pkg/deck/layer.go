package deck

import (
	"maps"

	"github.com/google/uuid"

	"github.com/matzehuels/deckjson/pkg/attrs"
	"github.com/matzehuels/deckjson/pkg/serial"
)

// Layer is a deck.gl layer. Props hold the layer's properties under their
// snake_case names.
type Layer struct {
	serial.Mixin
	Type  string
	ID    string
	Data  any
	Props map[string]any

	kwargs     map[string]any
	binaryData any
}

// LayerOption configures a [Layer].
type LayerOption func(*Layer)

// WithID sets the layer ID instead of a random UUID.
func WithID(id string) LayerOption {
	return func(l *Layer) { l.ID = id }
}

// WithBinaryData attaches pre-encoded attribute buffers. They are transported
// out of band and never appear in the serialized layer.
func WithBinaryData(v any) LayerOption {
	return func(l *Layer) { l.binaryData = v }
}

// NewLayer creates a layer of the given deck.gl class.
func NewLayer(layerType string, data any, props map[string]any, opts ...LayerOption) *Layer {
	l := &Layer{
		Type:   layerType,
		ID:     uuid.NewString(),
		Data:   data,
		Props:  maps.Clone(props),
		kwargs: maps.Clone(props),
	}
	if l.Props == nil {
		l.Props = map[string]any{}
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Mixin = serial.NewMixin(l)
	return l
}

// Set assigns a property.
func (l *Layer) Set(name string, value any) *Layer {
	if l.Props == nil {
		l.Props = map[string]any{}
	}
	l.Props[name] = value
	return l
}

// AsAttributeMapping flattens the layer's props next to its type, ID and
// data.
func (l *Layer) AsAttributeMapping() map[string]any {
	m := make(map[string]any, len(l.Props)+5)
	maps.Copy(m, l.Props)
	m["@@type"] = l.Type
	m["id"] = l.ID
	m["data"] = l.Data
	m["_kwargs"] = l.kwargs
	m["_binary_data"] = l.binaryData
	return m
}

var _ attrs.Mapper = (*Layer)(nil)
