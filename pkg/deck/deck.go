package deck

import (
	"slices"

	"github.com/matzehuels/deckjson/pkg/errors"
	"github.com/matzehuels/deckjson/pkg/serial"
)

// Map providers understood by the deck.gl JSON converter.
const (
	MapProviderCarto  = "carto"
	MapProviderMapbox = "mapbox"
	MapProviderGoogle = "google_maps"
)

// Default basemap settings.
const (
	DefaultMapProvider = MapProviderCarto
	DefaultMapStyle    = "dark"
)

// MapProviders lists every supported map provider.
var MapProviders = []string{MapProviderCarto, MapProviderMapbox, MapProviderGoogle}

// Deck is the top-level visualization.
type Deck struct {
	serial.Mixin
	Layers           []*Layer
	Views            []*View
	InitialViewState *ViewState
	MapStyle         string
	MapProvider      string
	MapboxKey        string `deck:",omitempty"`
	GoogleMapsKey    string `deck:",omitempty"`
	Description      string `deck:",omitempty"`
	Tooltip          any
	Parameters       map[string]any
	Widget           any `deck:"deck_widget"`
}

// Option configures a [Deck].
type Option func(*Deck)

// WithLayers appends layers.
func WithLayers(layers ...*Layer) Option {
	return func(d *Deck) { d.Layers = append(d.Layers, layers...) }
}

// WithViews replaces the default view.
func WithViews(views ...*View) Option {
	return func(d *Deck) { d.Views = views }
}

// WithViewState sets the initial camera position.
func WithViewState(vs *ViewState) Option {
	return func(d *Deck) { d.InitialViewState = vs }
}

// WithMapStyle sets the basemap style.
func WithMapStyle(style string) Option {
	return func(d *Deck) { d.MapStyle = style }
}

// WithMapProvider sets the basemap provider.
func WithMapProvider(provider string) Option {
	return func(d *Deck) { d.MapProvider = provider }
}

// WithAPIKeys sets the basemap API keys. They are kept off the serialized
// deck by the default block-list.
func WithAPIKeys(mapbox, google string) Option {
	return func(d *Deck) {
		d.MapboxKey = mapbox
		d.GoogleMapsKey = google
	}
}

// WithTooltip sets the tooltip: true for the default tooltip, or a template
// mapping.
func WithTooltip(tooltip any) Option {
	return func(d *Deck) { d.Tooltip = tooltip }
}

// WithDescription sets a free-text description.
func WithDescription(desc string) Option {
	return func(d *Deck) { d.Description = desc }
}

// WithParameters sets WebGL parameters.
func WithParameters(params map[string]any) Option {
	return func(d *Deck) { d.Parameters = params }
}

// New creates a deck.
func New(opts ...Option) *Deck {
	d := &Deck{
		MapStyle:    DefaultMapStyle,
		MapProvider: DefaultMapProvider,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.InitialViewState == nil {
		d.InitialViewState = DefaultViewState()
	}
	if len(d.Views) == 0 {
		d.Views = []*View{NewView(DefaultViewType, true)}
	}
	d.Mixin = serial.NewMixin(d)
	return d
}

// Validate checks the map provider and the layers.
func (d *Deck) Validate() error {
	if d.MapProvider != "" && !slices.Contains(MapProviders, d.MapProvider) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown map provider %q (valid: %v)", d.MapProvider, MapProviders)
	}

	seen := make(map[string]bool, len(d.Layers))
	for i, l := range d.Layers {
		if l == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "layer %d is nil", i)
		}
		if l.Type == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "layer %d has no type", i)
		}
		if seen[l.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate layer id %q", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

// ToJSONCanonical returns the deck as canonical JSON.
func (d *Deck) ToJSONCanonical(opts ...serial.Option) (string, error) {
	return serial.Serialize(d, opts...)
}
