package deck

import "github.com/matzehuels/deckjson/pkg/serial"

// Default camera position.
const (
	DefaultLatitude  = 0.0
	DefaultLongitude = 0.0
	DefaultZoom      = 1.0
)

// DefaultViewType is the view class used when none is given.
const DefaultViewType = "MapView"

// ViewState is the camera position of a view.
type ViewState struct {
	serial.Mixin
	Latitude  float64
	Longitude float64
	Zoom      float64
	MinZoom   *float64
	MaxZoom   *float64
	Pitch     float64
	Bearing   float64
}

// NewViewState returns a view state looking at the given point.
func NewViewState(latitude, longitude, zoom float64) *ViewState {
	vs := &ViewState{Latitude: latitude, Longitude: longitude, Zoom: zoom}
	vs.Mixin = serial.NewMixin(vs)
	return vs
}

// DefaultViewState returns a fresh view state at the default position.
func DefaultViewState() *ViewState {
	return NewViewState(DefaultLatitude, DefaultLongitude, DefaultZoom)
}

// WithZoomRange bounds the zoom levels a user can reach.
func (vs *ViewState) WithZoomRange(minZoom, maxZoom float64) *ViewState {
	vs.MinZoom = &minZoom
	vs.MaxZoom = &maxZoom
	return vs
}

// View is a deck.gl view such as MapView or OrbitView.
type View struct {
	serial.Mixin
	Type       string `deck:"@@type"`
	Controller *bool
}

// NewView returns a view of the given class. An empty type selects
// [DefaultViewType].
func NewView(viewType string, controller bool) *View {
	if viewType == "" {
		viewType = DefaultViewType
	}
	v := &View{Type: viewType, Controller: &controller}
	v.Mixin = serial.NewMixin(v)
	return v
}
