// Package playerstate defines the visual states of the player widget and the
// legal transitions between them.
package playerstate

// State is the visual state of the player widget.
//
// The state machine is cyclic and has no terminal state:
//
//	            drag up
//	┌──────────┐ ─────────▶ ┌───────────┐
//	│ Expanded │            │ Collapsed │
//	└──────────┘ ◀───────── └───────────┘
//	   │   ▲      drag down
//	   │   │
//	   │   │ tap
//	   ▼   │
//	┌──────────────┐
//	│  MiniPlayer  │  (free drag, corner snap)
//	└──────────────┘
//	   ▲ drag down from Expanded
//
// Fullscreen and PIPMode are declared but have no adjacency entries yet.
type State int

const (
	Expanded State = iota
	Collapsed
	MiniPlayer
	Fullscreen
	PIPMode
)

// Info holds the strings attached to each variant.
type Info struct {
	Name         string // display name
	AnalyticsTag string
	Endpoint     string // layout endpoint id used by the animation engine
}

var infos = map[State]Info{
	Expanded:   {Name: "Expanded", AnalyticsTag: "player_expanded", Endpoint: "expanded"},
	Collapsed:  {Name: "Collapsed", AnalyticsTag: "player_collapsed", Endpoint: "collapsed"},
	MiniPlayer: {Name: "Mini Player", AnalyticsTag: "player_mini", Endpoint: "mini"},
	Fullscreen: {Name: "Fullscreen", AnalyticsTag: "player_fullscreen", Endpoint: "fullscreen"},
	PIPMode:    {Name: "Picture in Picture", AnalyticsTag: "player_pip", Endpoint: "pip"},
}

// Info returns the display name, analytics tag and endpoint of the state.
func (s State) Info() Info {
	if info, ok := infos[s]; ok {
		return info
	}
	return Info{Name: "Unknown", AnalyticsTag: "player_unknown"}
}

// String returns the display name.
func (s State) String() string {
	return s.Info().Name
}

// AnalyticsTag returns the tag reported to analytics.
func (s State) AnalyticsTag() string {
	return s.Info().AnalyticsTag
}

// Endpoint returns the layout endpoint id of the state.
func (s State) Endpoint() string {
	return s.Info().Endpoint
}

// ByEndpoint maps a layout endpoint id back to its state.
func ByEndpoint(id string) (State, bool) {
	for s, info := range infos {
		if info.Endpoint == id && id != "" {
			return s, true
		}
	}
	return 0, false
}

// ByName maps a display name back to its state. Used when restoring
// persisted state.
func ByName(name string) (State, bool) {
	for s, info := range infos {
		if info.Name == name {
			return s, true
		}
	}
	return 0, false
}
