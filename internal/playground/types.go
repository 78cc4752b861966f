package playground

import "fmt"

// PanelKind selects the preview chrome and the default handle set.
type PanelKind string

const (
	PanelKindPanel   PanelKind = "panel"
	PanelKindSidebar PanelKind = "sidebar"
	PanelKindToolbar PanelKind = "toolbar"
	PanelKindWindow  PanelKind = "window"
	PanelKindModal   PanelKind = "modal"
)

// PanelKinds lists every panel kind in display order.
var PanelKinds = []PanelKind{PanelKindModal, PanelKindSidebar, PanelKindToolbar, PanelKindWindow, PanelKindPanel}

// Label returns the human readable name shown in the preview tabs.
func (k PanelKind) Label() string {
	switch k {
	case PanelKindPanel:
		return "Panel"
	case PanelKindSidebar:
		return "Sidebar"
	case PanelKindToolbar:
		return "Code Editor"
	case PanelKindWindow:
		return "Window"
	case PanelKindModal:
		return "Modal"
	default:
		return string(k)
	}
}

// Valid reports whether k is a known panel kind.
func (k PanelKind) Valid() bool {
	for _, known := range PanelKinds {
		if k == known {
			return true
		}
	}
	return false
}

// DefaultHandles returns the handle set applied when switching to this kind.
func (k PanelKind) DefaultHandles() []Direction {
	if k == PanelKindSidebar {
		return []Direction{DirE}
	}
	return []Direction{DirSE, DirE, DirS}
}

// Direction is one of the eight compass points a handle can sit on.
type Direction string

const (
	DirN  Direction = "n"
	DirS  Direction = "s"
	DirE  Direction = "e"
	DirW  Direction = "w"
	DirNE Direction = "ne"
	DirNW Direction = "nw"
	DirSE Direction = "se"
	DirSW Direction = "sw"
)

// CanonicalDirections is the fixed ordering used wherever handles are listed.
var CanonicalDirections = []Direction{DirN, DirS, DirE, DirW, DirNE, DirNW, DirSE, DirSW}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d.index() >= 0
}

func (d Direction) index() int {
	for i, known := range CanonicalDirections {
		if d == known {
			return i
		}
	}
	return -1
}

// HasNorth reports whether the direction moves the top edge.
func (d Direction) HasNorth() bool { return d == DirN || d == DirNE || d == DirNW }

// HasSouth reports whether the direction moves the bottom edge.
func (d Direction) HasSouth() bool { return d == DirS || d == DirSE || d == DirSW }

// HasEast reports whether the direction moves the right edge.
func (d Direction) HasEast() bool { return d == DirE || d == DirNE || d == DirSE }

// HasWest reports whether the direction moves the left edge.
func (d Direction) HasWest() bool { return d == DirW || d == DirNW || d == DirSW }

// Anchor is the point of the region that stays fixed while resizing.
type Anchor string

// AnchorCenter keeps the region centred.
const AnchorCenter Anchor = "center"

// Anchors lists every anchor in display order.
var Anchors = []Anchor{
	Anchor(DirNW), Anchor(DirN), Anchor(DirNE),
	Anchor(DirW), AnchorCenter, Anchor(DirE),
	Anchor(DirSW), Anchor(DirS), Anchor(DirSE),
}

// Valid reports whether a is center or a compass direction.
func (a Anchor) Valid() bool {
	return a == AnchorCenter || Direction(a).Valid()
}

// SpringSelection is either a named preset or custom.
type SpringSelection string

const (
	SpringGentle SpringSelection = "gentle"
	SpringSmooth SpringSelection = "smooth"
	SpringSnappy SpringSelection = "snappy"
	SpringCustom SpringSelection = "custom"
)

// SpringSelections lists every selection in display order.
var SpringSelections = []SpringSelection{SpringGentle, SpringSmooth, SpringSnappy, SpringCustom}

// IsPreset reports whether s names a fixed preset.
func (s SpringSelection) IsPreset() bool {
	_, ok := springPresets[s]
	return ok
}

// Valid reports whether s is a preset or custom.
func (s SpringSelection) Valid() bool {
	return s == SpringCustom || s.IsPreset()
}

// SpringParams is the damped spring triple handed to the resize capability.
type SpringParams struct {
	Tension  float64 `yaml:"tension"`
	Friction float64 `yaml:"friction"`
	Mass     float64 `yaml:"mass"`
}

func (p SpringParams) String() string {
	return fmt.Sprintf("tension=%g friction=%g mass=%g", p.Tension, p.Friction, p.Mass)
}

var springPresets = map[SpringSelection]SpringParams{
	SpringGentle: {Tension: 120, Friction: 14, Mass: 1},
	SpringSmooth: {Tension: 170, Friction: 26, Mass: 1},
	SpringSnappy: {Tension: 300, Friction: 30, Mass: 1},
}

// PresetParams returns the fixed parameters of a named preset.
func PresetParams(s SpringSelection) (SpringParams, bool) {
	p, ok := springPresets[s]
	return p, ok
}

// Size is an optional width/height pair; nil means unset.
type Size struct {
	Width  *float64
	Height *float64
}

// IsEmpty reports whether neither dimension carries a usable value.
// Zero counts as unset, matching how the exported snippet treats it.
func (s *Size) IsEmpty() bool {
	if s == nil {
		return true
	}
	return !isSet(s.Width) && !isSet(s.Height)
}

func (s *Size) clone() *Size {
	if s == nil {
		return nil
	}
	return &Size{Width: cloneFloat(s.Width), Height: cloneFloat(s.Height)}
}

// Constraints bounds the region during resize. Values may be present while
// the matching Use* flag on Config is off.
type Constraints struct {
	Min         *Size
	Max         *Size
	AspectRatio *float64
}

func (c Constraints) clone() Constraints {
	return Constraints{
		Min:         c.Min.clone(),
		Max:         c.Max.clone(),
		AspectRatio: cloneFloat(c.AspectRatio),
	}
}

// Snap rounds resize dimensions to a pixel grid.
type Snap struct {
	Increment int
}

// Config is the complete set of user-adjustable playground options.
type Config struct {
	PanelKind         PanelKind
	InitialWidth      float64
	InitialHeight     float64
	SpringSelection   SpringSelection
	SpringParams      SpringParams
	VisibleHandles    []Direction
	Anchor            Anchor
	Constraints       Constraints
	UseMinConstraints bool
	UseMaxConstraints bool
	UseAspectRatio    bool
	Snap              *Snap
}

// Clone returns a deep copy that shares no memory with c.
func (c Config) Clone() Config {
	out := c
	out.VisibleHandles = append([]Direction(nil), c.VisibleHandles...)
	out.Constraints = c.Constraints.clone()
	if c.Snap != nil {
		snap := *c.Snap
		out.Snap = &snap
	}
	return out
}

// HasHandle reports whether d is currently visible.
func (c Config) HasHandle(d Direction) bool {
	for _, h := range c.VisibleHandles {
		if h == d {
			return true
		}
	}
	return false
}

// CanonicalHandles returns the visible handles in canonical order.
func (c Config) CanonicalHandles() []Direction {
	out := make([]Direction, 0, len(c.VisibleHandles))
	for _, d := range CanonicalDirections {
		if c.HasHandle(d) {
			out = append(out, d)
		}
	}
	return out
}

// ActiveConstraints returns only the constraints whose flag is on and whose
// value is concrete.
func (c Config) ActiveConstraints() Constraints {
	var out Constraints
	if c.UseMinConstraints && !c.Constraints.Min.IsEmpty() {
		out.Min = c.Constraints.Min.clone()
	}
	if c.UseMaxConstraints && !c.Constraints.Max.IsEmpty() {
		out.Max = c.Constraints.Max.clone()
	}
	if c.UseAspectRatio && isSet(c.Constraints.AspectRatio) {
		out.AspectRatio = cloneFloat(c.Constraints.AspectRatio)
	}
	return out
}

// Float returns a pointer to v, for building optional constraint values.
func Float(v float64) *float64 {
	return &v
}

func isSet(v *float64) bool {
	return v != nil && *v != 0
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
