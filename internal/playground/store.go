package playground

// Store owns the single Config of a playground session. It is not safe for
// concurrent use; callers serialize mutations through their event loop.
type Store struct {
	cfg      Config
	liveSize *ResizeEvent
}

// NewStore returns a store holding the default configuration.
func NewStore() *Store {
	return &Store{cfg: Default()}
}

// NewStoreWith returns a store seeded with cfg. Duplicate handles are
// dropped and preset parameters are re-derived so every invariant holds.
func NewStoreWith(cfg Config) *Store {
	s := &Store{cfg: cfg.Clone()}
	s.cfg.VisibleHandles = dedupeHandles(s.cfg.VisibleHandles)
	if params, ok := PresetParams(s.cfg.SpringSelection); ok {
		s.cfg.SpringParams = params
	}
	return s
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	return s.cfg.Clone()
}

// Patch is a shallow, top-level update. Nil fields are left untouched.
// Constraints replaces the whole constraints block.
type Patch struct {
	PanelKind         *PanelKind
	InitialWidth      *float64
	InitialHeight     *float64
	VisibleHandles    *[]Direction
	Anchor            *Anchor
	Constraints       *Constraints
	UseMinConstraints *bool
	UseMaxConstraints *bool
	UseAspectRatio    *bool
	// Snap replaces the snap setting; a non-nil pointer to nil disables it.
	Snap **Snap
}

// Patch merges p into the configuration.
func (s *Store) Patch(p Patch) {
	if p.PanelKind != nil {
		s.cfg.PanelKind = *p.PanelKind
	}
	if p.InitialWidth != nil {
		s.cfg.InitialWidth = *p.InitialWidth
	}
	if p.InitialHeight != nil {
		s.cfg.InitialHeight = *p.InitialHeight
	}
	if p.VisibleHandles != nil {
		s.cfg.VisibleHandles = dedupeHandles(*p.VisibleHandles)
	}
	if p.Anchor != nil {
		s.cfg.Anchor = *p.Anchor
	}
	if p.Constraints != nil {
		s.cfg.Constraints = p.Constraints.clone()
	}
	if p.UseMinConstraints != nil {
		s.cfg.UseMinConstraints = *p.UseMinConstraints
	}
	if p.UseMaxConstraints != nil {
		s.cfg.UseMaxConstraints = *p.UseMaxConstraints
	}
	if p.UseAspectRatio != nil {
		s.cfg.UseAspectRatio = *p.UseAspectRatio
	}
	if p.Snap != nil {
		if *p.Snap == nil {
			s.cfg.Snap = nil
		} else {
			snap := **p.Snap
			s.cfg.Snap = &snap
		}
	}
}

// SetSpringPreset selects a preset and overwrites the spring parameters
// from the preset table. Selecting custom keeps the current parameters.
func (s *Store) SetSpringPreset(sel SpringSelection) {
	if sel == SpringCustom {
		s.cfg.SpringSelection = SpringCustom
		return
	}
	params, ok := PresetParams(sel)
	if !ok {
		return
	}
	s.cfg.SpringSelection = sel
	s.cfg.SpringParams = params
}

// SpringParamsPatch updates individual spring parameters.
type SpringParamsPatch struct {
	Tension  *float64
	Friction *float64
	Mass     *float64
}

// SetSpringParam merges p into the spring parameters and switches the
// selection to custom, even when p is empty.
func (s *Store) SetSpringParam(p SpringParamsPatch) {
	if p.Tension != nil {
		s.cfg.SpringParams.Tension = *p.Tension
	}
	if p.Friction != nil {
		s.cfg.SpringParams.Friction = *p.Friction
	}
	if p.Mass != nil {
		s.cfg.SpringParams.Mass = *p.Mass
	}
	s.cfg.SpringSelection = SpringCustom
}

// ToggleHandle removes d when visible and appends it otherwise.
func (s *Store) ToggleHandle(d Direction) {
	for i, h := range s.cfg.VisibleHandles {
		if h == d {
			s.cfg.VisibleHandles = append(s.cfg.VisibleHandles[:i:i], s.cfg.VisibleHandles[i+1:]...)
			return
		}
	}
	s.cfg.VisibleHandles = append(s.cfg.VisibleHandles, d)
}

// SetPanelKind switches the preview chrome and applies the kind's handles.
func (s *Store) SetPanelKind(kind PanelKind) {
	s.cfg.PanelKind = kind
	s.cfg.VisibleHandles = kind.DefaultHandles()
}

// SetDimensions updates the initial size.
func (s *Store) SetDimensions(width, height float64) {
	s.cfg.InitialWidth = width
	s.cfg.InitialHeight = height
	s.liveSize = nil
}

// SetAnchor updates the fixed point of the region.
func (s *Store) SetAnchor(a Anchor) {
	s.cfg.Anchor = a
}

// SetConstraints replaces the whole constraints block.
func (s *Store) SetConstraints(c Constraints) {
	s.cfg.Constraints = c.clone()
}

// SetConstraintFlags switches the individual constraints on or off
// without discarding their values.
func (s *Store) SetConstraintFlags(useMin, useMax, useRatio bool) {
	s.cfg.UseMinConstraints = useMin
	s.cfg.UseMaxConstraints = useMax
	s.cfg.UseAspectRatio = useRatio
}

// SetAspectRatio stores ratio in the constraints block, keeping min and max.
func (s *Store) SetAspectRatio(ratio float64) {
	s.cfg.Constraints.AspectRatio = Float(ratio)
}

// EnableSnap turns grid snapping on with the default increment, or off.
func (s *Store) EnableSnap(on bool) {
	if !on {
		s.cfg.Snap = nil
		return
	}
	if s.cfg.Snap == nil {
		s.cfg.Snap = &Snap{Increment: DefaultSnapIncrement}
	}
}

// SetSnapIncrement changes the grid size. It is ignored while snapping is
// off or when increment is outside (0, MaxSnapIncrement].
func (s *Store) SetSnapIncrement(increment int) {
	if s.cfg.Snap == nil || increment <= 0 || increment > MaxSnapIncrement {
		return
	}
	s.cfg.Snap.Increment = increment
}

// ResizeEvent is what the preview reports on every resize step.
type ResizeEvent struct {
	Width      float64
	Height     float64
	IsDragging bool
}

// ApplyResize records the size last reported by the preview. Events with a
// non-positive or NaN dimension are ignored.
func (s *Store) ApplyResize(ev ResizeEvent) {
	if !(ev.Width > 0) || !(ev.Height > 0) {
		return
	}
	cp := ev
	s.liveSize = &cp
}

// LiveSize returns the last reported preview size, falling back to the
// initial dimensions.
func (s *Store) LiveSize() ResizeEvent {
	if s.liveSize != nil {
		return *s.liveSize
	}
	return ResizeEvent{Width: s.cfg.InitialWidth, Height: s.cfg.InitialHeight}
}

// Reset replaces the configuration with the default instance.
func (s *Store) Reset() {
	s.cfg = Default()
	s.liveSize = nil
}

func dedupeHandles(in []Direction) []Direction {
	out := make([]Direction, 0, len(in))
	seen := make(map[Direction]struct{}, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
