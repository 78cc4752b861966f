package preview

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

// SpringCapabilityName identifies the harmonica backed capability.
const SpringCapabilityName = "harmonica-spring"

const (
	defaultFPS = 60
	// settleEpsilon is the distance and velocity, in pixels, under which a
	// spring counts as at rest.
	settleEpsilon = 0.05
)

// SpringCapability animates resizes with harmonica damped springs.
type SpringCapability struct {
	fps int
}

// NewSpringCapability returns a capability stepping at fps frames per second.
func NewSpringCapability(fps int) *SpringCapability {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &SpringCapability{fps: fps}
}

// Name implements Capability.
func (c *SpringCapability) Name() string { return SpringCapabilityName }

// FPS returns the frame rate instances are stepped at.
func (c *SpringCapability) FPS() int { return c.fps }

// Mount implements Capability.
func (c *SpringCapability) Mount(props Props) Instance {
	freq, damping := SpringCoefficients(props.Params())
	inst := &springInstance{
		props:  props,
		spring: harmonica.NewSpring(harmonica.FPS(c.fps), freq, damping),
		// a zero frequency spring never moves, so such instances jump
		instant: freq == 0,
	}
	w, h := inst.constrain(playground.DirSE, props.InitialWidth, props.InitialHeight)
	inst.width, inst.height = w, h
	inst.targetW, inst.targetH = w, h
	// constraints moved the mount size, so observers need the real one
	if w != props.InitialWidth || h != props.InitialHeight {
		inst.emit(true)
	}
	return inst
}

// SpringCoefficients converts tension, friction and mass into harmonica's
// angular frequency and damping ratio.
func SpringCoefficients(p playground.SpringParams) (angularFrequency, dampingRatio float64) {
	if p.Tension <= 0 || p.Mass <= 0 {
		return 0, 1
	}
	angularFrequency = math.Sqrt(p.Tension / p.Mass)
	dampingRatio = p.Friction / (2 * math.Sqrt(p.Tension*p.Mass))
	if dampingRatio < 0 {
		dampingRatio = 0
	}
	return angularFrequency, dampingRatio
}

type springInstance struct {
	props   Props
	spring  harmonica.Spring
	instant bool

	width, height        float64
	velW, velH           float64
	targetW, targetH     float64
	dragging             bool
	reportedW, reportedH float64
}

func (s *springInstance) Drag(dir playground.Direction, dx, dy float64) {
	w, h := s.targetW, s.targetH
	switch {
	case dir.HasEast():
		w += dx
	case dir.HasWest():
		w -= dx
	}
	switch {
	case dir.HasSouth():
		h += dy
	case dir.HasNorth():
		h -= dy
	}
	s.dragging = true
	s.targetW, s.targetH = s.constrain(dir, w, h)
	s.emit(true)
}

func (s *springInstance) Release() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.emit(true)
}

func (s *springInstance) SetTarget(width, height float64) {
	s.targetW, s.targetH = s.constrain(playground.DirSE, width, height)
	s.emit(true)
}

func (s *springInstance) Step() bool {
	if s.atRest() {
		return false
	}
	if s.instant {
		s.width, s.height = s.targetW, s.targetH
		s.velW, s.velH = 0, 0
		s.emit(false)
		return false
	}
	s.width, s.velW = s.spring.Update(s.width, s.velW, s.targetW)
	s.height, s.velH = s.spring.Update(s.height, s.velH, s.targetH)
	if s.atRest() {
		s.width, s.height = s.targetW, s.targetH
		s.velW, s.velH = 0, 0
	}
	s.emit(false)
	return !s.atRest()
}

func (s *springInstance) Size() (float64, float64) { return s.width, s.height }

func (s *springInstance) Dragging() bool { return s.dragging }

func (s *springInstance) atRest() bool {
	return math.Abs(s.width-s.targetW) < settleEpsilon &&
		math.Abs(s.height-s.targetH) < settleEpsilon &&
		math.Abs(s.velW) < settleEpsilon &&
		math.Abs(s.velH) < settleEpsilon
}

// emit reports the current size; unchanged sizes are only reported when
// force is set so drag state transitions are always observed.
func (s *springInstance) emit(force bool) {
	if s.props.OnResize == nil {
		return
	}
	if !force && s.width == s.reportedW && s.height == s.reportedH {
		return
	}
	s.reportedW, s.reportedH = s.width, s.height
	s.props.OnResize(playground.ResizeEvent{
		Width:      s.width,
		Height:     s.height,
		IsDragging: s.dragging,
	})
}

// constrain applies aspect ratio, snap, and min/max bounds to a target.
// The axis the handle moves drives the ratio.
func (s *springInstance) constrain(dir playground.Direction, w, h float64) (float64, float64) {
	c := s.props.Constraints

	if c.AspectRatio != nil && *c.AspectRatio > 0 {
		ratio := *c.AspectRatio
		if dir.HasEast() || dir.HasWest() {
			h = w / ratio
		} else {
			w = h * ratio
		}
	}

	if s.props.Snap != nil && s.props.Snap.Increment > 0 {
		inc := float64(s.props.Snap.Increment)
		w = math.Round(w/inc) * inc
		h = math.Round(h/inc) * inc
	}

	w = clampAxis(w, c.Min, c.Max, func(sz *playground.Size) *float64 { return sz.Width })
	h = clampAxis(h, c.Min, c.Max, func(sz *playground.Size) *float64 { return sz.Height })

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func clampAxis(v float64, lower, upper *playground.Size, axis func(*playground.Size) *float64) float64 {
	if lower != nil {
		if bound := axis(lower); bound != nil && *bound != 0 && v < *bound {
			v = *bound
		}
	}
	if upper != nil {
		if bound := axis(upper); bound != nil && *bound != 0 && v > *bound {
			v = *bound
		}
	}
	return v
}
