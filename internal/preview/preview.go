package preview

import (
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

// Preview owns the mounted instance for one playground session. It never
// holds the store's configuration; every call receives a snapshot and
// resize events are buffered until the owner drains them.
type Preview struct {
	result   LoadResult
	renderer Renderer
	instance Instance
	key      string
	pending  []playground.ResizeEvent
}

// New builds a preview for the outcome of a capability load.
func New(result LoadResult) *Preview {
	return &Preview{
		result:   result,
		renderer: NewRenderer(result),
	}
}

// Live reports whether a real capability drives the preview.
func (p *Preview) Live() bool {
	return p != nil && p.renderer.Live()
}

// Reason returns why the capability is unavailable, if it is.
func (p *Preview) Reason() string {
	if p == nil {
		return ""
	}
	return p.result.Reason
}

// Sync mounts a fresh instance when cfg changed in a way the capability
// cannot follow in place. The instance starts at size. It reports whether
// a remount happened.
func (p *Preview) Sync(cfg playground.Config, size playground.ResizeEvent) bool {
	if !p.Live() {
		return false
	}
	key := mountKey(cfg)
	if p.instance != nil && key == p.key {
		return false
	}
	p.key = key
	p.instance = p.result.Capability.Mount(PropsFor(cfg, size.Width, size.Height, p.record))
	return true
}

// Drag forwards a drag step to the instance.
func (p *Preview) Drag(dir playground.Direction, dx, dy float64) {
	if p.instance == nil {
		return
	}
	p.instance.Drag(dir, dx, dy)
}

// Release ends a drag.
func (p *Preview) Release() {
	if p.instance == nil {
		return
	}
	p.instance.Release()
}

// Resize moves the instance to an explicit size.
func (p *Preview) Resize(width, height float64) {
	if p.instance == nil {
		return
	}
	p.instance.SetTarget(width, height)
}

// Step advances the animation by one frame and reports whether another
// frame is needed.
func (p *Preview) Step() bool {
	if p.instance == nil {
		return false
	}
	return p.instance.Step()
}

// Dragging reports whether a drag is in progress.
func (p *Preview) Dragging() bool {
	return p.instance != nil && p.instance.Dragging()
}

// Drain returns and clears the buffered resize events.
func (p *Preview) Drain() []playground.ResizeEvent {
	events := p.pending
	p.pending = nil
	return events
}

// View renders cfg. Live previews draw the animated size, the mock draws
// the configured size.
func (p *Preview) View(cfg playground.Config, active playground.Direction, areaWidth, areaHeight int) string {
	frame := Frame{
		Config:       cfg,
		Width:        cfg.InitialWidth,
		Height:       cfg.InitialHeight,
		ActiveHandle: active,
		AreaWidth:    areaWidth,
		AreaHeight:   areaHeight,
	}
	if p.instance != nil {
		frame.Width, frame.Height = p.instance.Size()
		frame.Dragging = p.instance.Dragging()
	}
	return p.renderer.Render(frame)
}

func (p *Preview) record(ev playground.ResizeEvent) {
	p.pending = append(p.pending, ev)
}
