// Package preview renders the configured panel, either through a live
// resize capability or through a static mock when none is available.
package preview

import (
	"fmt"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

// Props is the contract consumed by a resize capability. Exactly one of
// Preset and Config is set.
type Props struct {
	InitialWidth  float64
	InitialHeight float64
	Preset        playground.SpringSelection
	Config        *playground.SpringParams
	Constraints   playground.Constraints
	Snap          *playground.Snap
	Anchor        playground.Anchor
	Handles       []playground.Direction
	OnResize      func(playground.ResizeEvent)
}

// PropsFor builds capability props from a configuration snapshot. Only
// active constraints are passed on.
func PropsFor(cfg playground.Config, width, height float64, onResize func(playground.ResizeEvent)) Props {
	props := Props{
		InitialWidth:  width,
		InitialHeight: height,
		Constraints:   cfg.ActiveConstraints(),
		Anchor:        cfg.Anchor,
		Handles:       cfg.CanonicalHandles(),
		OnResize:      onResize,
	}
	if cfg.SpringSelection == playground.SpringCustom {
		params := cfg.SpringParams
		props.Config = &params
	} else {
		props.Preset = cfg.SpringSelection
	}
	if cfg.Snap != nil {
		snap := *cfg.Snap
		props.Snap = &snap
	}
	return props
}

// Params resolves the spring parameters the props ask for.
func (p Props) Params() playground.SpringParams {
	if p.Config != nil {
		return *p.Config
	}
	if params, ok := playground.PresetParams(p.Preset); ok {
		return params
	}
	params, _ := playground.PresetParams(playground.SpringSmooth)
	return params
}

// mountKey changes whenever a prop that requires a fresh instance changes.
// Live size is not part of it, so resizing never remounts.
func mountKey(cfg playground.Config) string {
	active := cfg.ActiveConstraints()
	return fmt.Sprintf("%g|%g|%s|%v|%s|%s|%s|%s|%s",
		cfg.InitialWidth, cfg.InitialHeight,
		cfg.SpringSelection, cfg.SpringParams,
		formatSize(active.Min), formatSize(active.Max), formatRatio(active.AspectRatio),
		formatSnap(cfg.Snap), cfg.Anchor,
	)
}

func formatSize(s *playground.Size) string {
	if s == nil {
		return "-"
	}
	return formatRatio(s.Width) + "x" + formatRatio(s.Height)
}

func formatRatio(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func formatSnap(s *playground.Snap) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%d", s.Increment)
}
