package config

import (
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

// Config builds a playground configuration from the document on top of the
// defaults. Setting a panel without handles applies that panel's default
// handle set.
func (d *Document) Config() playground.Config {
	cfg := playground.Default()

	if d.Panel != "" {
		cfg.PanelKind = playground.PanelKind(d.Panel)
		cfg.VisibleHandles = cfg.PanelKind.DefaultHandles()
	}
	if d.Handles != nil {
		cfg.VisibleHandles = make([]playground.Direction, 0, len(d.Handles))
		for _, h := range d.Handles {
			cfg.VisibleHandles = append(cfg.VisibleHandles, playground.Direction(h))
		}
	}
	if d.Width != nil {
		cfg.InitialWidth = *d.Width
	}
	if d.Height != nil {
		cfg.InitialHeight = *d.Height
	}

	switch {
	case d.Spring != "" && d.Spring != string(playground.SpringCustom):
		cfg.SpringSelection = playground.SpringSelection(d.Spring)
		cfg.SpringParams, _ = playground.PresetParams(cfg.SpringSelection)
	case d.Spring == string(playground.SpringCustom) || d.hasSpringParams():
		cfg.SpringSelection = playground.SpringCustom
		if d.Tension != nil {
			cfg.SpringParams.Tension = *d.Tension
		}
		if d.Friction != nil {
			cfg.SpringParams.Friction = *d.Friction
		}
		if d.Mass != nil {
			cfg.SpringParams.Mass = *d.Mass
		}
	}

	if d.Anchor != "" {
		cfg.Anchor = playground.Anchor(d.Anchor)
	}

	if d.Min != nil {
		cfg.Constraints.Min = mergeBound(cfg.Constraints.Min, d.Min)
		cfg.UseMinConstraints = d.Min.Enabled
	}
	if d.Max != nil {
		cfg.Constraints.Max = mergeBound(cfg.Constraints.Max, d.Max)
		cfg.UseMaxConstraints = d.Max.Enabled
	}
	if d.AspectRatio != nil {
		if d.AspectRatio.Value != nil {
			cfg.Constraints.AspectRatio = playground.Float(*d.AspectRatio.Value)
		} else if cfg.Constraints.AspectRatio == nil {
			cfg.Constraints.AspectRatio = playground.Float(playground.DefaultAspectRatio)
		}
		cfg.UseAspectRatio = d.AspectRatio.Enabled
	}

	if d.Snap != nil {
		cfg.Snap = &playground.Snap{Increment: *d.Snap}
	}

	return cfg
}

func mergeBound(base *playground.Size, b *Bound) *playground.Size {
	out := &playground.Size{}
	if base != nil {
		out.Width, out.Height = base.Width, base.Height
	}
	if b.Width != nil {
		out.Width = playground.Float(*b.Width)
	}
	if b.Height != nil {
		out.Height = playground.Float(*b.Height)
	}
	return out
}
