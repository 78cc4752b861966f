package preview

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

// Capability is an external resize engine.
type Capability interface {
	Name() string
	Mount(props Props) Instance
}

// Instance is one mounted resizable region.
type Instance interface {
	// Drag moves the edges named by dir by dx, dy pixels.
	Drag(dir playground.Direction, dx, dy float64)
	// Release ends the current drag; the region settles on its target.
	Release()
	// SetTarget resizes programmatically.
	SetTarget(width, height float64)
	// Step advances one animation frame and reports whether the region
	// is still moving.
	Step() bool
	// Size returns the current animated size.
	Size() (width, height float64)
	Dragging() bool
}

// LoadResult is the outcome of acquiring a capability: either a loaded
// capability or the reason it is unavailable.
type LoadResult struct {
	Capability Capability
	Reason     string
}

// Loaded wraps a successfully acquired capability.
func Loaded(c Capability) LoadResult {
	return LoadResult{Capability: c}
}

// Unavailable records why no capability could be acquired.
func Unavailable(reason string) LoadResult {
	return LoadResult{Reason: reason}
}

// Available reports whether a capability was acquired.
func (r LoadResult) Available() bool {
	return r.Capability != nil
}

// Loader acquires a capability. It may block; callers run it off the UI loop.
type Loader func(ctx context.Context) (Capability, error)

// Load runs loader and folds every failure, including a panic, into an
// Unavailable result.
func Load(ctx context.Context, loader Loader) (result LoadResult) {
	if loader == nil {
		return Unavailable(reszerrors.NewCapabilityError(SpringCapabilityName, "no loader configured", nil).Error())
	}

	defer func() {
		if r := recover(); r != nil {
			err := reszerrors.NewCapabilityError(SpringCapabilityName, "loader panicked", fmt.Errorf("%v", r))
			result = Unavailable(err.Error())
		}
	}()

	capability, err := loader(ctx)
	if err != nil {
		return Unavailable(err.Error())
	}
	if capability == nil {
		return Unavailable(reszerrors.NewCapabilityError(SpringCapabilityName, "loader returned no capability", nil).Error())
	}
	return Loaded(capability)
}

// LoaderOptions controls DefaultLoader.
type LoaderOptions struct {
	// Disabled makes the loader report the capability as unavailable.
	Disabled bool
	// FPS is the animation frame rate handed to the spring engine.
	FPS int
}

// DefaultLoader returns a loader for the harmonica spring capability.
func DefaultLoader(opts LoaderOptions) Loader {
	return func(ctx context.Context) (Capability, error) {
		if err := ctx.Err(); err != nil {
			return nil, reszerrors.NewCapabilityError(SpringCapabilityName, "load cancelled", err)
		}
		if opts.Disabled {
			return nil, reszerrors.NewCapabilityError(SpringCapabilityName, "live preview disabled", nil)
		}
		return NewSpringCapability(opts.FPS), nil
	}
}
