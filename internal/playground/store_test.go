package playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreStartsFromDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewStore().Get()
	require.Equal(t, PanelKindModal, cfg.PanelKind)
	require.Equal(t, float64(400), cfg.InitialWidth)
	require.Equal(t, float64(300), cfg.InitialHeight)
	require.Equal(t, SpringSmooth, cfg.SpringSelection)
	require.Equal(t, SpringParams{Tension: 170, Friction: 26, Mass: 1}, cfg.SpringParams)
	require.Equal(t, []Direction{DirSE, DirE, DirS}, cfg.VisibleHandles)
	require.Equal(t, AnchorCenter, cfg.Anchor)
	require.Nil(t, cfg.Snap)
	require.False(t, cfg.UseMinConstraints)
	require.False(t, cfg.UseMaxConstraints)
	require.False(t, cfg.UseAspectRatio)
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	cfg := store.Get()
	cfg.VisibleHandles[0] = DirN
	*cfg.Constraints.Min.Width = 1

	fresh := store.Get()
	assert.Equal(t, DirSE, fresh.VisibleHandles[0])
	assert.Equal(t, float64(200), *fresh.Constraints.Min.Width)
}

func TestSetSpringPresetOverwritesParams(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetSpringParam(SpringParamsPatch{Tension: Float(999), Friction: Float(1), Mass: Float(5)})
	store.SetSpringPreset(SpringSnappy)

	cfg := store.Get()
	require.Equal(t, SpringSnappy, cfg.SpringSelection)
	require.Equal(t, SpringParams{Tension: 300, Friction: 30, Mass: 1}, cfg.SpringParams)
}

func TestSetSpringPresetCustomKeepsParams(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetSpringPreset(SpringGentle)
	store.SetSpringPreset(SpringCustom)

	cfg := store.Get()
	require.Equal(t, SpringCustom, cfg.SpringSelection)
	require.Equal(t, SpringParams{Tension: 120, Friction: 14, Mass: 1}, cfg.SpringParams)
}

func TestSetSpringParamForcesCustom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prior SpringSelection
		patch SpringParamsPatch
	}{
		{name: "tension from smooth", prior: SpringSmooth, patch: SpringParamsPatch{Tension: Float(250)}},
		{name: "friction from gentle", prior: SpringGentle, patch: SpringParamsPatch{Friction: Float(10)}},
		{name: "mass from snappy", prior: SpringSnappy, patch: SpringParamsPatch{Mass: Float(2)}},
		{name: "mass from custom", prior: SpringCustom, patch: SpringParamsPatch{Mass: Float(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			store.SetSpringPreset(tt.prior)
			store.SetSpringParam(tt.patch)
			require.Equal(t, SpringCustom, store.Get().SpringSelection)
		})
	}
}

func TestSetSpringParamKeepsOtherFields(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetSpringParam(SpringParamsPatch{Tension: Float(250)})

	cfg := store.Get()
	require.Equal(t, SpringCustom, cfg.SpringSelection)
	require.Equal(t, float64(250), cfg.SpringParams.Tension)
	require.Equal(t, float64(26), cfg.SpringParams.Friction)
	require.Equal(t, float64(1), cfg.SpringParams.Mass)
}

func TestToggleHandleTwiceRestoresSet(t *testing.T) {
	t.Parallel()

	for _, dir := range CanonicalDirections {
		store := NewStore()
		before := store.Get().VisibleHandles

		store.ToggleHandle(dir)
		store.ToggleHandle(dir)

		assert.ElementsMatch(t, before, store.Get().VisibleHandles, "direction %s", dir)
	}
}

func TestToggleHandleNeverDuplicates(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ToggleHandle(DirN)
	store.ToggleHandle(DirE)
	store.ToggleHandle(DirN)

	cfg := store.Get()
	require.Equal(t, []Direction{DirSE, DirS}, cfg.VisibleHandles)
}

func TestPatchIsShallow(t *testing.T) {
	t.Parallel()

	store := NewStore()
	width := float64(640)
	useMin := true
	store.Patch(Patch{InitialWidth: &width, UseMinConstraints: &useMin})

	cfg := store.Get()
	require.Equal(t, float64(640), cfg.InitialWidth)
	require.Equal(t, float64(300), cfg.InitialHeight)
	require.True(t, cfg.UseMinConstraints)
	require.NotNil(t, cfg.Constraints.Max, "untouched fields keep their values")
}

func TestPatchReplacesConstraintsWhole(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Patch(Patch{Constraints: &Constraints{Min: &Size{Width: Float(150)}}})

	cfg := store.Get()
	require.NotNil(t, cfg.Constraints.Min)
	require.Nil(t, cfg.Constraints.Min.Height)
	require.Nil(t, cfg.Constraints.Max)
}

func TestPatchSnap(t *testing.T) {
	t.Parallel()

	store := NewStore()
	snap := &Snap{Increment: 25}
	store.Patch(Patch{Snap: &snap})
	require.Equal(t, 25, store.Get().Snap.Increment)

	var none *Snap
	store.Patch(Patch{Snap: &none})
	require.Nil(t, store.Get().Snap)
}

func TestPatchDedupesHandles(t *testing.T) {
	t.Parallel()

	store := NewStore()
	handles := []Direction{DirN, DirN, DirW}
	store.Patch(Patch{VisibleHandles: &handles})
	require.Equal(t, []Direction{DirN, DirW}, store.Get().VisibleHandles)
}

func TestSetPanelKindAppliesDefaultHandles(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetPanelKind(PanelKindSidebar)
	require.Equal(t, []Direction{DirE}, store.Get().VisibleHandles)

	store.SetPanelKind(PanelKindWindow)
	require.Equal(t, []Direction{DirSE, DirE, DirS}, store.Get().VisibleHandles)
}

func TestSnapIncrementBounds(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetSnapIncrement(20)
	require.Nil(t, store.Get().Snap, "increment ignored while snapping is off")

	store.EnableSnap(true)
	require.Equal(t, DefaultSnapIncrement, store.Get().Snap.Increment)

	store.SetSnapIncrement(0)
	store.SetSnapIncrement(201)
	require.Equal(t, DefaultSnapIncrement, store.Get().Snap.Increment)

	store.SetSnapIncrement(200)
	require.Equal(t, 200, store.Get().Snap.Increment)

	store.EnableSnap(false)
	require.Nil(t, store.Get().Snap)
}

func TestConstraintFlagsKeepValues(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetAspectRatio(1.78)
	store.SetConstraintFlags(true, true, true)
	store.SetConstraintFlags(false, false, false)

	cfg := store.Get()
	require.NotNil(t, cfg.Constraints.AspectRatio)
	require.Equal(t, 1.78, *cfg.Constraints.AspectRatio)
	require.Equal(t, Constraints{}, cfg.ActiveConstraints())
}

func TestApplyResizeTracksLiveSize(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.Equal(t, ResizeEvent{Width: 400, Height: 300}, store.LiveSize())

	store.ApplyResize(ResizeEvent{Width: 420, Height: 310, IsDragging: true})
	require.Equal(t, ResizeEvent{Width: 420, Height: 310, IsDragging: true}, store.LiveSize())

	store.ApplyResize(ResizeEvent{Width: 0, Height: 310})
	require.Equal(t, float64(420), store.LiveSize().Width)

	store.SetDimensions(500, 500)
	require.Equal(t, ResizeEvent{Width: 500, Height: 500}, store.LiveSize())
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetPanelKind(PanelKindSidebar)
	store.SetSpringParam(SpringParamsPatch{Mass: Float(4)})
	store.SetAnchor(Anchor(DirNW))
	store.EnableSnap(true)
	store.SetConstraintFlags(true, true, true)
	store.ToggleHandle(DirW)
	store.SetDimensions(-5, 0)

	store.Reset()

	cfg := store.Get()
	require.Equal(t, Default(), cfg)
	require.Equal(t, []Direction{DirSE, DirE, DirS}, cfg.VisibleHandles)
	require.Equal(t, PanelKindModal, cfg.PanelKind)
}

func TestStoreAcceptsOutOfRangeDimensions(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetDimensions(-10, 0)

	cfg := store.Get()
	require.Equal(t, float64(-10), cfg.InitialWidth)
	require.Equal(t, float64(0), cfg.InitialHeight)
}

func TestNewStoreWithRestoresInvariants(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.SpringSelection = SpringGentle
	cfg.SpringParams = SpringParams{Tension: 1, Friction: 1, Mass: 1}
	cfg.VisibleHandles = []Direction{DirE, DirE}

	got := NewStoreWith(cfg).Get()
	require.Equal(t, SpringParams{Tension: 120, Friction: 14, Mass: 1}, got.SpringParams)
	require.Equal(t, []Direction{DirE}, got.VisibleHandles)
}
