package playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHandlesOrdering(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.VisibleHandles = []Direction{DirSW, DirSE, DirN, DirE, DirNW}

	require.Equal(t, []Direction{DirN, DirE, DirNW, DirSE, DirSW}, cfg.CanonicalHandles())
}

func TestActiveConstraints(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.UseMinConstraints = true
	cfg.Constraints.Min = &Size{Width: Float(150)}
	cfg.UseMaxConstraints = true
	cfg.Constraints.Max = &Size{Width: Float(0)}
	cfg.UseAspectRatio = true

	active := cfg.ActiveConstraints()
	require.NotNil(t, active.Min)
	require.Equal(t, float64(150), *active.Min.Width)
	require.Nil(t, active.Max, "zero-valued max is not concrete")
	require.Nil(t, active.AspectRatio, "no ratio value present")
}

func TestDirectionEdges(t *testing.T) {
	t.Parallel()

	assert.True(t, DirNE.HasNorth())
	assert.True(t, DirNE.HasEast())
	assert.False(t, DirNE.HasSouth())
	assert.False(t, DirNE.HasWest())
	assert.True(t, DirSW.HasSouth())
	assert.True(t, DirSW.HasWest())
	assert.False(t, Direction("up").Valid())
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, AnchorCenter.Valid())
	assert.True(t, Anchor("se").Valid())
	assert.False(t, Anchor("middle").Valid())
	assert.True(t, SpringCustom.Valid())
	assert.False(t, SpringCustom.IsPreset())
	assert.False(t, SpringSelection("bouncy").Valid())
	assert.True(t, PanelKindToolbar.Valid())
	assert.False(t, PanelKind("drawer").Valid())
	assert.Equal(t, "Code Editor", PanelKindToolbar.Label())
}

func TestRatioLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "16:9", RatioLabel(1.78))
	assert.Equal(t, "1:1", RatioLabel(1))
	assert.Equal(t, "1.25", RatioLabel(1.25))
}

func TestParseDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 100},
		{in: "abc", want: 100},
		{in: "0", want: 100},
		{in: "250", want: 250},
		{in: " 120px", want: 120},
		{in: "-40", want: -40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDimension(tt.in, 100), "input %q", tt.in)
	}
}

func TestParseIncrement(t *testing.T) {
	t.Parallel()

	v, ok := ParseIncrement("15")
	require.True(t, ok)
	require.Equal(t, 15, v)

	for _, in := range []string{"", "0", "-3", "201", "x"} {
		_, ok := ParseIncrement(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestParseSpringValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.5, ParseSpringValue("2.5", 1))
	assert.Equal(t, float64(1), ParseSpringValue("", 1))
	assert.Equal(t, float64(1), ParseSpringValue("soft", 1))
}
