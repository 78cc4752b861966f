package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

func parse(t *testing.T, yaml string) playground.Config {
	t.Helper()
	doc, err := Parse("test.yaml", []byte(yaml))
	require.NoError(t, err)
	return doc.Config()
}

func TestConfigPanelAppliesDefaultHandles(t *testing.T) {
	t.Parallel()

	cfg := parse(t, "panel: sidebar\n")
	assert.Equal(t, playground.PanelKindSidebar, cfg.PanelKind)
	assert.Equal(t, []playground.Direction{playground.DirE}, cfg.VisibleHandles)

	cfg = parse(t, "panel: sidebar\nhandles: [w]\n")
	assert.Equal(t, []playground.Direction{playground.DirW}, cfg.VisibleHandles)

	cfg = parse(t, "handles: []\n")
	assert.Empty(t, cfg.VisibleHandles)
}

func TestConfigSprings(t *testing.T) {
	t.Parallel()

	cfg := parse(t, "spring: snappy\n")
	assert.Equal(t, playground.SpringSnappy, cfg.SpringSelection)
	assert.Equal(t, playground.SpringParams{Tension: 300, Friction: 30, Mass: 1}, cfg.SpringParams)

	cfg = parse(t, "friction: 12\n")
	assert.Equal(t, playground.SpringCustom, cfg.SpringSelection)
	assert.Equal(t, playground.SpringParams{Tension: 170, Friction: 12, Mass: 1}, cfg.SpringParams)

	cfg = parse(t, "spring: custom\n")
	assert.Equal(t, playground.SpringCustom, cfg.SpringSelection)
	assert.Equal(t, playground.SpringParams{Tension: 170, Friction: 26, Mass: 1}, cfg.SpringParams)
}

func TestConfigConstraintsMergeWithDefaults(t *testing.T) {
	t.Parallel()

	cfg := parse(t, `min: {width: 250, enabled: true}
max: {height: 500}
aspect_ratio: {enabled: true}
snap: 5
anchor: se
`)
	require.True(t, cfg.UseMinConstraints)
	require.False(t, cfg.UseMaxConstraints)
	require.True(t, cfg.UseAspectRatio)

	require.NotNil(t, cfg.Constraints.Min)
	assert.Equal(t, float64(250), *cfg.Constraints.Min.Width)
	assert.Equal(t, float64(150), *cfg.Constraints.Min.Height)
	assert.Equal(t, float64(800), *cfg.Constraints.Max.Width)
	assert.Equal(t, float64(500), *cfg.Constraints.Max.Height)
	assert.Equal(t, playground.DefaultAspectRatio, *cfg.Constraints.AspectRatio)

	require.NotNil(t, cfg.Snap)
	assert.Equal(t, 5, cfg.Snap.Increment)
	assert.Equal(t, playground.Anchor("se"), cfg.Anchor)
}

func TestConfigDimensions(t *testing.T) {
	t.Parallel()

	cfg := parse(t, "width: 512.5\nheight: 300\n")
	assert.Equal(t, 512.5, cfg.InitialWidth)
	assert.Equal(t, float64(300), cfg.InitialHeight)
}
