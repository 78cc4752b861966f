package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	validYAML := `panel: sidebar
width: 320
height: 600
spring: custom
tension: 250
handles: [e, w]
min: {width: 200, height: 150, enabled: true}
snap: 20
`

	invalidYAML := `panel: [modal]
width: 300
`

	unknownKey := `panel: modal
widht: 300
`

	negativeWidth := `width: -20
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "sidebar", doc.Panel)
				require.Equal(t, []string{"e", "w"}, doc.Handles)
				require.NotNil(t, doc.Snap)
				require.Equal(t, 20, *doc.Snap)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *reszerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *reszerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "widht")
			},
		},
		{
			name:     "negative width fails validation",
			contents: negativeWidth,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *reszerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "width", validationErr.Field)
			},
		},
		{
			name:     "empty document keeps defaults",
			contents: "",
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Equal(t, playground.Default(), doc.Config())
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDocument(t, tc.contents)
			doc, err := ParseFile(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *reszerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestYAMLLoaderWrapsErrors(t *testing.T) {
	t.Parallel()

	path := writeTempDocument(t, "anchor: middle\n")
	_, err := NewYAMLLoader(nil).Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load playground document")

	var validationErr *reszerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "anchor", validationErr.Field)
}

func writeTempDocument(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestYAMLLoaderLoad(t *testing.T) {
	t.Parallel()

	path := writeTempDocument(t, "panel: toolbar\nwidth: 640\n")
	cfg, err := NewYAMLLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, playground.PanelKindToolbar, cfg.PanelKind)
	require.Equal(t, float64(640), cfg.InitialWidth)
}

func TestYAMLLoaderRejectsExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "playground.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	err := NewYAMLLoader(nil).Validate(context.Background(), path)
	var validationErr *reszerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "path", validationErr.Field)
}

func TestYAMLLoaderHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewYAMLLoader(nil).Load(ctx, writeTempDocument(t, ""))
	require.ErrorIs(t, err, context.Canceled)
}
