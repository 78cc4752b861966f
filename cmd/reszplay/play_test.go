package main

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func stubPlay(t *testing.T) *playOptions {
	t.Helper()

	got := &playOptions{}
	original := playCmdRunner
	playCmdRunner = func(cmd *cobra.Command, flags *rootFlags, opts *playOptions) error {
		*got = *opts
		return nil
	}
	t.Cleanup(func() { playCmdRunner = original })
	return got
}

func TestRootLaunchesPlayground(t *testing.T) {
	got := stubPlay(t)

	_, _, err := executeCommand(t, "--no-preview", "--fps", "30")
	require.NoError(t, err)
	require.True(t, got.NoPreview)
	require.Equal(t, 30, got.FPS)
}

func TestPlaySubcommandFlags(t *testing.T) {
	got := stubPlay(t)

	_, _, err := executeCommand(t, "play", "--config", "doc.yaml")
	require.NoError(t, err)
	require.Equal(t, "doc.yaml", got.ConfigPath)
	require.False(t, got.NoPreview)
	require.Equal(t, 60, got.FPS)
}

func TestPlayRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	_, _, err := executeCommand(t, "play")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a terminal")
}

func TestPreviewDisabledByEnv(t *testing.T) {
	t.Setenv(envNoPreview, "1")
	require.True(t, previewDisabledByEnv())

	t.Setenv(envNoPreview, "no")
	require.False(t, previewDisabledByEnv())
}

func TestLoadPlaygroundConfigRejectsDirectory(t *testing.T) {
	_, err := loadPlaygroundConfig(context.Background(), nil, t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}
