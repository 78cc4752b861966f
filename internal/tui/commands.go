package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reszplay/internal/clipboard"
	"github.com/alexisbeaulieu97/reszplay/internal/preview"
)

const (
	frameInterval = time.Second / 60
	releaseDelay  = 180 * time.Millisecond
	copiedTimeout = 2 * time.Second
)

// loadCapabilityCmd acquires the resize capability off the update loop.
func loadCapabilityCmd(ctx context.Context, loader preview.Loader) tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{Result: preview.Load(ctx, loader)}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func releaseCmd(seq int) tea.Cmd {
	return tea.Tick(releaseDelay, func(time.Time) tea.Msg { return releaseMsg{seq: seq} })
}

// copyCmd writes snippet to the clipboard. Failures only surface as OK=false.
func copyCmd(ctx context.Context, copier *clipboard.Copier, snippet string) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{OK: copier.Copy(ctx, snippet)}
	}
}

func copiedExpiredCmd(seq int) tea.Cmd {
	return tea.Tick(copiedTimeout, func(time.Time) tea.Msg { return copiedExpiredMsg{seq: seq} })
}
