package tui

import (
	"github.com/alexisbeaulieu97/reszplay/internal/preview"
)

// LoadedMsg carries the outcome of the capability load.
type LoadedMsg struct {
	Result preview.LoadResult
}

// CopyResultMsg reports whether the snippet reached the clipboard.
type CopyResultMsg struct {
	OK bool
}

// frameMsg advances the preview animation by one frame.
type frameMsg struct{}

// releaseMsg ends a keyboard drag unless a newer drag step superseded it.
type releaseMsg struct {
	seq int
}

// copiedExpiredMsg hides the "Copied!" indicator.
type copiedExpiredMsg struct {
	seq int
}
