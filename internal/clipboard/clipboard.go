// Package clipboard copies exported snippets to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/alexisbeaulieu97/reszplay/internal/logger"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errUnsupported
	}
	return clipboard.WriteAll(text)
}

var errUnsupported = errors.New("no clipboard utility available")

// Copier writes snippets and absorbs failures; callers only learn whether
// the text reached the clipboard.
type Copier struct {
	writer Writer
	logger ports.Logger
}

// NewCopier creates a Copier. A nil writer means the system clipboard.
func NewCopier(w Writer, log ports.Logger) *Copier {
	if w == nil {
		w = System{}
	}
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Copier{writer: w, logger: log}
}

// Copy writes text and reports whether it succeeded. Failures are logged at
// debug level and never surfaced.
func (c *Copier) Copy(ctx context.Context, text string) bool {
	return c.CopyErr(ctx, text) == nil
}

// CopyErr is Copy for callers that want the typed failure.
func (c *Copier) CopyErr(ctx context.Context, text string) error {
	if err := c.write(text); err != nil {
		wrapped := reszerrors.NewClipboardError(len(text), err)
		c.logger.Debug(ctx, "clipboard copy failed", "error", wrapped)
		return wrapped
	}
	c.logger.Debug(ctx, "snippet copied", "bytes", len(text))
	return nil
}

// write guards against writers that panic, which some clipboard backends
// do when no display is attached.
func (c *Copier) write(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard writer panicked: %v", r)
		}
	}()
	return c.writer.WriteAll(text)
}
