package clipboard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reszplay/internal/logger"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

type fakeWriter struct {
	text  string
	err   error
	panic bool
}

func (f *fakeWriter) WriteAll(text string) error {
	if f.panic {
		panic("no display")
	}
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestCopyWritesText(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := NewCopier(w, nil)
	require.True(t, c.Copy(context.Background(), "import { Resize } from 'resz'"))
	require.Equal(t, "import { Resize } from 'resz'", w.text)
}

func TestCopyAbsorbsFailure(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf, Level: "debug"})
	require.NoError(t, err)

	c := NewCopier(&fakeWriter{err: errors.New("denied")}, log)
	require.False(t, c.Copy(context.Background(), "abc"))
	require.Contains(t, buf.String(), "clipboard copy failed")
	require.Contains(t, buf.String(), "denied")
}

func TestCopyErrIsTyped(t *testing.T) {
	t.Parallel()

	c := NewCopier(&fakeWriter{err: errors.New("denied")}, nil)
	err := c.CopyErr(context.Background(), "abcd")

	var clipErr *reszerrors.ClipboardError
	require.ErrorAs(t, err, &clipErr)
	require.Equal(t, 4, clipErr.Bytes)
}

func TestCopyRecoversFromPanickingWriter(t *testing.T) {
	t.Parallel()

	c := NewCopier(&fakeWriter{panic: true}, nil)
	require.NotPanics(t, func() {
		require.False(t, c.Copy(context.Background(), "abc"))
	})
}
