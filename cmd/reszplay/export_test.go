package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reszplay/internal/export"
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

type recordingWriter struct {
	text string
	err  error
}

func (w *recordingWriter) WriteAll(text string) error {
	if w.err != nil {
		return w.err
	}
	w.text = text
	return nil
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func swapClipboard(t *testing.T, w *recordingWriter) {
	t.Helper()
	original := clipboardWriter
	clipboardWriter = w
	t.Cleanup(func() { clipboardWriter = original })
}

func TestExportCommandDefaults(t *testing.T) {
	stdout, _, err := executeCommand(t, "export")
	require.NoError(t, err)
	require.Equal(t, export.Serialize(playground.Default())+"\n", stdout)
}

func TestExportCommandFromDocument(t *testing.T) {
	path := writeDocument(t, `panel: sidebar
width: 300
height: 200
spring: snappy
min: {width: 120, enabled: true}
`)

	stdout, _, err := executeCommand(t, "export", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, `preset="snappy"`)
	require.Contains(t, stdout, `<Handle dir="e" />`)
	require.NotContains(t, stdout, "initialWidth")
	require.Contains(t, stdout, "constraints={{ min: { width: 120, height: 150 } }}")
}

func TestExportCommandInvalidDocument(t *testing.T) {
	path := writeDocument(t, "width: -5\n")

	_, _, err := executeCommand(t, "export", "-c", path)
	require.Error(t, err)

	var validationErr *reszerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "width", validationErr.Field)
}

func TestExportCommandMissingDocument(t *testing.T) {
	_, _, err := executeCommand(t, "export", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

func TestExportCommandCopy(t *testing.T) {
	w := &recordingWriter{}
	swapClipboard(t, w)

	stdout, stderr, err := executeCommand(t, "export", "--copy", "--verbose")
	require.NoError(t, err)
	require.Equal(t, strings.TrimSuffix(stdout, "\n"), w.text)
	require.Contains(t, stderr, "Copied to clipboard")
	require.Contains(t, stderr, "click_copy_code")
}

func TestExportCommandCopyFailureIsNotFatal(t *testing.T) {
	swapClipboard(t, &recordingWriter{err: errors.New("no display")})

	stdout, stderr, err := executeCommand(t, "export", "--copy", "--verbose")
	require.NoError(t, err)
	require.NotEmpty(t, stdout)
	require.Contains(t, stderr, "snippet not copied")
	require.NotContains(t, stderr, "click_copy_code")
}

func TestExportCommandLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "reszplay.log")

	_, stderr, err := executeCommand(t, "export", "--verbose", "--log-file", logPath)
	require.NoError(t, err)
	require.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "export.opened")
	require.Contains(t, string(data), "session_id")
}
