package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("playground.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "playground.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "playground.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("handles[2]", "unknown direction", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "handles[2]", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown direction")
}

func TestCapabilityErrorIncludesReason(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("module not found")
	err := NewCapabilityError("resz", "dynamic import failed", underlying)

	var capErr *CapabilityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, "resz", capErr.Capability)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "capability unavailable [resz]: dynamic import failed: module not found", err.Error())
}

func TestCapabilityErrorWithoutCause(t *testing.T) {
	t.Parallel()

	err := NewCapabilityError("", "disabled", nil)
	require.Equal(t, "capability unavailable: disabled", err.Error())
	require.Nil(t, stdErrors.Unwrap(err))
}

func TestClipboardErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("no xclip")
	err := NewClipboardError(42, underlying)

	var clipErr *ClipboardError
	require.ErrorAs(t, err, &clipErr)
	require.Equal(t, 42, clipErr.Bytes)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "42 bytes")
}
