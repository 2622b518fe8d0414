package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUnresolvedType, "type %q", "Frobnicator")

	assert.Contains(t, wrapped.Error(), `type "Frobnicator"`)
	assert.Contains(t, wrapped.Error(), "unresolved type")
	assert.True(t, Is(wrapped, ErrUnresolvedType))
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyGenerics, "field items")

	assert.True(t, Is(wrapped, ErrEmptyGenerics))
	assert.False(t, Is(wrapped, ErrMissingName))
	assert.False(t, Is(nil, ErrEmptyGenerics))
}

func TestWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrUnresolvedType, "Frobnicator"), "add a package attribute")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "add a package attribute", hints[0])
	assert.True(t, Is(err, ErrUnresolvedType))
}

func TestIsResolutionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unresolved type", Wrap(ErrUnresolvedType, "x"), true},
		{"empty generics", ErrEmptyGenerics, true},
		{"missing name", Wrapf(ErrMissingName, "val"), true},
		{"unknown modifier", ErrUnknownModifier, true},
		{"missing root attribute", ErrMissingRootAttribute, false},
		{"plain error", fmt.Errorf("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsResolutionError(tt.err))
		})
	}
}

func TestIsDocumentError(t *testing.T) {
	assert.True(t, IsDocumentError(Wrap(ErrInvalidDocument, "line 3")))
	assert.True(t, IsDocumentError(Wrapf(ErrMissingRootAttribute, "package")))
	assert.True(t, IsDocumentError(Wrapf(ErrInvalidName, "file name %q", "../x")))
	assert.False(t, IsDocumentError(ErrUnresolvedType))
	assert.False(t, IsDocumentError(nil))
}

func TestStdlibWrappingPreservesSentinel(t *testing.T) {
	err := fmt.Errorf("document consts.xml: %w", ErrMissingRootAttribute)
	assert.True(t, Is(err, ErrMissingRootAttribute))
}
