package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapLoad(t *testing.T) {
	cause := fs.ErrNotExist
	err := WrapLoad(cause, "assets/input/parts.xml")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "assets/input/parts.xml")
	assert.Contains(t, err.Error(), "file does not exist")
	assert.True(t, IsLoadError(err))
	assert.True(t, Is(err, fs.ErrNotExist), "underlying cause should stay reachable")
	assert.False(t, Is(err, ErrWrite))
}

func TestWrapWrite(t *testing.T) {
	err := WrapWrite(fs.ErrPermission, "out/output_1.xml")

	assert.Contains(t, err.Error(), "out/output_1.xml")
	assert.True(t, Is(err, ErrWrite))
	assert.True(t, Is(err, fs.ErrPermission))
	assert.False(t, IsLoadError(err))
}

func TestNewInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("max must be at least 1, got %d", 0)

	assert.Equal(t, "max must be at least 1, got 0", err.Error())
	assert.True(t, IsInvalidRequestError(err))
	assert.False(t, IsInvalidRequestError(nil))
}

func TestNewInvalidQuantityError(t *testing.T) {
	err := NewInvalidQuantityError("record %d: %q", 3, "abc")

	assert.True(t, Is(err, ErrInvalidQuantity))
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestMarkSurvivesWrapping(t *testing.T) {
	inner := NewInvalidQuantityError("bad qty")
	outer := WrapLoad(inner, "a.xml")

	assert.True(t, Is(outer, ErrInvalidQuantity))
	assert.True(t, Is(outer, ErrLoad))
}

func TestHintsAreFlattened(t *testing.T) {
	err := WithHint(NewInvalidRequestError("no input"), "pass --input <file>")
	err = Wrap(err, "split")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "pass --input <file>", FlattenHints(err))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.False(t, IsLoadError(nil))
}

func ExampleWrapLoad() {
	err := WrapLoad(New("XML syntax error on line 3"), "parts.xml")
	fmt.Println(err)
	// Output: unable to load manifest parts.xml: XML syntax error on line 3
}
