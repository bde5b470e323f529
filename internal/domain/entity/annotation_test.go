package entity

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxRect(t *testing.T) {
	b := BoundingBox{XMin: 10, YMin: 20, XMax: 50, YMax: 26}
	require.Equal(t, image.Rect(10, 20, 50, 26), b.Rect())
	require.Equal(t, 40, b.Width())
	require.Equal(t, 6, b.Height())
}

func TestClassLabelKnown(t *testing.T) {
	require.True(t, ClassWithMask.Known())
	require.True(t, ClassMaskWearedIncorrect.Known())
	require.True(t, ClassWithoutMask.Known())
	require.False(t, ClassLabel("helmet").Known())
}

func TestSubsetErrorsShareKind(t *testing.T) {
	require.True(t, errors.Is(ErrEmptySubset, ErrInvalidSubset))
	require.True(t, errors.Is(ErrDuplicateIndex, ErrInvalidSubset))
	require.False(t, errors.Is(ErrIndexOutOfRange, ErrInvalidSubset))
}
