//go:build !fyne
// +build !fyne

package display

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_UnavailableWithoutTag(t *testing.T) {
	require.False(t, WindowAvailable())
	err := NewWindow().Show(context.Background(), image.NewRGBA(image.Rect(0, 0, 1, 1)), "")
	require.ErrorIs(t, err, ErrWindowUnavailable)
}
