//go:build !fyne
// +build !fyne

package display

import (
	"context"
	"errors"
	"image"
)

const windowAvailable = false

// ErrWindowUnavailable сборка без тега fyne.
var ErrWindowUnavailable = errors.New("window display requires -tags fyne")

// Window заглушка оконного display.
type Window struct{}

// NewWindow создаёт заглушку (без fyne)
func NewWindow() *Window {
	return &Window{}
}

// Show возвращает ошибку, если сборка без тега fyne.
func (w *Window) Show(ctx context.Context, img image.Image, title string) error {
	_ = ctx
	_ = img
	_ = title
	return ErrWindowUnavailable
}
