//go:build fyne
// +build fyne

package display

import (
	"context"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"facemask/internal/domain/port"
)

const windowAvailable = true

// Window показывает картинку в окне fyne и блокируется до его закрытия.
// Вызывать нужно из главной горутины.
type Window struct{}

// NewWindow создаёт оконный display
func NewWindow() *Window {
	return &Window{}
}

// Show открывает окно с изображением в исходном размере
func (w *Window) Show(ctx context.Context, img image.Image, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if title == "" {
		title = "facemask"
	}

	a := app.New()
	win := a.NewWindow(title)

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	c.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))

	win.SetContent(c)
	win.ShowAndRun()
	return nil
}

// Проверка реализации интерфейса
var _ port.Display = (*Window)(nil)
