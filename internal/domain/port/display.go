package port

import (
	"context"
	"image"
)

// Display куда отправляется готовая картинка: файл, окно, чат.
type Display interface {
	// Show показывает изображение
	Show(ctx context.Context, img image.Image, title string) error
}
