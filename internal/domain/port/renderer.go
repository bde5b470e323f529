package port

import (
	"image"

	"facemask/internal/domain/entity"
)

// Renderer интерфейс отрисовки рамок
type Renderer interface {
	// Render рисует рамки и заголовок и возвращает новое изображение, исходное не меняется
	Render(img image.Image, overlays []entity.Overlay, title string) (image.Image, error)
}
