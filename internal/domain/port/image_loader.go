package port

import "image"

// ImageLoader интерфейс загрузки изображений
type ImageLoader interface {
	// Load декодирует изображение по пути
	Load(path string) (image.Image, error)
}
