// Package imageio декодирует изображения датасета из afero.Fs.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"facemask/internal/domain/port"
)

// Transform преобразует изображение после декодирования.
type Transform func(image.Image) image.Image

// Loader загружает изображения из файловой системы.
type Loader struct {
	fs        afero.Fs
	transform Transform
}

// NewLoader создаёт загрузчик; transform может быть nil.
func NewLoader(fs afero.Fs, transform Transform) *Loader {
	return &Loader{fs: fs, transform: transform}
}

// Load декодирует изображение по пути.
// EXIF-ориентация не применяется: координаты рамок заданы в пикселях файла.
func (l *Loader) Load(path string) (image.Image, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	if l.transform != nil {
		img = l.transform(img)
	}
	return img, nil
}

// Grayscale переводит изображение в оттенки серого.
func Grayscale(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

// Chain применяет преобразования по порядку, nil пропускаются.
func Chain(transforms ...Transform) Transform {
	return func(img image.Image) image.Image {
		for _, t := range transforms {
			if t != nil {
				img = t(img)
			}
		}
		return img
	}
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*Loader)(nil)
