// Package display отправляет готовую картинку в файл, поток, чат Telegram или окно.
package display

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// Format формат кодирования изображения
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"

	jpegQuality = 90
)

// FormatFromPath определяет формат по расширению файла, по умолчанию PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

// Encode кодирует изображение в w.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatPNG, "":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// WindowAvailable сообщает, собран ли оконный display (тег fyne).
func WindowAvailable() bool {
	return windowAvailable
}
