package display

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"facemask/internal/domain/port"
)

// File сохраняет картинку в файл; формат берётся из расширения.
type File struct {
	fs   afero.Fs
	path string
}

// NewFile создаёт display, пишущий в path
func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// Show записывает изображение, создавая недостающие каталоги
func (f *File) Show(ctx context.Context, img image.Image, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	out, err := f.fs.Create(f.path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := Encode(out, img, FormatFromPath(f.path)); err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	log.Debug().Str("path", f.path).Str("title", title).Msg("render saved")
	return nil
}

// Writer пишет картинку в поток, например в тело HTTP-ответа.
type Writer struct {
	w      io.Writer
	format Format
}

// NewWriter создаёт display поверх w
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// Show кодирует изображение в поток
func (w *Writer) Show(ctx context.Context, img image.Image, title string) error {
	_ = title
	if err := ctx.Err(); err != nil {
		return err
	}
	return Encode(w.w, img, w.format)
}

// Проверка реализации интерфейса
var (
	_ port.Display = (*File)(nil)
	_ port.Display = (*Writer)(nil)
)
