package voc

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

// Reader читает файлы разметки из файловой системы.
type Reader struct {
	fs afero.Fs
}

// NewReader создаёт Reader поверх fs
func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// ReadLabels читает только объекты из файла
func (r *Reader) ReadLabels(path string) ([]entity.Object, error) {
	var objs []entity.Object
	err := r.withFile(path, func(f io.Reader) error {
		var err error
		objs, err = ParseLabels(f)
		return err
	})
	return objs, err
}

// ReadAnnotation читает разметку вместе с метаданными изображения
func (r *Reader) ReadAnnotation(path string) (*entity.Annotation, error) {
	var ann *entity.Annotation
	err := r.withFile(path, func(f io.Reader) error {
		var err error
		ann, err = ParseAnnotation(f)
		return err
	})
	return ann, err
}

func (r *Reader) withFile(path string, parse func(io.Reader) error) error {
	f, err := r.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open annotation: %w", err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return err
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.AnnotationReader = (*Reader)(nil)
