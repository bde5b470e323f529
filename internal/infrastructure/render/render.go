// Package render рисует рамки объектов и заголовок поверх изображения.
package render

import (
	"errors"
	"fmt"

	"facemask/internal/domain/port"
)

const (
	BackendCanvas = "canvas"
	BackendOpenCV = "gocv"

	DefaultLineWidth = 2
)

// ErrBackendUnavailable бэкенд не включён в сборку.
var ErrBackendUnavailable = errors.New("render backend is not available in this build")

// New возвращает рендерер по имени бэкенда. Пустое имя означает canvas.
func New(backend string, lineWidth int) (port.Renderer, error) {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}

	switch backend {
	case "", BackendCanvas:
		return NewCanvas(lineWidth), nil
	case BackendOpenCV:
		if !openCVAvailable {
			return nil, fmt.Errorf("%s: %w (build with -tags gocv)", backend, ErrBackendUnavailable)
		}
		return NewOpenCV(lineWidth), nil
	default:
		return nil, fmt.Errorf("unknown render backend %q", backend)
	}
}
