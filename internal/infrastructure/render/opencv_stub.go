//go:build !gocv
// +build !gocv

package render

import (
	"image"

	"facemask/internal/domain/entity"
)

const openCVAvailable = false

// OpenCV заглушка рендерера для сборки без тега gocv.
type OpenCV struct {
	Thickness int
}

// NewOpenCV создаёт рендерер-заглушку (без OpenCV).
func NewOpenCV(thickness int) *OpenCV {
	return &OpenCV{Thickness: thickness}
}

// Render возвращает ошибку, если сборка без тега gocv.
func (r *OpenCV) Render(img image.Image, overlays []entity.Overlay, title string) (image.Image, error) {
	_ = img
	_ = overlays
	_ = title
	return nil, ErrBackendUnavailable
}
