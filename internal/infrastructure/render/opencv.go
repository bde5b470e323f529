//go:build gocv
// +build gocv

package render

import (
	"errors"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

const openCVAvailable = true

// OpenCV рендерер на gocv.
type OpenCV struct {
	Thickness int
}

// NewOpenCV создаёт рендерер с толщиной линии thickness.
func NewOpenCV(thickness int) *OpenCV {
	return &OpenCV{Thickness: thickness}
}

// Render рисует рамки через gocv.Rectangle и заголовок через gocv.PutText.
func (r *OpenCV) Render(img image.Image, overlays []entity.Overlay, title string) (image.Image, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	band := TitleHeight(title)
	canvas := mat
	if band > 0 {
		bordered := gocv.NewMat()
		defer bordered.Close()
		gocv.CopyMakeBorder(mat, &bordered, band, 0, 0, 0, gocv.BorderConstant, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		canvas = bordered
	}

	origin := img.Bounds().Min
	for _, ov := range overlays {
		rect := ov.Box.Rect().Sub(origin).Add(image.Pt(0, band))
		gocv.Rectangle(&canvas, rect, ov.Color, r.Thickness)
	}

	if band > 0 {
		black := color.RGBA{A: 255}
		gocv.PutText(&canvas, title, image.Pt(titlePadding, band-titlePadding), gocv.FontHersheySimplex, 0.45, black, 1)
	}

	return canvas.ToImage()
}

// Проверка реализации интерфейса
var _ port.Renderer = (*OpenCV)(nil)
