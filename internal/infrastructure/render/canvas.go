package render

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

const titlePadding = 4

// Canvas рендерер на чистом Go: рамки рисуются draw2d, заголовок шрифтом basicfont.
type Canvas struct {
	LineWidth  float64
	TitleColor color.Color
	Background color.Color
}

// NewCanvas создаёт рендерер с толщиной линии lineWidth пикселей.
func NewCanvas(lineWidth int) *Canvas {
	return &Canvas{
		LineWidth:  float64(lineWidth),
		TitleColor: color.Black,
		Background: color.White,
	}
}

// TitleHeight высота полосы заголовка; 0 если заголовка нет.
func TitleHeight(title string) int {
	if title == "" {
		return 0
	}
	return basicfont.Face7x13.Height + 2*titlePadding
}

// Render рисует рамки в координатах изображения и заголовок над ним.
func (c *Canvas) Render(img image.Image, overlays []entity.Overlay, title string) (image.Image, error) {
	src := img.Bounds()
	band := TitleHeight(title)

	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()+band))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, band, src.Dx(), band+src.Dy()), img, src.Min, draw.Src)

	if len(overlays) > 0 {
		gc := draw2dimg.NewGraphicContext(dst)
		gc.SetLineWidth(c.LineWidth)
		for _, ov := range overlays {
			// Рамка задана в координатах файла, смещаем её к началу холста.
			r := ov.Box.Rect().Sub(src.Min).Add(image.Pt(0, band))
			gc.SetStrokeColor(ov.Color)
			draw2dkit.Rectangle(gc, float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
			gc.Stroke()
		}
	}

	if title != "" {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(c.TitleColor),
			Face: basicfont.Face7x13,
		}
		x := (src.Dx() - d.MeasureString(title).Ceil()) / 2
		if x < titlePadding {
			x = titlePadding
		}
		d.Dot = fixed.P(x, titlePadding+basicfont.Face7x13.Ascent)
		d.DrawString(title)
	}

	return dst, nil
}

// Проверка реализации интерфейса
var _ port.Renderer = (*Canvas)(nil)
