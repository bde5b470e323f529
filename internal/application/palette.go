package app

import (
	"fmt"
	"image/color"

	"facemask/internal/domain/entity"
)

// Цвета как у коротких имён matplotlib: g, y, r.
var palette = map[entity.ClassLabel]color.RGBA{
	entity.ClassWithMask:            {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	entity.ClassMaskWearedIncorrect: {R: 0xbf, G: 0xbf, B: 0x00, A: 0xff},
	entity.ClassWithoutMask:         {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// ColorFor возвращает цвет рамки для класса.
func ColorFor(class entity.ClassLabel) (color.RGBA, error) {
	c, ok := palette[class]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", entity.ErrUnknownClass, class)
	}
	return c, nil
}

// Overlays строит рамки для отрисовки. Неизвестный класс — ошибка, а не пропуск рамки.
func Overlays(objs []entity.Object) ([]entity.Overlay, error) {
	overlays := make([]entity.Overlay, 0, len(objs))
	for _, obj := range objs {
		c, err := ColorFor(obj.Class)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, entity.Overlay{Class: obj.Class, Box: obj.Box, Color: c})
	}
	return overlays, nil
}
