package entity

import "image"

// BoundingBox прямоугольник объекта в пиксельных координатах исходного изображения.
// Порядок xmin <= xmax, ymin <= ymax не проверяется.
type BoundingBox struct {
	XMin int `json:"xmin" yaml:"xmin"`
	YMin int `json:"ymin" yaml:"ymin"`
	XMax int `json:"xmax" yaml:"xmax"`
	YMax int `json:"ymax" yaml:"ymax"`
}

// Rect возвращает рамку как image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rectangle{Min: image.Pt(b.XMin, b.YMin), Max: image.Pt(b.XMax, b.YMax)}
}

// Width ширина рамки
func (b BoundingBox) Width() int { return b.XMax - b.XMin }

// Height высота рамки
func (b BoundingBox) Height() int { return b.YMax - b.YMin }

// Object размеченный объект: класс и рамка.
type Object struct {
	Class ClassLabel  `json:"class" yaml:"class"`
	Box   BoundingBox `json:"box" yaml:"box"`
}

// Annotation полная разметка одного изображения.
type Annotation struct {
	Filename string   `json:"filename" yaml:"filename"`
	Width    int      `json:"width" yaml:"width"`
	Height   int      `json:"height" yaml:"height"`
	Objects  []Object `json:"objects" yaml:"objects"`
}
