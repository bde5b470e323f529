package entity

import (
	"image"
	"image/color"
)

// Entry элемент датасета: декодированное изображение и его разметка.
type Entry struct {
	Index          int         // плотный индекс внутри датасета
	ImagePath      string      // путь к файлу изображения
	AnnotationPath string      // путь к файлу разметки
	Image          image.Image // декодированные пиксели
	Objects        []Object    // объекты в порядке документа
}

// Overlay рамка, которую нужно нарисовать поверх изображения.
type Overlay struct {
	Class ClassLabel
	Box   BoundingBox
	Color color.RGBA
}
