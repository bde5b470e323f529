package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDirectory в корне датасета нет images/ или annotations/.
	ErrMissingDirectory = errors.New("dataset directory is missing")

	// ErrCountMismatch число изображений не совпадает с числом разметок.
	ErrCountMismatch = errors.New("number of images does not match number of annotations")

	// ErrIndexOutOfRange индекс за пределами [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidSubset общий признак некорректного набора индексов.
	ErrInvalidSubset = errors.New("invalid index subset")

	ErrEmptySubset    = fmt.Errorf("%w: subset is empty", ErrInvalidSubset)
	ErrDuplicateIndex = fmt.Errorf("%w: duplicate index", ErrInvalidSubset)

	// ErrMalformedAnnotation файл разметки не соответствует схеме.
	ErrMalformedAnnotation = errors.New("malformed annotation")

	// ErrUnknownClass класс без цвета в палитре.
	ErrUnknownClass = errors.New("unknown class label")
)
