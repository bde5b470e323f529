package dataset

import "facemask/internal/infrastructure/imageio"

type options struct {
	indices   []int
	subset    bool
	transform imageio.Transform
	progress  func(done, total int)
}

// Option настраивает построение датасета.
type Option func(*options)

// WithIndices ограничивает датасет файлами на указанных позициях
// отсортированных списков. Порядок элементов всегда совпадает с исходным
// порядком файлов, а не с порядком переданных индексов.
func WithIndices(indices ...int) Option {
	return func(o *options) {
		o.indices = append([]int(nil), indices...)
		o.subset = true
	}
}

// WithTransform применяет преобразование к каждому декодированному изображению.
func WithTransform(t imageio.Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// WithProgress вызывает fn после загрузки каждого элемента.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
