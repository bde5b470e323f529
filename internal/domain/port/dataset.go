package port

import "facemask/internal/domain/entity"

// Dataset интерфейс индексируемого датасета
type Dataset interface {
	// Size возвращает число элементов
	Size() int

	// Get возвращает элемент по плотному индексу
	Get(index int) (entity.Entry, error)
}
