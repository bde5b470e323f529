package port

import "facemask/internal/domain/entity"

// AnnotationReader интерфейс чтения файлов разметки
type AnnotationReader interface {
	// ReadLabels возвращает только объекты
	ReadLabels(path string) ([]entity.Object, error)

	// ReadAnnotation возвращает разметку вместе с именем файла и размером
	ReadAnnotation(path string) (*entity.Annotation, error)
}
