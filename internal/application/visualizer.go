package app

import (
	"context"
	"errors"
	"image"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

// VisualizerService рисует изображения с рамками разметки.
type VisualizerService struct {
	images      port.ImageLoader
	annotations port.AnnotationReader
	renderer    port.Renderer
}

// ShowRequest что и как показать.
type ShowRequest struct {
	ImagePath      string
	AnnotationPath string // может быть пустым, тогда рамок нет
	Title          string
	WithBoxes      bool
}

// NewVisualizerService создаёт сервис визуализации.
func NewVisualizerService(images port.ImageLoader, annotations port.AnnotationReader, renderer port.Renderer) *VisualizerService {
	return &VisualizerService{
		images:      images,
		annotations: annotations,
		renderer:    renderer,
	}
}

// Show рисует изображение и передаёт его в display. При ошибке ничего не показывается.
func (s *VisualizerService) Show(ctx context.Context, req ShowRequest, display port.Display) error {
	if display == nil {
		return errors.New("display is not configured")
	}

	img, err := s.Compose(ctx, req)
	if err != nil {
		return err
	}
	return display.Show(ctx, img, req.Title)
}

// Compose загружает изображение и разметку и возвращает готовую картинку.
func (s *VisualizerService) Compose(ctx context.Context, req ShowRequest) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := s.images.Load(req.ImagePath)
	if err != nil {
		return nil, err
	}

	var objs []entity.Object
	if req.WithBoxes && req.AnnotationPath != "" {
		objs, err = s.annotations.ReadLabels(req.AnnotationPath)
		if err != nil {
			return nil, err
		}
	}

	return s.render(img, objs, req.Title)
}

// ComposeEntry рисует уже загруженный элемент датасета.
func (s *VisualizerService) ComposeEntry(entry entity.Entry, title string, withBoxes bool) (image.Image, error) {
	var objs []entity.Object
	if withBoxes {
		objs = entry.Objects
	}
	return s.render(entry.Image, objs, title)
}

func (s *VisualizerService) render(img image.Image, objs []entity.Object, title string) (image.Image, error) {
	overlays, err := Overlays(objs)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(img, overlays, title)
}
