package container

import (
	app "facemask/internal/application"
	"facemask/internal/domain/port"
)

type Container struct {
	Dataset    port.Dataset
	Visualizer *app.VisualizerService
	Browse     *app.BrowseService
}

// New собирает сервисы приложения. dataset может быть nil, тогда просмотр недоступен.
func New(images port.ImageLoader, annotations port.AnnotationReader, renderer port.Renderer, sessions port.SessionRepository, dataset port.Dataset) *Container {
	visualizer := app.NewVisualizerService(images, annotations, renderer)

	c := &Container{
		Dataset:    dataset,
		Visualizer: visualizer,
	}
	if dataset != nil {
		c.Browse = app.NewBrowseService(sessions, dataset, visualizer)
	}
	return c
}
