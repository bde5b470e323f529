package app

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"facemask/internal/domain/entity"
)

func TestColorFor(t *testing.T) {
	c, err := ColorFor(entity.ClassWithMask)
	require.NoError(t, err)
	require.Equal(t, color.RGBA{G: 0x80, A: 0xff}, c)

	c, err = ColorFor(entity.ClassMaskWearedIncorrect)
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 0xbf, G: 0xbf, A: 0xff}, c)

	c, err = ColorFor(entity.ClassWithoutMask)
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)

	_, err = ColorFor("helmet")
	require.ErrorIs(t, err, entity.ErrUnknownClass)
}

func TestVisualizerService_ShowWithBoxes(t *testing.T) {
	svc, renderer := newVisualizerFixture(t,
		entity.Object{Class: entity.ClassWithMask, Box: entity.BoundingBox{XMin: 10, YMin: 10, XMax: 15, YMax: 15}},
		entity.Object{Class: entity.ClassWithoutMask, Box: entity.BoundingBox{XMin: 1, YMin: 1, XMax: 5, YMax: 5}},
	)
	display := &recordingDisplay{}

	err := svc.Show(context.Background(), ShowRequest{
		ImagePath:      "/data/images/a.png",
		AnnotationPath: "/data/annotations/a.xml",
		Title:          "sample",
		WithBoxes:      true,
	}, display)
	require.NoError(t, err)

	require.Len(t, display.shown, 1)
	require.Equal(t, "sample", display.title)
	require.Equal(t, "sample", renderer.title)
	require.Len(t, renderer.overlays, 2)
	require.Equal(t, entity.ClassWithMask, renderer.overlays[0].Class)
	require.Equal(t, entity.BoundingBox{XMin: 10, YMin: 10, XMax: 15, YMax: 15}, renderer.overlays[0].Box)
	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, renderer.overlays[1].Color)
}

func TestVisualizerService_WithoutBoxes(t *testing.T) {
	svc, renderer := newVisualizerFixture(t, obj(entity.ClassWithMask))
	display := &recordingDisplay{}

	err := svc.Show(context.Background(), ShowRequest{
		ImagePath:      "/data/images/a.png",
		AnnotationPath: "/data/annotations/a.xml",
	}, display)
	require.NoError(t, err)
	require.Empty(t, renderer.overlays)

	// Без пути к разметке рамок нет даже с WithBoxes
	err = svc.Show(context.Background(), ShowRequest{ImagePath: "/data/images/a.png", WithBoxes: true}, display)
	require.NoError(t, err)
	require.Empty(t, renderer.overlays)
	require.Len(t, display.shown, 2)
}

func TestVisualizerService_UnknownClassFails(t *testing.T) {
	svc, renderer := newVisualizerFixture(t, obj(entity.ClassWithMask), obj("helmet"))
	display := &recordingDisplay{}

	err := svc.Show(context.Background(), ShowRequest{
		ImagePath:      "/data/images/a.png",
		AnnotationPath: "/data/annotations/a.xml",
		WithBoxes:      true,
	}, display)
	require.ErrorIs(t, err, entity.ErrUnknownClass)
	require.Empty(t, display.shown)
	require.Zero(t, renderer.calls)
}

func TestVisualizerService_Errors(t *testing.T) {
	svc, _ := newVisualizerFixture(t)

	err := svc.Show(context.Background(), ShowRequest{ImagePath: "/data/images/a.png"}, nil)
	require.Error(t, err)

	err = svc.Show(context.Background(), ShowRequest{ImagePath: "/data/images/missing.png"}, &recordingDisplay{})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Compose(ctx, ShowRequest{ImagePath: "/data/images/a.png"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestVisualizerService_ComposeEntry(t *testing.T) {
	svc, renderer := newVisualizerFixture(t)
	entry := entryWith(0, obj(entity.ClassMaskWearedIncorrect))

	_, err := svc.ComposeEntry(entry, "t", true)
	require.NoError(t, err)
	require.Len(t, renderer.overlays, 1)

	_, err = svc.ComposeEntry(entry, "t", false)
	require.NoError(t, err)
	require.Empty(t, renderer.overlays)
}
