package app

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"facemask/internal/domain/entity"
	"facemask/internal/infrastructure/imageio"
	"facemask/internal/infrastructure/voc"
)

// recordingRenderer запоминает, что его попросили нарисовать.
type recordingRenderer struct {
	overlays []entity.Overlay
	title    string
	calls    int
}

func (r *recordingRenderer) Render(img image.Image, overlays []entity.Overlay, title string) (image.Image, error) {
	r.overlays = overlays
	r.title = title
	r.calls++
	return img, nil
}

type recordingDisplay struct {
	shown []image.Image
	title string
}

func (d *recordingDisplay) Show(ctx context.Context, img image.Image, title string) error {
	d.shown = append(d.shown, img)
	d.title = title
	return nil
}

type sliceDataset []entity.Entry

func (d sliceDataset) Size() int { return len(d) }

func (d sliceDataset) Get(index int) (entity.Entry, error) {
	if index < 0 || index >= len(d) {
		return entity.Entry{}, fmt.Errorf("%w: %d", entity.ErrIndexOutOfRange, index)
	}
	return d[index], nil
}

func annotationXML(objs ...entity.Object) string {
	var b bytes.Buffer
	b.WriteString("<annotation><filename>a.png</filename><size><width>20</width><height>20</height></size>")
	for _, o := range objs {
		fmt.Fprintf(&b, "<object><name>%s</name><bndbox><xmin>%d</xmin><ymin>%d</ymin><xmax>%d</xmax><ymax>%d</ymax></bndbox></object>",
			o.Class, o.Box.XMin, o.Box.YMin, o.Box.XMax, o.Box.YMax)
	}
	b.WriteString("</annotation>")
	return b.String()
}

func newVisualizerFixture(t *testing.T, objs ...entity.Object) (*VisualizerService, *recordingRenderer) {
	t.Helper()
	fs := afero.NewMemMapFs()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 20))))
	require.NoError(t, afero.WriteFile(fs, "/data/images/a.png", buf.Bytes(), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/annotations/a.xml", []byte(annotationXML(objs...)), 0o644))

	renderer := &recordingRenderer{}
	return NewVisualizerService(imageio.NewLoader(fs, nil), voc.NewReader(fs), renderer), renderer
}

func entryWith(index int, objs ...entity.Object) entity.Entry {
	return entity.Entry{
		Index:     index,
		ImagePath: fmt.Sprintf("/data/images/img%d.png", index),
		Image:     image.NewRGBA(image.Rect(0, 0, 4, 4)),
		Objects:   objs,
	}
}

func obj(class entity.ClassLabel) entity.Object {
	return entity.Object{Class: class, Box: entity.BoundingBox{XMin: 1, YMin: 2, XMax: 3, YMax: 4}}
}
