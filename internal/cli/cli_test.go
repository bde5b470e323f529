package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	app "facemask/internal/application"
	"facemask/internal/domain/entity"
)

const twoFaces = `<annotation>
	<filename>img0.png</filename>
	<size><width>40</width><height>30</height><depth>3</depth></size>
	<object><name>with_mask</name><bndbox><xmin>2</xmin><ymin>2</ymin><xmax>12</xmax><ymax>12</ymax></bndbox></object>
	<object><name>without_mask</name><bndbox><xmin>20</xmin><ymin>5</ymin><xmax>30</xmax><ymax>20</ymax></bndbox></object>
</annotation>`

func writePNG(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func newFixture(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "/data/images/img0.png")
	writePNG(t, fs, "/data/images/img1.png")
	require.NoError(t, afero.WriteFile(fs, "/data/annotations/img0.xml", []byte(twoFaces), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/annotations/img1.xml", []byte(twoFaces), 0o644))
	return fs
}

// run выполняет команду в изолированном каталоге, чтобы .env не подхватывался.
func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(fs)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect_JSON(t *testing.T) {
	fs := newFixture(t)

	out, err := run(t, fs, "inspect", "/data/annotations/img0.xml")
	require.NoError(t, err)

	var objs []entity.Object
	require.NoError(t, json.Unmarshal([]byte(out), &objs))
	require.Len(t, objs, 2)
	require.Equal(t, entity.ClassWithoutMask, objs[1].Class)
	require.Equal(t, entity.BoundingBox{XMin: 20, YMin: 5, XMax: 30, YMax: 20}, objs[1].Box)
}

func TestInspect_FullYAML(t *testing.T) {
	fs := newFixture(t)

	out, err := run(t, fs, "inspect", "/data/annotations/img0.xml", "--full", "--format", "yaml")
	require.NoError(t, err)

	var ann entity.Annotation
	require.NoError(t, yaml.Unmarshal([]byte(out), &ann))
	require.Equal(t, "img0.png", ann.Filename)
	require.Equal(t, 40, ann.Width)
	require.Equal(t, 30, ann.Height)
	require.Len(t, ann.Objects, 2)
}

func TestInspect_Errors(t *testing.T) {
	fs := newFixture(t)
	require.NoError(t, afero.WriteFile(fs, "/bad.xml", []byte("<annotation><object><name>x</name></object></annotation>"), 0o644))

	_, err := run(t, fs, "inspect", "/bad.xml")
	require.ErrorIs(t, err, entity.ErrMalformedAnnotation)

	_, err = run(t, fs, "inspect", "/data/annotations/img0.xml", "--format", "toml")
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	fs := newFixture(t)

	out, err := run(t, fs, "stats", "--data", "/data", "--format", "json")
	require.NoError(t, err)

	var stats app.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Equal(t, 2, stats.Images)
	require.Equal(t, 4, stats.Objects)

	out, err = run(t, fs, "stats", "--data", "/data", "--indices", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Images:")
	require.Contains(t, out, "with_mask")
}

func TestStats_InvalidDataset(t *testing.T) {
	fs := newFixture(t)

	_, err := run(t, fs, "stats", "--data", "/missing")
	require.ErrorIs(t, err, entity.ErrMissingDirectory)

	_, err = run(t, fs, "stats", "--data", "/data", "--indices", "0,0")
	require.ErrorIs(t, err, entity.ErrInvalidSubset)
}

func TestShow_WritesFile(t *testing.T) {
	fs := newFixture(t)

	_, err := run(t, fs, "show", "/data/images/img0.png", "--out", "/out/img0.png")
	require.NoError(t, err)

	f, err := fs.Open("/out/img0.png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

	// Левая сторона зелёной рамки with_mask
	r, g, b, _ := img.At(2, 7).RGBA()
	require.Greater(t, g, r)
	require.Greater(t, g, b)
}

func TestShow_RequiresTarget(t *testing.T) {
	fs := newFixture(t)

	_, err := run(t, fs, "show", "/data/images/img0.png")
	require.Error(t, err)

	_, err = run(t, fs, "show", "/data/images/img0.png", "--out", "/x.png", "--backend", "nope")
	require.Error(t, err)
}

func TestAnnotationFor(t *testing.T) {
	tests := []struct {
		image string
		want  string
	}{
		{"/data/images/img0.png", "/data/annotations/img0.xml"},
		{"/tmp/photo.jpeg", "/tmp/photo.xml"},
		{"images/a.b.png", "annotations/a.b.xml"},
	}
	for _, tt := range tests {
		require.Equal(t, filepath.FromSlash(tt.want), annotationFor(filepath.FromSlash(tt.image)))
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	require.Contains(t, out, "facemask dev")
}

// chdir меняет рабочий каталог на время теста (аналог t.Chdir из Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
