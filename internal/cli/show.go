package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	app "facemask/internal/application"
	"facemask/internal/domain/port"
	"facemask/internal/infrastructure/dataset"
	"facemask/internal/infrastructure/display"
	"facemask/internal/infrastructure/imageio"
	"facemask/internal/infrastructure/render"
	"facemask/internal/infrastructure/voc"
)

func newShowCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show IMAGE [ANNOTATION]",
		Short: "Draw annotated bounding boxes over an image",
		Long: `Draw the bounding boxes of an annotation over its image and send the
result to a file or a desktop window.

When ANNOTATION is omitted it is looked up next to the image: for
<root>/images/x.png the annotation is <root>/annotations/x.xml.

Examples:
  facemask show data/images/maksssksksss0.png --out out.png
  facemask show img.jpg img.xml --title "frame 12" --window`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runShow(cmd, args)
		},
	}

	cmd.Flags().String("title", "", "Title drawn above the image")
	cmd.Flags().Bool("boxes", true, "Draw bounding boxes")
	cmd.Flags().String("out", "", "Write the result to this file (.png or .jpg)")
	cmd.Flags().Bool("window", false, "Show the result in a window (fyne builds only)")
	cmd.Flags().String("backend", "", "Render backend: canvas or gocv (defaults to config)")
	cmd.Flags().Bool("grayscale", false, "Convert the image to grayscale before drawing")
	return cmd
}

func (rt *runtime) runShow(cmd *cobra.Command, args []string) error {
	out := mustGetString(cmd, "out")
	window := mustGetBool(cmd, "window")
	withBoxes := mustGetBool(cmd, "boxes")

	var target port.Display
	switch {
	case window && out != "":
		return errors.New("use either --out or --window, not both")
	case window:
		target = display.NewWindow()
	case out != "":
		target = display.NewFile(rt.fs, out)
	default:
		return errors.New("either --out or --window is required")
	}

	backend := mustGetString(cmd, "backend")
	if backend == "" {
		backend = rt.cfg.RenderBackend
	}
	renderer, err := render.New(backend, rt.cfg.LineWidth)
	if err != nil {
		return err
	}

	var transform imageio.Transform
	if mustGetBool(cmd, "grayscale") {
		transform = imageio.Grayscale
	}

	req := app.ShowRequest{
		ImagePath: args[0],
		Title:     mustGetString(cmd, "title"),
		WithBoxes: withBoxes,
	}
	if withBoxes {
		if len(args) == 2 {
			req.AnnotationPath = args[1]
		} else {
			req.AnnotationPath = annotationFor(args[0])
		}
	}

	visualizer := app.NewVisualizerService(imageio.NewLoader(rt.fs, transform), voc.NewReader(rt.fs), renderer)
	return visualizer.Show(cmd.Context(), req, target)
}

// annotationFor выводит путь разметки из пути изображения.
func annotationFor(imagePath string) string {
	dir := filepath.Dir(imagePath)
	name := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath)) + ".xml"
	if filepath.Base(dir) == dataset.ImagesDir {
		return filepath.Join(filepath.Dir(dir), dataset.AnnotationsDir, name)
	}
	return filepath.Join(dir, name)
}
