package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"facemask/internal/infrastructure/voc"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newInspectCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect ANNOTATION",
		Short: "Print the objects of a Pascal-VOC annotation",
		Long: `Parse a Pascal-VOC annotation and print its objects.

With --full the filename and image size are printed as well; in that mode
<size> with <width> and <height> is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runInspect(cmd, args[0])
		},
	}

	cmd.Flags().Bool("full", false, "Include filename and image size")
	cmd.Flags().String("format", formatJSON, "Output format: json or yaml")
	return cmd
}

func (rt *runtime) runInspect(cmd *cobra.Command, path string) error {
	format := mustGetString(cmd, "format")
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown format %q", format)
	}

	reader := voc.NewReader(rt.fs)

	var v interface{}
	if mustGetBool(cmd, "full") {
		ann, err := reader.ReadAnnotation(path)
		if err != nil {
			return err
		}
		v = ann
	} else {
		objs, err := reader.ReadLabels(path)
		if err != nil {
			return err
		}
		v = objs
	}

	return writeFormatted(cmd.OutOrStdout(), format, v)
}

func writeFormatted(w io.Writer, format string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	if format == formatYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
