package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	app "facemask/internal/application"
)

func newStatsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the class distribution of a dataset",
		Long: `Load a dataset and print the number of images, objects and objects per class.

Examples:
  facemask stats --data data
  facemask stats --data data --indices 0,5,9 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runStats(cmd)
		},
	}

	cmd.Flags().String("data", "", "Dataset root with images/ and annotations/ (defaults to config)")
	cmd.Flags().IntSlice("indices", nil, "Load only these entries")
	cmd.Flags().String("format", "table", "Output format: table, json or yaml")
	return cmd
}

func (rt *runtime) runStats(cmd *cobra.Command) error {
	format := mustGetString(cmd, "format")
	if format != "table" && format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown format %q", format)
	}

	ds, err := rt.loadDataset(rt.dataDir(cmd), mustGetIntSlice(cmd, "indices"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	stats, err := app.Summarize(ds)
	if err != nil {
		return err
	}

	if format != "table" {
		return writeFormatted(cmd.OutOrStdout(), format, stats)
	}
	return writeStatsTable(cmd.OutOrStdout(), stats)
}

func writeStatsTable(out io.Writer, stats app.Stats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Images:\t%d\n", stats.Images)
	fmt.Fprintf(w, "Objects:\t%d\n", stats.Objects)
	for _, c := range stats.Classes {
		fmt.Fprintf(w, "  %s\t%d\n", c.Class, c.Count)
	}
	return w.Flush()
}
