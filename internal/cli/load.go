package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"facemask/internal/infrastructure/dataset"
)

// loadDataset загружает датасет из root, показывая прогресс в progressOut.
func (rt *runtime) loadDataset(root string, indices []int, progressOut io.Writer) (*dataset.FaceMaskDataset, error) {
	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(progressOut),
				progressbar.OptionSetDescription("Loading dataset"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetItsString("images"),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}

	opts := []dataset.Option{dataset.WithProgress(progress)}
	if len(indices) > 0 {
		opts = append(opts, dataset.WithIndices(indices...))
	}

	ds, err := dataset.New(rt.fs, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", root, err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Info().Str("root", root).Int("entries", ds.Size()).Msg("dataset loaded")
	return ds, nil
}
