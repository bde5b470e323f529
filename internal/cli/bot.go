package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"facemask/internal/api/telegram"
	"facemask/internal/container"
	"facemask/internal/infrastructure/imageio"
	"facemask/internal/infrastructure/render"
	"facemask/internal/infrastructure/storage"
	"facemask/internal/infrastructure/voc"
)

func newBotCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Browse a dataset from a Telegram chat",
		Long: `Load a dataset and run a Telegram bot that sends entries with bounding
boxes. Requires TELEGRAM_TOKEN (environment, .env or config file).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runBot(cmd)
		},
	}

	cmd.Flags().String("data", "", "Dataset root with images/ and annotations/ (defaults to config)")
	return cmd
}

func (rt *runtime) runBot(cmd *cobra.Command) error {
	if rt.cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is required")
	}

	c, err := rt.container(cmd)
	if err != nil {
		return err
	}

	bot, err := telegram.NewBot(rt.cfg.TelegramToken, c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("bot is running")
	return bot.Run(ctx)
}

// container загружает датасет и собирает сервисы для serve и bot.
func (rt *runtime) container(cmd *cobra.Command) (*container.Container, error) {
	renderer, err := render.New(rt.cfg.RenderBackend, rt.cfg.LineWidth)
	if err != nil {
		return nil, err
	}

	ds, err := rt.loadDataset(rt.dataDir(cmd), nil, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return container.New(
		imageio.NewLoader(rt.fs, nil),
		voc.NewReader(rt.fs),
		renderer,
		storage.NewMemorySessionRepository(),
		ds,
	), nil
}
