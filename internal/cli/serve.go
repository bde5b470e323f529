package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"facemask/internal/api/httpserver"
)

func newServeCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dataset entries over HTTP",
		Long: `Load a dataset and serve it over HTTP:

  GET /stats                    class distribution (JSON)
  GET /entries/{i}?box=&title=  entry with bounding boxes (JPEG)
  GET /entries/{i}/annotation   entry objects (JSON)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runServe(cmd)
		},
	}

	cmd.Flags().String("data", "", "Dataset root with images/ and annotations/ (defaults to config)")
	cmd.Flags().String("addr", "", "Address to listen on (defaults to config)")
	return cmd
}

func (rt *runtime) runServe(cmd *cobra.Command) error {
	addr := mustGetString(cmd, "addr")
	if addr == "" {
		addr = rt.cfg.HTTPAddr
	}

	c, err := rt.container(cmd)
	if err != nil {
		return err
	}
	server, err := httpserver.New(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	return server.Shutdown()
}
