// Package cli собирает команды facemask на cobra.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"facemask/config"
)

// runtime общее состояние команд: файловая система и загруженная конфигурация.
type runtime struct {
	fs         afero.Fs
	cfg        *config.Config
	configPath string
	logLevel   string
}

// NewRootCmd строит дерево команд поверх fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	rt := &runtime{fs: fs}

	root := &cobra.Command{
		Use:   "facemask",
		Short: "Face mask dataset viewer",
		Long: `facemask loads a Pascal-VOC face mask dataset (images/ + annotations/),
draws class-colored bounding boxes and serves entries over the CLI,
HTTP and a Telegram bot.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newShowCmd(rt),
		newInspectCmd(rt),
		newStatsCmd(rt),
		newServeCmd(rt),
		newBotCmd(rt),
		newVersionCmd(),
	)
	return root
}

// Execute запускает CLI на реальной файловой системе.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (rt *runtime) init(logOut io.Writer) error {
	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	if rt.logLevel != "" {
		cfg.LogLevel = rt.logLevel
	}
	rt.cfg = cfg

	return setupLogging(cfg.LogLevel, logOut)
}

func setupLogging(level string, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	return nil
}

// dataDir возвращает значение --data или каталог из конфигурации.
func (rt *runtime) dataDir(cmd *cobra.Command) string {
	if dir := mustGetString(cmd, "data"); dir != "" {
		return dir
	}
	return rt.cfg.DataDir
}
