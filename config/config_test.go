package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FACEMASK_DATA_DIR", "TELEGRAM_TOKEN", "FACEMASK_HTTP_ADDR", "FACEMASK_RENDER_BACKEND", "LOG_LEVEL", "FACEMASK_LINE_WIDTH"} {
		t.Setenv(key, "")
	}
	// godotenv ищет .env в рабочем каталоге
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "facemask.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/masks\nline_width: 5\nrender_backend: gocv\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/masks", cfg.DataDir)
	require.Equal(t, 5, cfg.LineWidth)
	require.Equal(t, "gocv", cfg.RenderBackend)
	require.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)

	t.Setenv("FACEMASK_DATA_DIR", "/env/masks")
	t.Setenv("FACEMASK_LINE_WIDTH", "not-a-number")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "/env/masks", cfg.DataDir)
	require.Equal(t, 5, cfg.LineWidth)
	require.Equal(t, "123:abc", cfg.TelegramToken)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("line_width: [1, 2"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

// chdir меняет рабочий каталог на время теста (аналог t.Chdir из Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
