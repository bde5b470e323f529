package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir   = "data"
	DefaultHTTPAddr  = "0.0.0.0:8093"
	DefaultBackend   = "canvas"
	DefaultLogLevel  = "info"
	DefaultLineWidth = 2
)

type Config struct {
	DataDir       string `yaml:"data_dir"`       // корень датасета с images/ и annotations/
	TelegramToken string `yaml:"telegram_token"` // токен бота, нужен только для команды bot
	HTTPAddr      string `yaml:"http_addr"`      // адрес для команды serve
	RenderBackend string `yaml:"render_backend"` // canvas или gocv
	LineWidth     int    `yaml:"line_width"`     // толщина рамок в пикселях
	LogLevel      string `yaml:"log_level"`      // уровень zerolog
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		DataDir:       DefaultDataDir,
		HTTPAddr:      DefaultHTTPAddr,
		RenderBackend: DefaultBackend,
		LineWidth:     DefaultLineWidth,
		LogLevel:      DefaultLogLevel,
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML-файл path
// (если задан), затем переменные окружения и .env.
func Load(path string) (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	envString(&cfg.DataDir, "FACEMASK_DATA_DIR")
	envString(&cfg.TelegramToken, "TELEGRAM_TOKEN")
	envString(&cfg.HTTPAddr, "FACEMASK_HTTP_ADDR")
	envString(&cfg.RenderBackend, "FACEMASK_RENDER_BACKEND")
	envString(&cfg.LogLevel, "LOG_LEVEL")
	cfg.LineWidth = envInt("FACEMASK_LINE_WIDTH", cfg.LineWidth)

	return cfg, nil
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// envInt читает положительное целое из окружения, иначе возвращает defaultVal.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}
