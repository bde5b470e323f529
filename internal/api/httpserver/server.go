// Package httpserver отдаёт элементы датасета с рамками по HTTP.
package httpserver

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	app "facemask/internal/application"
	"facemask/internal/container"
	"facemask/internal/domain/entity"
	"facemask/internal/infrastructure/display"
)

// Server HTTP-сервер просмотра датасета.
//
//	GET /stats                   сводка по классам (JSON)
//	GET /entries/{i}?box=&title= изображение с рамками (JPEG)
//	GET /entries/{i}/annotation  разметка элемента (JSON)
type Server struct {
	container *container.Container
	server    *fasthttp.Server
}

type annotationResponse struct {
	Index          int             `json:"index"`
	ImagePath      string          `json:"image_path"`
	AnnotationPath string          `json:"annotation_path"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Objects        []entity.Object `json:"objects"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New создаёт сервер; container должен содержать загруженный датасет.
func New(c *container.Container) (*Server, error) {
	if c.Dataset == nil {
		return nil, errors.New("dataset is not loaded")
	}
	s := &Server{container: c}
	s.server = &fasthttp.Server{
		Handler: s.Handle,
		Name:    "facemask",
	}
	return s, nil
}

// ListenAndServe блокируется до ошибки или Shutdown.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("serving")
	return s.server.ListenAndServe(addr)
}

// Shutdown останавливает приём соединений и ждёт активные запросы.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

// Handle обрабатывает один запрос.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	parts := strings.Split(strings.Trim(string(ctx.Path()), "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "stats":
		s.handleStats(ctx)
	case len(parts) == 2 && parts[0] == "entries":
		s.handleEntry(ctx, parts[1])
	case len(parts) == 3 && parts[0] == "entries" && parts[2] == "annotation":
		s.handleAnnotation(ctx, parts[1])
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, errors.New("not found"))
	}
}

func (s *Server) handleStats(ctx *fasthttp.RequestCtx) {
	stats, err := app.Summarize(s.container.Dataset)
	if err != nil {
		s.writeError(ctx, statusFor(err), err)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, stats)
}

func (s *Server) handleEntry(ctx *fasthttp.RequestCtx, rawIndex string) {
	entry, ok := s.lookup(ctx, rawIndex)
	if !ok {
		return
	}

	withBoxes := string(ctx.QueryArgs().Peek("box")) != "false"
	title := string(ctx.QueryArgs().Peek("title"))

	img, err := s.container.Visualizer.ComposeEntry(entry, title, withBoxes)
	if err != nil {
		s.writeError(ctx, statusFor(err), err)
		return
	}

	ctx.SetContentType("image/jpeg")
	if err := display.NewWriter(ctx, display.FormatJPEG).Show(context.Background(), img, title); err != nil {
		log.Error().Err(err).Int("index", entry.Index).Msg("encode entry")
		ctx.ResetBody()
		s.writeError(ctx, fasthttp.StatusInternalServerError, err)
	}
}

func (s *Server) handleAnnotation(ctx *fasthttp.RequestCtx, rawIndex string) {
	entry, ok := s.lookup(ctx, rawIndex)
	if !ok {
		return
	}

	b := entry.Image.Bounds()
	s.writeJSON(ctx, fasthttp.StatusOK, annotationResponse{
		Index:          entry.Index,
		ImagePath:      entry.ImagePath,
		AnnotationPath: entry.AnnotationPath,
		Width:          b.Dx(),
		Height:         b.Dy(),
		Objects:        entry.Objects,
	})
}

func (s *Server) lookup(ctx *fasthttp.RequestCtx, rawIndex string) (entity.Entry, bool) {
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, errors.New("index must be an integer"))
		return entity.Entry{}, false
	}
	entry, err := s.container.Dataset.Get(index)
	if err != nil {
		s.writeError(ctx, statusFor(err), err)
		return entity.Entry{}, false
	}
	return entry, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrIndexOutOfRange):
		return fasthttp.StatusNotFound
	case errors.Is(err, entity.ErrUnknownClass):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal response")
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, err error) {
	if status >= fasthttp.StatusInternalServerError {
		log.Error().Err(err).Str("path", string(ctx.Path())).Msg("request failed")
	}
	s.writeJSON(ctx, status, errorResponse{Error: err.Error()})
}
