package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"visionai/internal/domain"
	"visionai/internal/imagegen"
	"visionai/internal/middleware"
	"visionai/internal/web"
)

// App carries the dependencies shared by every handler. It holds no per-request state.
type App struct {
	Logger    zerolog.Logger
	Generator imagegen.Generator
	Pages     *web.Renderer
}

func NewApp(logger zerolog.Logger, generator imagegen.Generator, pages *web.Renderer) *App {
	return &App{Logger: logger, Generator: generator, Pages: pages}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorResponse{Error: message})
}

// generate validates the prompt and performs the single provider call. The call
// is detached from the request context so a client hang-up does not abort it.
func (a *App) generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	if err := prompt.Validate(); err != nil {
		return "", err
	}
	rid := middleware.RequestIDFromContext(ctx)
	url, err := a.Generator.Generate(context.WithoutCancel(ctx), prompt.String())
	if err != nil {
		if !errors.Is(err, domain.ErrProviderFailure) {
			err = errors.Join(domain.ErrProviderFailure, err)
		}
		a.Logger.Error().Err(err).Str("request_id", rid).Msg("error generating image")
		return "", err
	}
	a.Logger.Info().Str("request_id", rid).Str("image_url", url).Msg("image generated")
	return url, nil
}

// Health reports liveness. It never touches the provider.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
