package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"visionai/internal/domain"
	"visionai/internal/web"
)

// Index renders the empty generator page.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.renderPage(w, http.StatusOK, web.NewPageView("", domain.Idle()))
}

// Submit is the form fallback for browsers without scripts. It runs the same
// generation path as the JSON API and renders the outcome server-side.
func (a *App) Submit(w http.ResponseWriter, r *http.Request) {
	// ParseForm caps urlencoded bodies at 10MB; prompts have no length cap, so
	// the body is parsed directly.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.Logger.Debug().Err(err).Msg("submit: unreadable body")
		a.renderPage(w, http.StatusBadRequest, web.NewPageView("", domain.Failed(web.MsgEnterPrompt)))
		return
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		a.Logger.Debug().Err(err).Msg("submit: invalid form")
		a.renderPage(w, http.StatusBadRequest, web.NewPageView("", domain.Failed(web.MsgEnterPrompt)))
		return
	}
	prompt := form.Get("prompt")

	imageURL, err := a.generate(r.Context(), domain.Prompt(prompt))
	switch {
	case err == nil:
		a.renderPage(w, http.StatusOK, web.NewPageView(prompt, domain.Succeeded(imageURL)))
	case errors.Is(err, domain.ErrInvalidPrompt):
		a.renderPage(w, http.StatusBadRequest, web.NewPageView(prompt, domain.Failed(web.MsgEnterPrompt)))
	default:
		a.renderPage(w, http.StatusInternalServerError, web.NewPageView(prompt, domain.Failed(web.MsgTryAgain)))
	}
}

func (a *App) renderPage(w http.ResponseWriter, status int, view web.PageView) {
	if err := a.Pages.Render(w, status, web.IndexPage, view); err != nil {
		a.Logger.Error().Err(err).Msg("render page failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
