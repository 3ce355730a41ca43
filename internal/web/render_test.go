package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionai/internal/domain"
)

func renderIndex(t *testing.T, status int, view PageView) *httptest.ResponseRecorder {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	require.NoError(t, r.Render(rr, status, IndexPage, view))
	return rr
}

func TestRenderIdlePage(t *testing.T) {
	rr := renderIndex(t, http.StatusOK, NewPageView("", domain.Idle()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Vision AI</title>")
	assert.Contains(t, body, `placeholder="Describe the image you want to create..."`)
	assert.Contains(t, body, `data-state="idle"`)
	assert.Contains(t, body, `<figure class="result" id="result" hidden>`)
	assert.Contains(t, body, "All rights reserved by Vijay Dabhi")
	assert.NotContains(t, body, `role="alert"`)
	assert.NotContains(t, body, `src=""`)
}

func TestRenderSuccessPage(t *testing.T) {
	rr := renderIndex(t, http.StatusOK, NewPageView("a red fox in snow", domain.Succeeded("https://x/img.webp")))

	body := rr.Body.String()
	assert.Contains(t, body, `data-state="success"`)
	assert.Contains(t, body, `value="a red fox in snow"`)
	assert.Contains(t, body, `src="https://x/img.webp"`)
	assert.Contains(t, body, `href="https://x/img.webp"`)
	assert.Contains(t, body, "Click the image to view in full size")
	assert.NotContains(t, body, `<figure class="result" id="result" hidden>`)
}

func TestRenderErrorPage(t *testing.T) {
	rr := renderIndex(t, http.StatusBadRequest, NewPageView("", domain.Failed(MsgEnterPrompt)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `data-state="error"`)
	assert.Contains(t, body, "toast-destructive")
	assert.Contains(t, body, MsgEnterPrompt)
}

func TestRenderEscapesUserInput(t *testing.T) {
	rr := renderIndex(t, http.StatusOK, NewPageView(`"><script>alert(1)</script>`, domain.Succeeded("javascript:alert(1)")))

	body := rr.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.NotContains(t, body, `src="javascript:alert(1)"`)
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Render(httptest.NewRecorder(), http.StatusOK, "missing.html", nil))
}

func TestStaticHandlerServesAssets(t *testing.T) {
	h := StaticHandler()
	for _, name := range []string{"app.js", "app.css"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/"+name, nil))
		require.Equal(t, http.StatusOK, rr.Code, name)
		b, err := io.ReadAll(rr.Body)
		require.NoError(t, err)
		assert.NotEmpty(t, b, name)
	}
}

func TestScriptKeepsServerErrorState(t *testing.T) {
	rr := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	script := rr.Body.String()

	// the initial render must not overwrite the state rendered with a server toast
	assert.Contains(t, script, `error: card.getAttribute("data-state") === "error"`)
	assert.Contains(t, script, `return "error";`)
	assert.Contains(t, script, `toaster.querySelectorAll(".toast").forEach(dismissLater)`)

	page := renderIndex(t, http.StatusInternalServerError, NewPageView("p", domain.Failed(MsgTryAgain)))
	assert.Contains(t, page.Body.String(), `data-state="error"`)
	assert.Contains(t, page.Body.String(), `<div class="toast toast-destructive" role="alert">`)
}
