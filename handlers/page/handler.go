// Package page serves the HTML form used to summarize a URL from a browser.
package page

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/urlsummary/pipeline"
	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"
)

//go:embed page.mustache
var pageTemplateText string

var pageTemplate = mustParse(pageTemplateText)

func mustParse(s string) *mustache.Template {
	t, err := mustache.ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("page: failed to parse template: %v", err))
	}
	return t
}

type Runner interface {
	Run(ctx context.Context, req pipeline.Request, observers ...pipeline.Observer) pipeline.Outcome
}

func New(log *slog.Logger, runner Runner) Handler {
	return Handler{
		log:    log,
		runner: runner,
	}
}

type Handler struct {
	log    *slog.Logger
	runner Runner
}

// View is the data rendered into the page. The credential is never part of it.
type View struct {
	URL       string
	Submitted bool
	Success   bool
	Message   string
	Summary   string
	Details   string
}

func NewView(url string, o pipeline.Outcome) View {
	v := View{
		URL:       url,
		Submitted: true,
		Success:   o.OK(),
		Message:   o.Message(),
		Summary:   o.Summary,
	}
	if o.OK() {
		v.Details = fmt.Sprintf("Summarized %s words from %s (%s).", humanize.Comma(int64(o.Words)), o.URL, o.Source)
	}
	return v
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, View{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			h.log.Error("failed to parse form", slog.Any("error", err))
			http.Error(w, "failed to parse form", http.StatusBadRequest)
			return
		}
		url := r.PostForm.Get("url")
		o := h.runner.Run(r.Context(), pipeline.Request{
			Credential: r.PostForm.Get("apiKey"),
			URL:        url,
		})
		h.render(w, NewView(url, o))
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h Handler) render(w http.ResponseWriter, v View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Render(w, v); err != nil {
		h.log.Error("failed to render page", slog.Any("error", err))
	}
}

func Render(w io.Writer, v View) error {
	return pageTemplate.FRender(w, v)
}
