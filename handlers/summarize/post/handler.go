package post

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/respond"
	"github.com/a-h/urlsummary/auth"
	"github.com/a-h/urlsummary/models"
	"github.com/a-h/urlsummary/pipeline"
)

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

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizePostRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}

	credential := req.APIKey
	if credential == "" {
		credential, _ = auth.GetCredential(r)
	}

	o := h.runner.Run(r.Context(), pipeline.Request{
		Credential: credential,
		URL:        req.URL,
	})
	respond.WithJSON(w, NewResponse(o), StatusCode(o))
}

func NewResponse(o pipeline.Outcome) (resp models.SummarizePostResponse) {
	resp.State = models.SummaryStateSuccess
	resp.URL = o.URL
	if o.URL != "" {
		resp.Source = o.Source.String()
	}
	resp.Summary = o.Summary
	resp.Documents = o.Documents
	resp.Words = o.Words
	resp.Message = o.Message()
	if o.Err != nil {
		resp.State = models.SummaryStateError
		resp.Error = o.Err.Error()
	}
	return resp
}

// StatusCode maps an outcome to an HTTP status.
func StatusCode(o pipeline.Outcome) int {
	switch {
	case o.Err == nil:
		return http.StatusOK
	case o.IsInputError():
		return http.StatusBadRequest
	case errors.Is(o.Err, pipeline.ErrNoContent):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}
