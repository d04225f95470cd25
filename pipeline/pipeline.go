// Package pipeline runs the validate, load and summarize stages for one request.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/a-h/urlsummary/loader"
	"github.com/a-h/urlsummary/summarize"
	"github.com/a-h/urlsummary/validate"
)

// ErrNoContent is returned when the URL was fetched, but contained nothing to summarize.
var ErrNoContent = errors.New("no content")

type State int

const (
	StateIdle State = iota
	StateValidating
	StateLoading
	StateSummarizing
	StateSuccess
	StateError
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StateValidating:  "validating",
	StateLoading:     "loading",
	StateSummarizing: "summarizing",
	StateSuccess:     "success",
	StateError:       "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Request is the input to a single run. The credential is only held for the duration of the run.
type Request struct {
	Credential string
	URL        string
}

// StageError records the stage that failed.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Observer is notified of each state the run passes through.
type Observer func(s State)

func New(log *slog.Logger, l loader.ContentLoader, models summarize.ModelFactory) *Pipeline {
	return &Pipeline{
		log:    log,
		loader: l,
		models: models,
	}
}

type Pipeline struct {
	log    *slog.Logger
	loader loader.ContentLoader
	models summarize.ModelFactory
}

// Run never returns a partial result: the outcome is either StateSuccess with a
// summary, or StateError with the error that stopped the run.
func (p *Pipeline) Run(ctx context.Context, req Request, observers ...Observer) (o Outcome) {
	transition := func(s State) {
		o.State = s
		for _, observe := range observers {
			observe(s)
		}
	}
	fail := func(stage State, err error) Outcome {
		o.Err = &StageError{Stage: stage, Err: err}
		p.log.Info("summary failed", slog.String("url", o.URL), slog.String("stage", stage.String()), slog.Any("error", err))
		transition(StateError)
		return o
	}

	transition(StateIdle)
	transition(StateValidating)
	u, err := validate.Input(req.Credential, req.URL)
	if err != nil {
		return fail(StateValidating, err)
	}
	o.URL = u.String()
	o.Source = loader.Select(u)

	transition(StateLoading)
	p.log.Info("loading content", slog.String("url", o.URL), slog.String("source", o.Source.String()))
	docs, err := p.loader.Load(ctx, o.URL)
	if err != nil {
		return fail(StateLoading, err)
	}
	if len(docs) == 0 {
		return fail(StateLoading, ErrNoContent)
	}
	o.Documents = len(docs)
	o.Words = loader.WordCount(docs)

	transition(StateSummarizing)
	p.log.Info("summarizing content", slog.String("url", o.URL), slog.Int("documents", o.Documents), slog.Int("words", o.Words))
	llm, err := p.models.NewModel(req.Credential)
	if err != nil {
		return fail(StateSummarizing, err)
	}
	o.Summary, err = summarize.New(llm).Summarize(ctx, docs)
	if err != nil {
		return fail(StateSummarizing, err)
	}
	transition(StateSuccess)
	return o
}
