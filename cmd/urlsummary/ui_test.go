package main

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/urlsummary/pipeline"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeRunner struct {
	requests []pipeline.Request
	outcome  pipeline.Outcome
}

func (r *fakeRunner) Run(ctx context.Context, req pipeline.Request, observers ...pipeline.Observer) pipeline.Outcome {
	r.requests = append(r.requests, req)
	for _, s := range []pipeline.State{pipeline.StateIdle, pipeline.StateValidating, r.outcome.State} {
		for _, observe := range observers {
			observe(s)
		}
	}
	return r.outcome
}

// collect runs the command, and any commands it batches, returning the messages.
func collect(cmd tea.Cmd) (msgs []tea.Msg) {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return append(msgs, msg)
}

func submitAndComplete(t *testing.T, m uiModel) uiModel {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(uiModel)
	if !m.running {
		t.Fatal("expected the model to be running after submitting")
	}
	for _, msg := range collect(cmd) {
		if _, ok := msg.(outcomeMsg); !ok {
			continue
		}
		updated, _ = m.Update(msg)
		m = updated.(uiModel)
	}
	if m.running {
		t.Fatal("expected the run to be complete")
	}
	return m
}

func TestUISubmitSuccess(t *testing.T) {
	r := &fakeRunner{
		outcome: pipeline.Outcome{
			State:   pipeline.StateSuccess,
			URL:     "https://example.com/article",
			Summary: "SUMMARY: the article",
			Words:   1234,
		},
	}
	m := newUIModel(context.Background(), r, "abc", "https://example.com/article")
	m.setFocus(focusButton)

	m = submitAndComplete(t, m)

	if len(r.requests) != 1 {
		t.Fatalf("expected 1 run, got %d", len(r.requests))
	}
	if r.requests[0] != (pipeline.Request{Credential: "abc", URL: "https://example.com/article"}) {
		t.Errorf("unexpected request: %+v", r.requests[0])
	}
	view := m.View()
	for _, expected := range []string{pipeline.SuccessMessage, "SUMMARY: the article", "1,234 words"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q", expected)
		}
	}
	if strings.Contains(view, "abc") {
		t.Error("expected the API key to be masked")
	}
}

func TestUISubmitError(t *testing.T) {
	r := &fakeRunner{
		outcome: pipeline.Outcome{
			State: pipeline.StateError,
			Err:   &pipeline.StageError{Stage: pipeline.StateLoading, Err: pipeline.ErrNoContent},
		},
	}
	m := newUIModel(context.Background(), r, "abc", "https://example.com/empty")
	m.setFocus(focusURL)

	m = submitAndComplete(t, m)

	if !strings.Contains(m.View(), pipeline.NoContentMessage) {
		t.Errorf("expected the no content message, got %s", m.View())
	}
}

func TestUIEnterOnAPIKeyMovesFocus(t *testing.T) {
	r := &fakeRunner{}
	m := newUIModel(context.Background(), r, "", "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(uiModel)
	if m.focus != focusURL {
		t.Errorf("expected focus to move to the URL, got %d", m.focus)
	}
	if m.running || len(r.requests) != 0 {
		t.Error("expected no run to start")
	}
}

func TestUIIgnoresInputWhileRunning(t *testing.T) {
	r := &fakeRunner{outcome: pipeline.Outcome{State: pipeline.StateSuccess}}
	m := newUIModel(context.Background(), r, "abc", "https://example.com")
	m.setFocus(focusURL)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(uiModel)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(uiModel)
	if cmd != nil {
		t.Error("expected no command while running")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = updated.(uiModel)
	if m.inputs[focusURL].Value() != "https://example.com" {
		t.Errorf("expected the URL not to change while running, got %q", m.inputs[focusURL].Value())
	}
}

func TestUIIgnoresStaleStates(t *testing.T) {
	m := newUIModel(context.Background(), &fakeRunner{}, "", "")
	m.run = 2
	m.running = true
	m.state = pipeline.StateLoading
	updated, _ := m.Update(stateMsg{run: 1, state: pipeline.StateError})
	m = updated.(uiModel)
	if m.state != pipeline.StateLoading {
		t.Errorf("expected state from an earlier run to be ignored, got %v", m.state)
	}
}
