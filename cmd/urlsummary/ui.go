package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-h/urlsummary/pipeline"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"
)

type UICommand struct {
	Pipeline PipelineFlags `embed:""`
	APIKey   string        `help:"The API key of the model provider, used to prefill the form." env:"API_KEY" default:""`
	URL      string        `help:"The URL used to prefill the form." default:""`
	LogFile  string        `help:"Write logs to this file. The terminal is used by the form, so logs are discarded if empty." env:"LOG_FILE" default:""`
	LogLevel string        `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c UICommand) Run(ctx context.Context) (err error) {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := newLogger(w, c.LogLevel)
	p := c.Pipeline.newPipeline(log)

	prog := tea.NewProgram(newUIModel(ctx, p, c.APIKey, c.URL), tea.WithAltScreen())
	if _, err = prog.Run(); err != nil {
		return err
	}
	return nil
}

type runner interface {
	Run(ctx context.Context, req pipeline.Request, observers ...pipeline.Observer) pipeline.Outcome
}

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Foreground  = lipgloss.Color("#f8f8f2")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Green       = lipgloss.Color("#50fa7b")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	headerStyle        = lipgloss.NewStyle().Background(CurrentLine).Foreground(Purple).Bold(true).Padding(0, 1)
	labelStyle         = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	buttonStyle        = lipgloss.NewStyle().Foreground(Foreground).Background(Comment).Padding(0, 2)
	focusedButtonStyle = buttonStyle.Background(Purple).Bold(true)
	statusStyle        = lipgloss.NewStyle().Foreground(Cyan)
	successStyle       = lipgloss.NewStyle().Foreground(Green).Bold(true)
	errorStyle         = lipgloss.NewStyle().Foreground(Red).Bold(true)
	helpStyle          = lipgloss.NewStyle().Foreground(Comment)
	summaryStyle       = lipgloss.NewStyle().Background(Background).Foreground(Foreground).Padding(1)
)

const (
	focusAPIKey = iota
	focusURL
	focusButton
)

// Lines used by everything except the viewport.
const formHeight = 12

type stateMsg struct {
	run   int
	state pipeline.State
}

type outcomeMsg struct {
	run     int
	outcome pipeline.Outcome
}

type uiModel struct {
	ctx    context.Context
	runner runner

	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	viewport viewport.Model

	// The current run, if running is true, otherwise the last one.
	run     int
	running bool
	state   pipeline.State
	states  chan pipeline.State
}

func newUIModel(ctx context.Context, r runner, apiKey, url string) uiModel {
	key := textinput.New()
	key.Placeholder = "API key"
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'
	key.Prompt = "┃ "
	key.SetValue(apiKey)
	key.Focus()

	u := textinput.New()
	u.Placeholder = "https://example.com"
	u.Prompt = "┃ "
	u.SetValue(url)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusStyle

	return uiModel{
		ctx:      ctx,
		runner:   r,
		inputs:   []textinput.Model{key, u},
		spinner:  s,
		viewport: viewport.New(80, 20),
	}
}

func (m uiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *uiModel) setFocus(i int) tea.Cmd {
	m.focus = (i + focusButton + 1) % (focusButton + 1)
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m uiModel) submit() (tea.Model, tea.Cmd) {
	m.run++
	m.running = true
	m.state = pipeline.StateIdle
	m.states = make(chan pipeline.State, 8)
	m.viewport.SetContent("")

	req := pipeline.Request{
		Credential: m.inputs[focusAPIKey].Value(),
		URL:        m.inputs[focusURL].Value(),
	}
	ctx, r, run, states := m.ctx, m.runner, m.run, m.states
	summarize := func() tea.Msg {
		defer close(states)
		o := r.Run(ctx, req, func(s pipeline.State) {
			states <- s
		})
		return outcomeMsg{run: run, outcome: o}
	}
	return m, tea.Batch(summarize, subscribeToStates(run, states), m.spinner.Tick)
}

func subscribeToStates(run int, states <-chan pipeline.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{run: run, state: s}
	}
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-formHeight, 3)
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-4, 10)
		}
		return m, nil
	case stateMsg:
		if msg.run != m.run || !m.running {
			return m, nil
		}
		m.state = msg.state
		return m, subscribeToStates(m.run, m.states)
	case outcomeMsg:
		if msg.run != m.run {
			return m, nil
		}
		m.running = false
		m.state = msg.outcome.State
		m.viewport.SetContent(formatOutcome(msg.outcome, m.viewport.Width))
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		}
		// The form is not interactive until the current summary is complete.
		if m.running {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus == focusAPIKey {
				return m, m.setFocus(focusURL)
			}
			return m.submit()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

var stateLabels = map[pipeline.State]string{
	pipeline.StateIdle:        "Starting...",
	pipeline.StateValidating:  "Validating input...",
	pipeline.StateLoading:     "Loading content...",
	pipeline.StateSummarizing: "Summarizing content...",
}

func (m uiModel) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Summarize Text From YouTube or Website"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("API Key"))
	sb.WriteString("\n")
	sb.WriteString(m.inputs[focusAPIKey].View())
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("URL (YouTube or Website)"))
	sb.WriteString("\n")
	sb.WriteString(m.inputs[focusURL].View())
	sb.WriteString("\n\n")
	button := buttonStyle
	if m.focus == focusButton {
		button = focusedButtonStyle
	}
	sb.WriteString(button.Render("Summarize"))
	sb.WriteString("\n\n")
	if m.running {
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		sb.WriteString(statusStyle.Render(stateLabels[m.state]))
	}
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab: next field • enter: summarize • pgup/pgdown: scroll • esc: quit"))
	return sb.String()
}

func formatOutcome(o pipeline.Outcome, width int) string {
	width = max(width-2, 20)
	if !o.OK() {
		return errorStyle.Render(wordwrap.String("🚨 "+o.Message(), width))
	}
	var sb strings.Builder
	sb.WriteString(successStyle.Render("✅ " + o.Message()))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(fmt.Sprintf("%s words loaded from %s", humanize.Comma(int64(o.Words)), o.URL)))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("📄 Summary:"))
	sb.WriteString("\n")
	sb.WriteString(summaryStyle.Render(wordwrap.String(strings.TrimSpace(o.Summary), width-2)))
	return sb.String()
}
