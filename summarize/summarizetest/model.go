// Package summarizetest provides a deterministic language model for tests.
package summarizetest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// Model answers every prompt with Respond(prompt), and records the prompts it receives.
type Model struct {
	Respond func(prompt string) (string, error)

	m       sync.Mutex
	prompts []string
}

// Echo returns "SUMMARY: " followed by the first 10 words of the content in the prompt.
func Echo(prompt string) (string, error) {
	_, content, ok := strings.Cut(prompt, "Content: ")
	if !ok {
		return "", errors.New("summarizetest: prompt has no content")
	}
	words := strings.Fields(content)
	if len(words) > 10 {
		words = words[:10]
	}
	return "SUMMARY: " + strings.Join(words, " "), nil
}

func NewEcho() *Model {
	return &Model{Respond: Echo}
}

func (m *Model) Prompts() []string {
	m.m.Lock()
	defer m.m.Unlock()
	return append([]string(nil), m.prompts...)
}

func (m *Model) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	var sb strings.Builder
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				sb.WriteString(tc.Text)
			}
		}
	}
	prompt := sb.String()
	m.m.Lock()
	m.prompts = append(m.prompts, prompt)
	m.m.Unlock()
	text, err := m.Respond(prompt)
	if err != nil {
		return nil, err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}, nil
}

func (m *Model) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}
