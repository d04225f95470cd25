// Package summarize asks a language model for a summary of loaded documents.
package summarize

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"github.com/tmc/langchaingo/schema"
)

// PromptTemplate is filled with the text of every document, separated by blank lines.
const PromptTemplate = `Provide a summary of the following content in 300 words:
Content: {{.text}}
`

var ErrNoDocuments = errors.New("no documents to summarize")

func New(llm llms.Model) *Summarizer {
	llmChain := chains.NewLLMChain(llm, prompts.NewPromptTemplate(PromptTemplate, []string{"text"}))
	llmChain.OutputParser = verbatim{}
	chain := chains.NewStuffDocuments(llmChain)
	chain.DocumentVariableName = "text"
	return &Summarizer{
		chain: chain,
	}
}

// Summarizer puts all documents into a single prompt. Content that doesn't fit
// the model's context window makes the model call fail.
type Summarizer struct {
	chain chains.StuffDocuments
}

// verbatim returns the model's output unchanged. The default chain parser trims it.
type verbatim struct{}

func (verbatim) Parse(text string) (any, error) {
	return text, nil
}

func (verbatim) ParseWithPrompt(text string, _ llms.PromptValue) (any, error) {
	return text, nil
}

func (verbatim) GetFormatInstructions() string {
	return ""
}

func (verbatim) Type() string {
	return "verbatim"
}

func (s *Summarizer) Summarize(ctx context.Context, docs []schema.Document) (summary string, err error) {
	if len(docs) == 0 {
		return "", ErrNoDocuments
	}
	summary, err = chains.Run(ctx, s.chain, docs)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}
