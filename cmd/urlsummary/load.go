package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/a-h/urlsummary/loader"
	"github.com/a-h/urlsummary/models"
	"github.com/a-h/urlsummary/pipeline"
	"github.com/a-h/urlsummary/validate"
	"github.com/tmc/langchaingo/schema"
	"gopkg.in/yaml.v3"
)

type LoadCommand struct {
	URL                string `help:"The URL of the YouTube video or web page to load." default:""`
	TranscriptLanguage string `help:"The language of YouTube transcripts to load." env:"TRANSCRIPT_LANGUAGE" default:"en"`
	LogLevel           string `help:"The log level to use." env:"LOG_LEVEL" default:"warn"`
}

func (c LoadCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	u, err := validate.URL(c.URL)
	if err != nil {
		return err
	}
	l := PipelineFlags{TranscriptLanguage: c.TranscriptLanguage}.newLoader(log)
	source, _ := l.Route(u)
	log.Info("loading documents", slog.String("url", u.String()), slog.String("source", source.String()))
	docs, err := l.Load(ctx, u.String())
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	if len(docs) == 0 {
		fmt.Fprintln(os.Stderr, pipeline.NoContentMessage)
		return pipeline.ErrNoContent
	}
	log.Info("documents loaded", slog.Int("documents", len(docs)), slog.Int("words", loader.WordCount(docs)))
	return writeDocuments(os.Stdout, docs)
}

func writeDocuments(w io.Writer, docs []schema.Document) error {
	output := make([]models.Document, len(docs))
	for i, doc := range docs {
		output[i] = models.Document{
			Text:     doc.PageContent,
			Metadata: doc.Metadata,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("failed to write documents: %w", err)
	}
	return enc.Close()
}
