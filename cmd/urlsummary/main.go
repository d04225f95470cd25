package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/urlsummary/loader"
	"github.com/a-h/urlsummary/pipeline"
	"github.com/a-h/urlsummary/summarize"
	"github.com/alecthomas/kong"
)

type CLI struct {
	Serve     ServeCommand     `cmd:"serve" help:"Start the summary server."`
	Summarize SummarizeCommand `cmd:"summarize" help:"Summarize a YouTube video or web page."`
	Load      LoadCommand      `cmd:"load" help:"Print the documents that would be summarized for a URL."`
	UI        UICommand        `cmd:"ui" help:"Summarize URLs in an interactive terminal form."`
	Version   VersionCommand   `cmd:"version" help:"Print the version."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ll,
	}))
}

// PipelineFlags configure the loaders and the model used by commands that summarize.
type PipelineFlags struct {
	Provider           string `help:"The model provider." env:"PROVIDER" default:"groq" enum:"groq,openai,ollama"`
	Model              string `help:"The model to summarize with. Defaults to a small instruction-tuned model for the provider." env:"MODEL" default:""`
	LLMBaseURL         string `help:"Override the URL of the OpenAI compatible API." env:"LLM_BASE_URL" default:""`
	OllamaURL          string `help:"The URL of the Ollama server." env:"OLLAMA_URL" default:"http://127.0.0.1:11434/"`
	TranscriptLanguage string `help:"The language of YouTube transcripts to load." env:"TRANSCRIPT_LANGUAGE" default:"en"`
}

func (f PipelineFlags) newLoader(log *slog.Logger) loader.Router {
	log.Warn("TLS certificate verification is disabled when fetching web pages")
	return loader.NewRouter(
		loader.NewYouTube(log, &http.Client{}, f.TranscriptLanguage),
		loader.NewWeb(log, loader.NewInsecureHTTPClient()),
	)
}

func (f PipelineFlags) newPipeline(log *slog.Logger) *pipeline.Pipeline {
	models := summarize.ModelConfig{
		Provider:   summarize.Provider(f.Provider),
		Model:      f.Model,
		BaseURL:    f.LLMBaseURL,
		OllamaURL:  f.OllamaURL,
		HTTPClient: &http.Client{},
	}
	return pipeline.New(log, f.newLoader(log), models)
}
