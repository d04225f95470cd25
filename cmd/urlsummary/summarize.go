package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/a-h/jsonapi"
	"github.com/a-h/urlsummary/client"
	"github.com/a-h/urlsummary/models"
	"github.com/a-h/urlsummary/pipeline"
)

type SummarizeCommand struct {
	Pipeline  PipelineFlags `embed:""`
	URL       string        `help:"The URL of the YouTube video or web page to summarize." default:""`
	APIKey    string        `help:"The API key of the model provider." env:"API_KEY" default:""`
	ServerURL string        `help:"The URL of a summary server to use. If empty, the summary is created locally." env:"SERVER_URL" default:""`
	LogLevel  string        `help:"The log level to use." env:"LOG_LEVEL" default:"warn"`
}

func (c SummarizeCommand) Run(ctx context.Context) (err error) {
	if c.ServerURL != "" {
		return c.remote(ctx, os.Stdout, os.Stderr)
	}
	log := getLogger(c.LogLevel)
	p := c.Pipeline.newPipeline(log)
	o := p.Run(ctx, pipeline.Request{
		Credential: c.APIKey,
		URL:        c.URL,
	})
	return printOutcome(os.Stdout, os.Stderr, o.Message(), o.Summary, o.Err)
}

func (c SummarizeCommand) remote(ctx context.Context, stdout, stderr io.Writer) (err error) {
	rsc := client.New(c.ServerURL, c.APIKey)
	resp, err := rsc.SummarizePost(ctx, models.SummarizePostRequest{
		URL: c.URL,
	})
	var ise jsonapi.InvalidStatusError
	if errors.As(err, &ise) {
		if jsonErr := json.Unmarshal([]byte(ise.Body), &resp); jsonErr != nil || resp.State != models.SummaryStateError {
			return fmt.Errorf("summary server returned status %d: %w", ise.Status, err)
		}
		return printOutcome(stdout, stderr, resp.Message, "", errors.New(resp.Error))
	}
	if err != nil {
		return fmt.Errorf("failed to post summary request: %w", err)
	}
	return printOutcome(stdout, stderr, resp.Message, resp.Summary, nil)
}

// printOutcome writes the summary to stdout, and status messages to stderr.
func printOutcome(stdout, stderr io.Writer, message, summary string, err error) error {
	fmt.Fprintln(stderr, message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, summary)
	return err
}
