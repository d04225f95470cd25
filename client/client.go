package client

import (
	"context"

	"github.com/a-h/jsonapi"
	"github.com/a-h/urlsummary/models"
)

// New creates a client for a summary server. The apiKey is sent as a bearer
// credential, and is passed on to the model provider by the server.
func New(baseURL, apiKey string) Client {
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type Client struct {
	baseURL string
	apiKey  string
}

// SummarizePost returns a jsonapi.InvalidStatusError if the summary could not be created.
// The error's Body contains the JSON encoded models.SummarizePostResponse.
func (c Client) SummarizePost(ctx context.Context, req models.SummarizePostRequest) (resp models.SummarizePostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("summarize").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.SummarizePostRequest, models.SummarizePostResponse](ctx, url, req, jsonapi.WithRequestHeader("Authorization", "Bearer "+c.apiKey))
}
