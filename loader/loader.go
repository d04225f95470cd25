// Package loader retrieves the text to summarize from a URL.
//
// A URL is routed to one of two strategies: the transcript of a video on a
// video-sharing platform, or the readable text of a generic web page. Both
// produce an ordered list of documents which may be empty; an empty result
// is not an error and callers must check for it.
package loader

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tmc/langchaingo/schema"
)

// ContentLoader retrieves documents for a single URL.
type ContentLoader interface {
	Load(ctx context.Context, url string) ([]schema.Document, error)
}

// Source is the retrieval strategy selected for a URL.
type Source int

const (
	SourceWeb Source = iota
	SourceVideo
)

func (s Source) String() string {
	switch s {
	case SourceVideo:
		return "video"
	case SourceWeb:
		return "web"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

var videoHosts = []string{"youtube.com", "youtu.be"}

// Select returns SourceVideo if the URL's host is a video platform, otherwise SourceWeb.
func Select(u *url.URL) Source {
	host := strings.ToLower(u.Hostname())
	for _, vh := range videoHosts {
		if host == vh || strings.HasSuffix(host, "."+vh) {
			return SourceVideo
		}
	}
	return SourceWeb
}

func NewRouter(video, web ContentLoader) Router {
	return Router{
		Video: video,
		Web:   web,
	}
}

// Router dispatches to the loader for the URL's source.
type Router struct {
	Video ContentLoader
	Web   ContentLoader
}

func (r Router) Route(u *url.URL) (Source, ContentLoader) {
	if s := Select(u); s == SourceVideo {
		return s, r.Video
	}
	return SourceWeb, r.Web
}

func (r Router) Load(ctx context.Context, rawURL string) (docs []schema.Document, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to parse URL: %w", err)
	}
	source, l := r.Route(u)
	if l == nil {
		return nil, fmt.Errorf("loader: no loader configured for %s URLs", source)
	}
	return l.Load(ctx, u.String())
}

// WordCount returns the number of whitespace separated words across all documents.
func WordCount(docs []schema.Document) (n int) {
	for _, doc := range docs {
		n += len(strings.Fields(doc.PageContent))
	}
	return n
}
