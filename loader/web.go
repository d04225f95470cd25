package loader

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// UserAgent is sent with page requests. Some sites refuse requests that don't look like a browser.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"

// Pages larger than maxPageBytes are rejected with ErrPageTooLarge.
const maxPageBytes = 10 << 20

var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrPageTooLarge     = errors.New("page too large")
)

// NewInsecureHTTPClient returns a client that doesn't verify TLS certificates.
//
// Pages with self-signed or expired certificates are still loaded. This
// matches the behaviour users of the tool expect, but means page content
// can be tampered with in transit.
func NewInsecureHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec
	}
	return &http.Client{
		Transport: transport,
	}
}

func NewWeb(log *slog.Logger, client *http.Client) *Web {
	if client == nil {
		client = NewInsecureHTTPClient()
	}
	return &Web{
		log:       log,
		client:    client,
		UserAgent: UserAgent,
		maxBytes:  maxPageBytes,
	}
}

// Web loads the readable text of a web page.
type Web struct {
	log       *slog.Logger
	client    *http.Client
	UserAgent string
	maxBytes  int64
}

func (w *Web) Load(ctx context.Context, rawURL string) (docs []schema.Document, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("web: failed to parse URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("web: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", w.UserAgent)

	w.log.Debug("fetching page", slog.String("url", u.String()))
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web: failed to fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("web: %w: %s returned %d", ErrUnexpectedStatus, u.String(), resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, w.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("web: failed to read page: %w", err)
	}
	if int64(len(body)) > w.maxBytes {
		return nil, fmt.Errorf("web: %w: %s is over %d bytes", ErrPageTooLarge, u.String(), w.maxBytes)
	}

	doc, ok, err := w.extract(ctx, u, body)
	if err != nil {
		return nil, err
	}
	if !ok {
		w.log.Info("page contains no text", slog.String("url", u.String()))
		return nil, nil
	}
	return []schema.Document{doc}, nil
}

func (w *Web) extract(ctx context.Context, u *url.URL, body []byte) (doc schema.Document, ok bool, err error) {
	doc.Metadata = map[string]any{
		"source": u.String(),
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		w.log.Debug("readability extraction failed, using HTML text", slog.String("url", u.String()), slog.Any("error", err))
	} else {
		doc.PageContent = strings.TrimSpace(article.TextContent)
		setIfNotEmpty(doc.Metadata, "title", article.Title)
		setIfNotEmpty(doc.Metadata, "byline", article.Byline)
		setIfNotEmpty(doc.Metadata, "site_name", article.SiteName)
	}
	if doc.PageContent != "" {
		return doc, true, nil
	}

	htmlDocs, err := documentloaders.NewHTML(bytes.NewReader(body)).Load(ctx)
	if err != nil {
		return doc, false, fmt.Errorf("web: failed to extract text: %w", err)
	}
	var sb strings.Builder
	for _, hd := range htmlDocs {
		text := strings.TrimSpace(hd.PageContent)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}
	doc.PageContent = sb.String()
	return doc, doc.PageContent != "", nil
}

func setIfNotEmpty(m map[string]any, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		m[key] = value
	}
}
