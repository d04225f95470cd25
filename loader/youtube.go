package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/tmc/langchaingo/schema"
)

const DefaultTranscriptLanguage = "en"

type videoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

func NewYouTube(log *slog.Logger, httpClient *http.Client, language string) *YouTube {
	if language == "" {
		language = DefaultTranscriptLanguage
	}
	return &YouTube{
		log:      log,
		client:   &youtube.Client{HTTPClient: httpClient},
		language: language,
	}
}

// YouTube loads the transcript of a single video, with the video's details as metadata.
type YouTube struct {
	log      *slog.Logger
	client   videoClient
	language string
}

func (y *YouTube) Load(ctx context.Context, url string) (docs []schema.Document, err error) {
	video, err := y.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to get video: %w", err)
	}
	transcript, err := y.client.GetTranscriptCtx(ctx, video, y.language)
	if errors.Is(err, youtube.ErrTranscriptDisabled) {
		y.log.Info("video has no transcript", slog.String("id", video.ID), slog.String("language", y.language))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to get transcript: %w", err)
	}
	text := transcriptText(transcript)
	if text == "" {
		y.log.Info("video transcript is empty", slog.String("id", video.ID), slog.String("language", y.language))
		return nil, nil
	}
	return []schema.Document{
		{
			PageContent: text,
			Metadata:    videoMetadata(video),
		},
	}, nil
}

func transcriptText(t youtube.VideoTranscript) string {
	segments := make([]string, 0, len(t))
	for _, seg := range t {
		if s := strings.TrimSpace(seg.Text); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, " ")
}

func videoMetadata(v *youtube.Video) map[string]any {
	m := map[string]any{
		"source":      v.ID,
		"title":       v.Title,
		"description": v.Description,
		"author":      v.Author,
		"view_count":  v.Views,
		"length":      int(v.Duration / time.Second),
	}
	if !v.PublishDate.IsZero() {
		m["publish_date"] = v.PublishDate.Format(time.DateOnly)
	}
	if len(v.Thumbnails) > 0 {
		m["thumbnail_url"] = v.Thumbnails[len(v.Thumbnails)-1].URL
	}
	return m
}
