package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tmc/langchaingo/schema"
)

func TestWriteDocuments(t *testing.T) {
	docs := []schema.Document{
		{
			PageContent: "Transcript text.",
			Metadata: map[string]any{
				"source": "dQw4w9WgXcQ",
				"title":  "A video",
			},
		},
	}
	buf := new(bytes.Buffer)
	if err := writeDocuments(buf, docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `- text: Transcript text.
  metadata:
    source: dQw4w9WgXcQ
    title: A video
`
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Error(diff)
	}
}
