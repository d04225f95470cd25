package validate

import (
	"errors"
	"testing"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name       string
		credential string
		url        string
		expected   error
	}{
		{
			name:       "empty credential is missing input",
			credential: "",
			url:        "https://example.com",
			expected:   ErrMissingInput,
		},
		{
			name:       "empty URL is missing input",
			credential: "abc",
			url:        "",
			expected:   ErrMissingInput,
		},
		{
			name:       "whitespace-only values are missing input",
			credential: " \t",
			url:        "\n ",
			expected:   ErrMissingInput,
		},
		{
			name:       "missing input is reported before an invalid URL",
			credential: "",
			url:        "not a url",
			expected:   ErrMissingInput,
		},
		{
			name:       "free text is not a URL",
			credential: "abc",
			url:        "not a url",
			expected:   ErrInvalidURL,
		},
		{
			name:       "a host without a scheme is not a URL",
			credential: "abc",
			url:        "example.com/article",
			expected:   ErrInvalidURL,
		},
		{
			name:       "a URL containing spaces is invalid",
			credential: "abc",
			url:        "https://exa mple.com",
			expected:   ErrInvalidURL,
		},
		{
			name:       "schemes without a host are invalid",
			credential: "abc",
			url:        "mailto:someone@example.com",
			expected:   ErrInvalidURL,
		},
		{
			name:       "non-web schemes are invalid",
			credential: "abc",
			url:        "ftp://example.com/file.txt",
			expected:   ErrInvalidURL,
		},
		{
			name:       "website URLs are valid",
			credential: "abc",
			url:        "https://example.com/article",
		},
		{
			name:       "video URLs are valid",
			credential: "abc",
			url:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:       "paths may end with a full stop",
			credential: "abc",
			url:        "https://en.wikipedia.org/wiki/Washington,_D.C.",
		},
		{
			name:       "paths may end with a comma",
			credential: "abc",
			url:        "https://example.com/path,",
		},
		{
			name:       "paths may end with an exclamation mark",
			credential: "abc",
			url:        "https://en.wikipedia.org/wiki/Yahoo!",
		},
		{
			name:       "paths may end with an asterisk",
			credential: "abc",
			url:        "https://example.com/page*",
		},
		{
			name:       "text after a URL is invalid",
			credential: "abc",
			url:        "https://example.com/article and more",
			expected:   ErrInvalidURL,
		},
		{
			name:       "surrounding whitespace is ignored",
			credential: "abc",
			url:        "  http://localhost:8080/page  ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Input(tt.credential, tt.url)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected error %v, got %v", tt.expected, err)
			}
			if tt.expected == nil && u == nil {
				t.Fatal("expected a parsed URL")
			}
			if tt.expected != nil && u != nil {
				t.Errorf("expected no URL, got %v", u)
			}
		})
	}
}

func TestURLKeepsTrailingPunctuation(t *testing.T) {
	u, err := URL("https://en.wikipedia.org/wiki/Washington,_D.C.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Path != "/wiki/Washington,_D.C." {
		t.Errorf("expected the full path, got %q", u.Path)
	}
}

func TestURLHost(t *testing.T) {
	u, err := URL("https://www.youtube.com/watch?v=abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Hostname() != "www.youtube.com" {
		t.Errorf("expected host www.youtube.com, got %q", u.Hostname())
	}
}
