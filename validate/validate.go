// Package validate checks the two user inputs before any network call is made.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"mvdan.cc/xurls/v2"
)

var (
	ErrMissingInput = errors.New("missing input")
	ErrInvalidURL   = errors.New("invalid URL")
)

var strict = xurls.Strict()

// Input returns ErrMissingInput if either value is blank, and ErrInvalidURL if
// rawURL isn't an absolute http(s) URL. On success the parsed URL is returned.
func Input(credential, rawURL string) (*url.URL, error) {
	if strings.TrimSpace(credential) == "" || strings.TrimSpace(rawURL) == "" {
		return nil, ErrMissingInput
	}
	return URL(rawURL)
}

// URL parses s, requiring it to be a single absolute URL with a scheme and host.
//
// xurls drops trailing punctuation from its matches, since in prose it usually
// ends a sentence, so the match only has to start the string and cover the host.
func URL(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	loc := strict.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	if hostEnd := strings.Index(s, u.Host) + len(u.Host); hostEnd < len(u.Host) || loc[1] < hostEnd {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	return u, nil
}
