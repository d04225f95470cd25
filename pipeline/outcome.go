package pipeline

import (
	"errors"

	"github.com/a-h/urlsummary/loader"
	"github.com/a-h/urlsummary/validate"
)

const (
	SuccessMessage      = "Summary Generated Successfully!"
	MissingInputMessage = "Please provide the information to get started"
	InvalidURLMessage   = "Please enter a valid URL. It can be a YouTube video URL or website URL"
	NoContentMessage    = "No content could be loaded from the URL, check the URL"
)

// Outcome is the result of a run.
type Outcome struct {
	State     State
	URL       string
	Source    loader.Source
	Summary   string
	Documents int
	Words     int
	Err       error
}

func (o Outcome) OK() bool {
	return o.State == StateSuccess
}

// Message is the text shown to the user for the outcome. It is empty until the run has finished.
func (o Outcome) Message() string {
	switch {
	case o.State == StateSuccess:
		return SuccessMessage
	case o.Err == nil:
		return ""
	case errors.Is(o.Err, validate.ErrMissingInput):
		return MissingInputMessage
	case errors.Is(o.Err, validate.ErrInvalidURL):
		return InvalidURLMessage
	case errors.Is(o.Err, ErrNoContent):
		return NoContentMessage
	}
	return "Exception: " + o.Err.Error()
}

// IsInputError returns true if the user must correct their input before retrying.
func (o Outcome) IsInputError() bool {
	return errors.Is(o.Err, validate.ErrMissingInput) || errors.Is(o.Err, validate.ErrInvalidURL)
}
