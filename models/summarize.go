package models

type SummarizePostRequest struct {
	// URL of the video or web page to summarize.
	URL string `json:"url"`

	// APIKey for the model provider. If empty, the Authorization header is used.
	APIKey string `json:"apiKey,omitempty"`
}

type SummaryState string

const (
	SummaryStateSuccess SummaryState = "success"
	SummaryStateError   SummaryState = "error"
)

type SummarizePostResponse struct {
	State     SummaryState `json:"state"`
	URL       string       `json:"url,omitempty"`
	Source    string       `json:"source,omitempty"`
	Summary   string       `json:"summary,omitempty"`
	Documents int          `json:"documents"`
	Words     int          `json:"words"`
	Message   string       `json:"message"`
	Error     string       `json:"error,omitempty"`
}
