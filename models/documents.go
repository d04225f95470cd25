package models

// Document is a loaded document, as printed by the load command.
type Document struct {
	Text     string         `json:"text" yaml:"text"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
