package gemini

import "errors"

// GenerateContentRequest is the body of a models/*:generateContent call
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content holds an ordered list of parts for a single turn
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single text fragment of a content turn
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig constrains how the model produces its answer
type GenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// GenerateContentResponse is the successful response of generateContent
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// ErrMissingContent is returned when a response has no usable candidate text
var ErrMissingContent = errors.New("response has no candidate content")

// FirstText returns the text of the first part of the first candidate
func (r *GenerateContentResponse) FirstText() (string, error) {
	if r == nil || len(r.Candidates) == 0 {
		return "", ErrMissingContent
	}
	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrMissingContent
	}
	return content.Parts[0].Text, nil
}

// UserText builds a request with a single user turn carrying text
func UserText(text string, cfg *GenerationConfig) *GenerateContentRequest {
	return &GenerateContentRequest{
		Contents: []Content{{
			Parts: []Part{{Text: text}},
		}},
		GenerationConfig: cfg,
	}
}
