package models

// GenerateRequest represents the inbound body posted by the frontend
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// BuildRecommendation is the shape the model is instructed to return.
// The adapter never decodes upstream output into it; it documents the
// contract and is used by tests and clients.
type BuildRecommendation struct {
	BuildName      string      `json:"buildName"`
	EstimatedPrice string      `json:"estimatedPrice"`
	Reasoning      string      `json:"reasoning"`
	Components     []Component `json:"components"`
}

// Component is a single part in a recommended build
type Component struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// ErrorResponse is the JSON error envelope returned to callers
type ErrorResponse struct {
	Error string `json:"error"`
}
