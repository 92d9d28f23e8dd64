package services

import (
	"fmt"

	"pc-build-advisor/internal/gemini"
)

const buildInstructionTemplate = `Generate a PC component list for a user based on this request: "%s". ` +
	`The user is shopping in India, so give the estimated price in Indian Rupees using the ₹ symbol ` +
	`and Indian digit grouping (for example ₹1,50,000). ` +
	`Also give a creative name for the build, a brief reasoning for your choices, and a list of core components.`

// BuildInstruction returns the instruction text sent to the model. The
// prompt is embedded verbatim.
func BuildInstruction(prompt string) string {
	return fmt.Sprintf(buildInstructionTemplate, prompt)
}

// BuildRecommendationSchema is the response shape the model is constrained to
func BuildRecommendationSchema() *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"buildName": {
				Type:        gemini.TypeString,
				Description: "A creative and fitting name for the PC build.",
			},
			"estimatedPrice": {
				Type:        gemini.TypeString,
				Description: "The total estimated price of the build in Indian Rupees, formatted like ₹1,50,000.",
			},
			"reasoning": {
				Type:        gemini.TypeString,
				Description: "A brief explanation of why these components were chosen for the user's needs.",
			},
			"components": {
				Type:        gemini.TypeArray,
				Description: "A list of the core PC components.",
				Items: &gemini.Schema{
					Type: gemini.TypeObject,
					Properties: map[string]*gemini.Schema{
						"type": {
							Type:        gemini.TypeString,
							Description: "The type of component (e.g., CPU, GPU, Motherboard).",
						},
						"name": {
							Type:        gemini.TypeString,
							Description: "The specific model name of the component.",
						},
					},
					Required: []string{"type", "name"},
				},
			},
		},
		Required: []string{"buildName", "estimatedPrice", "reasoning", "components"},
	}
}

// NewBuildRequest assembles the generateContent request for prompt
func NewBuildRequest(prompt string) *gemini.GenerateContentRequest {
	return gemini.UserText(BuildInstruction(prompt), &gemini.GenerationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   BuildRecommendationSchema(),
	})
}
