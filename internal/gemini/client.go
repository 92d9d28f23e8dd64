package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"pc-build-advisor/internal/metrics"
	"pc-build-advisor/internal/models"
)

const (
	// DefaultBaseURL is the public generative-language endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model the build generator is tuned against
	DefaultModel = "gemini-2.5-flash-preview-05-20"
)

// ClientConfig holds connection settings for the Gemini API
type ClientConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration // zero leaves the transport default in place
}

// Client calls the generateContent endpoint of the Gemini API
type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates a new Gemini client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:  client,
		model: cfg.Model,
	}
}

// Model returns the model id requests are sent to
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends req to the configured model, authenticating with
// apiKey as a query parameter. Non-2xx answers with a JSON body come back
// as *APIError; undecodable bodies as *ResponseError.
func (c *Client) GenerateContent(ctx context.Context, apiKey string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	payload, err := models.EncodeJSON(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", apiKey).
		SetBody(payload).
		Post("/models/" + url.PathEscape(c.model) + ":generateContent")
	if err != nil {
		metrics.ObserveUpstream("error", time.Since(start))
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	metrics.ObserveUpstream(strconv.Itoa(resp.StatusCode()), time.Since(start))

	if !resp.IsSuccess() {
		detail, err := parseErrorDetail(resp.Body())
		if err != nil {
			return nil, &ResponseError{StatusCode: resp.StatusCode(), Err: err}
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       json.RawMessage(resp.Body()),
			Detail:     detail,
		}
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &ResponseError{StatusCode: resp.StatusCode(), Err: err}
	}
	return &result, nil
}
