package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{BaseURL: srv.URL, Model: "test-model"})
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(ClientConfig{})
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultBaseURL, c.http.BaseURL)
}

func TestGenerateContent(t *testing.T) {
	t.Run("SendsKeyModelAndBody", func(t *testing.T) {
		var got GenerateContentRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
			assert.Equal(t, "secret", r.URL.Query().Get("key"))
			assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &got))

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"{\"buildName\":\"X\"}"}]}}]}`)
		})

		req := UserText("hello <b>&</b>", &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   &Schema{Type: TypeObject},
		})
		resp, err := client.GenerateContent(context.Background(), "secret", req)
		require.NoError(t, err)

		text, err := resp.FirstText()
		require.NoError(t, err)
		assert.Equal(t, `{"buildName":"X"}`, text)

		require.Len(t, got.Contents, 1)
		require.Len(t, got.Contents[0].Parts, 1)
		assert.Equal(t, "hello <b>&</b>", got.Contents[0].Parts[0].Text)
		require.NotNil(t, got.GenerationConfig)
		assert.Equal(t, "application/json", got.GenerationConfig.ResponseMimeType)
		assert.Equal(t, TypeObject, got.GenerationConfig.ResponseSchema.Type)
	})

	t.Run("APIErrorWithMessage", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"code":429,"message":"Quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
		})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)

		msg, ok := apiErr.Message()
		assert.True(t, ok)
		assert.Equal(t, "Quota exceeded", msg)
		assert.Contains(t, apiErr.Error(), "Quota exceeded")
	})

	t.Run("APIErrorWithoutMessage", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, `{"detail":"nope"}`)
		})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		_, ok := apiErr.Message()
		assert.False(t, ok)
		assert.JSONEq(t, `{"detail":"nope"}`, string(apiErr.Body))
	})

	t.Run("APIErrorUnexpectedShapes", func(t *testing.T) {
		tests := []struct {
			body    string
			message string
			found   bool
		}{
			{body: `{"error":"quota exhausted"}`},
			{body: `{"error":{"message":123,"code":"x"}}`},
			{body: `[]`},
			{body: `"plain"`},
			{body: `{"error":{"message":"","status":"UNAVAILABLE"}}`, message: "", found: true},
			{body: `{"error":{"code":503,"message":"overloaded"}}`, message: "overloaded", found: true},
		}

		for _, tt := range tests {
			t.Run(tt.body, func(t *testing.T) {
				client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = io.WriteString(w, tt.body)
				})

				_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)

				msg, ok := apiErr.Message()
				assert.Equal(t, tt.found, ok)
				assert.Equal(t, tt.message, msg)
			})
		}
	})

	t.Run("NullErrorBody", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "null")
		})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		var respErr *ResponseError
		assert.True(t, errors.As(err, &respErr))
	})

	t.Run("NonJSONErrorBody", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "<html>down</html>")
		})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		var respErr *ResponseError
		require.True(t, errors.As(err, &respErr))
		assert.Equal(t, http.StatusServiceUnavailable, respErr.StatusCode)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("UndecodableSuccessBody", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "not json")
		})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		var respErr *ResponseError
		assert.True(t, errors.As(err, &respErr))
	})

	t.Run("TransportFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		client := NewClient(ClientConfig{BaseURL: srv.URL, Model: "m"})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		require.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("TimeoutApplied", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)
		client := NewClient(ClientConfig{BaseURL: srv.URL, Model: "m", Timeout: 20 * time.Millisecond})

		_, err := client.GenerateContent(context.Background(), "k", UserText("p", nil))
		assert.Error(t, err)
	})
}

func TestFirstText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *GenerateContentResponse
		want    string
		wantErr bool
	}{
		{name: "nil response", resp: nil, wantErr: true},
		{name: "no candidates", resp: &GenerateContentResponse{}, wantErr: true},
		{name: "no content", resp: &GenerateContentResponse{Candidates: []Candidate{{FinishReason: "SAFETY"}}}, wantErr: true},
		{name: "no parts", resp: &GenerateContentResponse{Candidates: []Candidate{{Content: &Content{}}}}, wantErr: true},
		{
			name: "first part of first candidate",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{Content: &Content{Parts: []Part{{Text: "a"}, {Text: "b"}}}},
				{Content: &Content{Parts: []Part{{Text: "c"}}}},
			}},
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resp.FirstText()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingContent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaJSONSchema(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"tags": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
		Required: []string{"tags"},
	}

	out := s.JSONSchema()
	assert.Equal(t, "object", out["type"])
	assert.Equal(t, []string{"tags"}, out["required"])

	props := out["properties"].(map[string]interface{})
	tags := props["tags"].(map[string]interface{})
	assert.Equal(t, "array", tags["type"])
	assert.Equal(t, "string", tags["items"].(map[string]interface{})["type"])

	var nilSchema *Schema
	assert.Nil(t, nilSchema.JSONSchema())
}
