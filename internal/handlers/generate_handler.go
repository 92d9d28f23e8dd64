package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pc-build-advisor/internal/metrics"
	"pc-build-advisor/internal/middleware"
	"pc-build-advisor/internal/services"
	"pc-build-advisor/pkg/lambda"
)

// GenerateHandler handles build recommendation requests
type GenerateHandler struct {
	buildService services.BuildService
	logger       *logrus.Logger
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(buildService services.BuildService, logger *logrus.Logger) *GenerateHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GenerateHandler{
		buildService: buildService,
		logger:       logger,
	}
}

// @Summary Generate PC build
// @Description Generate a PC build recommendation for a free-text prompt
// @Tags builds
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Prompt"
// @Success 200 {object} models.BuildRecommendation
// @Failure 400 {object} models.ErrorResponse
// @Failure 405 {string} string "Method Not Allowed"
// @Failure 500 {object} models.ErrorResponse
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	req := &lambda.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Body:      body,
		RequestID: c.GetString(middleware.RequestIDKey),
	}
	if err != nil {
		writeGin(c, h.fail(req, services.NewInternalError(err)))
		return
	}

	writeGin(c, h.Handle(c.Request.Context(), req))
}

// HandleGenerate is the Lambda entry for build generation
func (h *GenerateHandler) HandleGenerate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return h.Handle(ctx, req), nil
}

// Handle runs one build request end to end. It always produces a response;
// panics and unexpected errors become the generic internal error.
func (h *GenerateHandler) Handle(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = h.fail(req, services.NewInternalError(fmt.Errorf("panic: %v", r)))
		}
	}()

	if req.Method != http.MethodPost {
		metrics.ObserveBuild(services.KindMethodNotAllowed.String())
		return methodNotAllowed()
	}

	prompt, err := decodePrompt(req.Body)
	if err != nil {
		return h.fail(req, services.NewInternalError(fmt.Errorf("%w: %v", services.ErrMalformedInput, err)))
	}

	text, err := h.buildService.GenerateBuild(ctx, prompt)
	if err != nil {
		return h.fail(req, services.AsError(err))
	}

	metrics.ObserveBuild("success")
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       text,
	}
}

func (h *GenerateHandler) fail(req *lambda.Request, buildErr *services.Error) *lambda.Response {
	metrics.ObserveBuild(buildErr.Kind.String())

	fields := logrus.Fields{
		"request_id":  req.RequestID,
		"method":      req.Method,
		"path":        req.Path,
		"error_kind":  buildErr.Kind.String(),
		"status_code": buildErr.StatusCode,
	}
	switch buildErr.Kind {
	case services.KindValidation:
		h.logger.WithFields(fields).Warn("Rejected build request")
	default:
		h.logger.WithFields(fields).WithError(buildErr.Err).Error("Build generation failed")
	}

	return errorResponse(buildErr.StatusCode, buildErr.Message)
}

// decodePrompt extracts the "prompt" member of a JSON body. The key is
// matched exactly. Any valid JSON other than null decodes; a body that is
// not an object, or whose prompt is not a string, yields an empty prompt.
func decodePrompt(body []byte) (string, error) {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	if payload == nil {
		return "", errNullBody
	}

	fields, ok := payload.(map[string]interface{})
	if !ok {
		return "", nil
	}
	prompt, _ := fields["prompt"].(string)
	return prompt, nil
}

var errNullBody = errors.New("request body is null")

func writeGin(c *gin.Context, resp *lambda.Response) {
	contentType := resp.Header("Content-Type")
	for key, value := range resp.Headers {
		if key == "Content-Type" {
			continue
		}
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
