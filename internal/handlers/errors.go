package handlers

import (
	"net/http"

	"pc-build-advisor/internal/models"
	"pc-build-advisor/internal/services"
	"pc-build-advisor/pkg/lambda"
)

// errorResponse builds a JSON error envelope. HTML characters in upstream
// messages are kept as-is rather than \u-escaped.
func errorResponse(statusCode int, message string) *lambda.Response {
	body, err := models.EncodeJSON(models.ErrorResponse{Error: message})
	if err != nil {
		statusCode = http.StatusInternalServerError
		body = []byte(`{"error":"` + services.MsgInternalError + `"}`)
	}
	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func methodNotAllowed() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusMethodNotAllowed,
		Headers: map[string]string{
			"Content-Type": "text/plain; charset=utf-8",
			"Allow":        http.MethodPost,
		},
		Body: []byte(services.MsgMethodNotAllowed),
	}
}
