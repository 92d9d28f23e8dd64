package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"pc-build-advisor/internal/handlers"
	"pc-build-advisor/internal/services"
	"pc-build-advisor/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return internalError(), nil
	}

	req, err := lambda.FromAPIGateway(event)
	if err != nil {
		container.Logger.WithError(err).Error("Failed to decode request")
		return internalError(), nil
	}

	generateHandler := handlers.NewGenerateHandler(container.BuildService, container.Logger)

	resp, err := generateHandler.HandleGenerate(ctx, req)
	if err != nil {
		container.Logger.WithError(err).Error("Unhandled handler error")
		return internalError(), nil
	}

	return lambda.ToAPIGateway(resp), nil
}

func internalError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"error":"` + services.MsgInternalError + `"}`,
	}
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(func() {
		if err := lambda.GetConnectionManager().Cleanup(); err != nil {
			logrus.WithError(err).Error("Failed to clean up container")
		}
	}))
}
