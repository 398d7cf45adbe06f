package crew

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const (
	msgMissingParams = "Missing role or movieId in path parameters"
	msgInvalidID     = "Invalid movieId"
	msgNotFound      = "No crew members found "
	msgInternal      = "Internal server error"
)

type crewResponse struct {
	Crew []string `json:"crew"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func jsonResponse(status int, body interface{}) events.APIGatewayV2HTTPResponse {
	data, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Message: msgInternal, Error: err.Error()})
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(data),
	}
}

func badRequest(message string) events.APIGatewayV2HTTPResponse {
	return jsonResponse(http.StatusBadRequest, messageResponse{Message: message})
}

func notFound() events.APIGatewayV2HTTPResponse {
	return jsonResponse(http.StatusNotFound, messageResponse{Message: msgNotFound})
}

func internalError(detail string) events.APIGatewayV2HTTPResponse {
	return jsonResponse(http.StatusInternalServerError, errorResponse{Message: msgInternal, Error: detail})
}

func success(names []string) events.APIGatewayV2HTTPResponse {
	return jsonResponse(http.StatusOK, crewResponse{Crew: names})
}
