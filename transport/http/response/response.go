package response

import (
	"encoding/json"
	"net/http"

	"demobook/shared/constant"
	"demobook/shared/failure"
	"demobook/shared/logger"
)

// Envelope is the uniform body for error and status responses. Success
// payloads carry their own envelope and are written verbatim.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithPayload sends the payload as-is with the given status code.
func WithPayload(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithMessage sends an Envelope with the given status code and message.
func WithMessage(writer http.ResponseWriter, code int, success bool, message string) {
	response(writer, code, Envelope{Success: success, Message: message})
}

// WithError sends an error response. The status code comes from the failure
// taxonomy; anything that is not a known failure maps to 500.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Envelope{Success: false, Message: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, false, constant.ResponseErrorRequestLimitExceeded)
}

// WithUnhealthy sends a default response for when the server is unhealthy.
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, false, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(body)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
