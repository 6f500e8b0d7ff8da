package response

import (
	"daily/infras/metrics"
	"daily/shared/constant"
	"daily/shared/envelope"
	"daily/shared/failure"
	"daily/shared/logger"
	"daily/shared/validator"
	"encoding/json"
	"errors"
	"net/http"
)

const problemTitle = "One or more validation errors occurred."

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Problem is the 400 body for requests rejected before reaching a service.
type Problem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// WithEnvelope sends a service envelope verbatim with 200 OK
func WithEnvelope(writer http.ResponseWriter, env envelope.Envelope) {
	metrics.RecordResult(env.ResultCode.String())

	response(writer, http.StatusOK, constant.ContentTypeJSON, env)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, constant.ContentTypeJSON, Message{Message: &message})
}

// WithError sends a validation problem for rejected input, or an error message otherwise
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	var valErr *validator.Error
	if errors.As(err, &valErr) {
		response(writer, code, constant.ContentTypeProblemJSON, Problem{
			Title:  problemTitle,
			Status: code,
			Errors: valErr.Fields,
		})

		return
	}

	errMsg := err.Error()

	response(writer, code, constant.ContentTypeJSON, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, contentType string, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
