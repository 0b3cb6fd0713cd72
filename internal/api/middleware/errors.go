package middleware

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

const MIME_TEXT = "text/plain"

// InternalErrorMessage is the only body a caller sees for server-side failures.
const InternalErrorMessage = "Something went wrong. Try again later."

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

// HandleError writes a JSON error. Details are only exposed for 4xx.
func HandleError(resp *restful.Response, err error, status int) {
	errorResponse := ErrorResponse{
		Error: http.StatusText(status),
		Code:  status,
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("Request failed")
		errorResponse.Error = InternalErrorMessage
	} else if err != nil {
		errorResponse.Details = err.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(status, errorResponse); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// WriteText writes body as text/plain with the given status.
func WriteText(resp *restful.Response, status int, body string) {
	resp.AddHeader("Content-Type", MIME_TEXT+"; charset=utf-8")
	resp.WriteHeader(status)
	if _, err := resp.Write([]byte(body)); err != nil {
		log.Error().Err(err).Msg("Failed to write response body")
	}
}
