package middleware

import (
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// Logger logs one line per request. The route template is logged instead of
// the raw path so prompts do not end up in the logs.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	requestID := req.HeaderParameter(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	resp.AddHeader(RequestIDHeader, requestID)

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("request_id", requestID).
		Str("method", req.Request.Method).
		Str("route", req.SelectedRoutePath()).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request handled")
}
