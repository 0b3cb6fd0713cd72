package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

// committedWriter records whether anything reached the client.
type committedWriter struct {
	http.ResponseWriter
	committed bool
}

func (w *committedWriter) WriteHeader(status int) {
	w.committed = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *committedWriter) Write(b []byte) (int, error) {
	w.committed = true
	return w.ResponseWriter.Write(b)
}

func (w *committedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// RecoverPanic turns a handler panic into a generic 500. When the handler
// already started its response, the panic is only logged.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	writer := &committedWriter{ResponseWriter: resp.ResponseWriter}
	resp.ResponseWriter = writer

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("method", req.Request.Method).
				Str("route", req.SelectedRoutePath()).
				Bool("committed", writer.committed).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")

			if writer.committed {
				return
			}
			WriteText(resp, http.StatusInternalServerError, InternalErrorMessage)
		}
	}()

	chain.ProcessFilter(req, resp)
}
