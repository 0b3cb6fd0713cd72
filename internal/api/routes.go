package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	// No Produces: replies are always text/plain whatever the caller accepts.
	ws.Path("/")

	ws.
		Route(ws.GET("").
			To(handler.Index).
			Doc("Greeting").
			Metadata(restfulspec.KeyOpenAPITags, []string{"completion"}).
			Returns(200, "OK", nil))

	ws.
		Route(ws.GET("/{prompt}").
			To(handler.Finish).
			Doc("Finish the prompt").
			Metadata(restfulspec.KeyOpenAPITags, []string{"completion"}).
			Param(ws.PathParameter("prompt", "Text to finish").DataType("string")).
			Param(ws.HeaderParameter("Authorization", "Bearer <user id>").DataType("string").Required(false)).
			Returns(200, "Completion text or a message explaining why none was produced", nil).
			Returns(500, "Internal Server Error", nil).
			Returns(502, "Completion API failure", nil).
			Returns(504, "Completion API timeout", nil))

	container.Add(ws)

	apiWs := new(restful.WebService)

	apiWs.
		Path("/api/v1").
		Produces(restful.MIME_JSON)

	// Health endpoint
	apiWs.
		Route(apiWs.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}).
			Returns(503, "Service Unavailable", middleware.ErrorResponse{}))

	container.Add(apiWs)
}
