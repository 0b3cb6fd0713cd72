package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/auth"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/completion"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm"
	"github.com/rs/zerolog"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	completion *completion.Service
	authorizer *auth.Authorizer
	validator  *guardrails.LengthValidator
	database   Pinger
	logger     *zerolog.Logger
}

// NewHandler wires the request pipeline. A nil authorizer disables the
// token check; a nil database skips the health ping.
func NewHandler(
	service *completion.Service,
	authorizer *auth.Authorizer,
	validator *guardrails.LengthValidator,
	database Pinger,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		completion: service,
		authorizer: authorizer,
		validator:  validator,
		database:   database,
		logger:     logger,
	}
}

// Index handles GET /
func (h *Handler) Index(req *restful.Request, resp *restful.Response) {
	middleware.WriteText(resp, http.StatusOK, GreetingMessage)
}

// Finish handles GET /{prompt}
func (h *Handler) Finish(req *restful.Request, resp *restful.Response) {
	prompt := req.PathParameter("prompt")
	ctx := req.Request.Context()

	if h.authorizer != nil {
		token, ok := auth.BearerToken(req.Request.Header)
		if !ok {
			h.logger.Info().Msg("Request without auth token")
			middleware.WriteText(resp, http.StatusOK, MissingTokenMessage)
			return
		}

		if err := h.authorizer.Authorize(ctx, token); err != nil {
			h.logger.Info().Msg("Unknown user token")
			middleware.WriteText(resp, http.StatusOK, UserNotFoundMessage)
			return
		}
	}

	if result := h.validator.Validate(prompt); !result.IsValid {
		h.logger.Info().
			Str("method", result.Method).
			Str("reason", result.Reason).
			Msg("Prompt rejected")
		middleware.WriteText(resp, http.StatusOK, PromptTooLongMessage)
		return
	}

	text, err := h.completion.Complete(ctx, prompt)
	if err != nil {
		status := statusFor(err)
		h.logger.Error().
			Err(err).
			Int("status", status).
			Msg("Completion failed")
		middleware.WriteText(resp, status, middleware.InternalErrorMessage)
		return
	}

	middleware.WriteText(resp, http.StatusOK, text)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	if h.database != nil {
		if err := h.database.Ping(req.Request.Context()); err != nil {
			middleware.HandleError(resp, fmt.Errorf("database ping failed: %w", err), http.StatusServiceUnavailable)
			return
		}
		healthResponse.Database = "ok"
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, llm.ErrTransport),
		errors.Is(err, llm.ErrUpstreamStatus),
		errors.Is(err, llm.ErrDecode),
		errors.Is(err, llm.ErrEmptyChoices):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
