package auth

import (
	"context"
	"errors"

	"github.com/povarna/generative-ai-agents/completion-agent/internal/database"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=authorizer.go -destination=mocks/mock_store.go -package=mocks

var ErrUserNotFound = errors.New("auth: user not found")

// UserStore looks up users by primary key. *database.DB implements it.
type UserStore interface {
	FindUser(ctx context.Context, id string) (*database.User, error)
}

type Authorizer struct {
	store  UserStore
	logger *zerolog.Logger
}

func NewAuthorizer(store UserStore, logger *zerolog.Logger) *Authorizer {
	return &Authorizer{
		store:  store,
		logger: logger,
	}
}

// Authorize reports ErrUserNotFound both for unknown tokens and for failed
// lookups. Lookup failures are logged.
func (a *Authorizer) Authorize(ctx context.Context, token string) error {
	_, err := a.store.FindUser(ctx, token)
	if err == nil {
		return nil
	}

	if !errors.Is(err, database.ErrNotFound) {
		a.logger.Warn().Err(err).Msg("User lookup failed")
	}

	return ErrUserNotFound
}
