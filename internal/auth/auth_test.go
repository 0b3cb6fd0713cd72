package auth_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/completion-agent/internal/auth"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/auth/mocks"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/database"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name        string
		header      []string
		expectToken string
		expectOK    bool
	}{
		{name: "absent", header: nil, expectOK: false},
		{name: "bearer", header: []string{"Bearer abc123"}, expectToken: "abc123", expectOK: true},
		{name: "prefix stripped once", header: []string{"Bearer Bearer abc"}, expectToken: "Bearer abc", expectOK: true},
		{name: "no prefix", header: []string{"abc123"}, expectToken: "abc123", expectOK: true},
		{name: "empty value", header: []string{""}, expectToken: "", expectOK: true},
		{name: "lowercase scheme kept", header: []string{"bearer abc"}, expectToken: "bearer abc", expectOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for _, v := range tt.header {
				header.Add("Authorization", v)
			}

			token, ok := auth.BearerToken(header)
			if ok != tt.expectOK {
				t.Errorf("ok: got %v, want %v", ok, tt.expectOK)
			}
			if token != tt.expectToken {
				t.Errorf("token: got %q, want %q", token, tt.expectToken)
			}
		})
	}
}

func TestAuthorizer_Authorize(t *testing.T) {
	tests := []struct {
		name      string
		user      *database.User
		storeErr  error
		expectErr error
	}{
		{
			name: "known user",
			user: &database.User{Id: "abc123"},
		},
		{
			name:      "unknown user",
			storeErr:  database.ErrNotFound,
			expectErr: auth.ErrUserNotFound,
		},
		{
			name:      "lookup failure is not distinguished",
			storeErr:  errors.New("connection reset"),
			expectErr: auth.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockUserStore(ctrl)
			store.EXPECT().FindUser(gomock.Any(), "abc123").Return(tt.user, tt.storeErr)

			logger := zerolog.Nop()
			authorizer := auth.NewAuthorizer(store, &logger)

			err := authorizer.Authorize(context.Background(), "abc123")
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("Expected %v, got %v", tt.expectErr, err)
			}
		})
	}
}

func TestAuthorizer_LookupFailureDoesNotLogToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const token = "sk-secret-token"

	store := mocks.NewMockUserStore(ctrl)
	store.EXPECT().
		FindUser(gomock.Any(), token).
		Return(nil, fmt.Errorf("Unable to query user, error: %w", errors.New("conn reset")))

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	authorizer := auth.NewAuthorizer(store, &logger)

	if err := authorizer.Authorize(context.Background(), token); !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}

	if !strings.Contains(buf.String(), "User lookup failed") {
		t.Errorf("Expected lookup failure to be logged, got %q", buf.String())
	}
	if strings.Contains(buf.String(), token) {
		t.Errorf("Token leaked into logs: %q", buf.String())
	}
}
