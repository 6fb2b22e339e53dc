// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidesh/movieapp/internal/api"
	"github.com/hidesh/movieapp/internal/core/person"
	"github.com/hidesh/movieapp/internal/core/title"
	"github.com/hidesh/movieapp/internal/library"
	"github.com/hidesh/movieapp/internal/platform/config"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/internal/search"
)

type rejectingVerifier struct{}

func (rejectingVerifier) VerifyToken(string) (*sec.AuthClaims, error) {
	return nil, errors.New("invalid token")
}

func newTestServer(t *testing.T, databaseErr error) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return databaseErr },
		CheckCache:    func(context.Context) error { return nil },
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, &config.Config{
		ServerPort:     "0",
		Environment:    "test",
		AllowedOrigins: []string{"http://localhost:3000"},
	}, logger, rejectingVerifier{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Title:     title.NewHandler(nil),
		Person:    person.NewHandler(nil),
		Library:   library.NewHandler(nil),
		Search:    search.NewHandler(nil),
	})
	return server.Handler()
}

/*
TestServer_Routing checks probes, metrics and the authentication boundary of /me.
*/
func TestServer_Routing(t *testing.T) {
	tests := []struct {
		name       string
		databaseOK bool
		target     string
		token      string
		wantStatus int
	}{
		{"liveness", true, "/health", "", http.StatusOK},
		{"ready", true, "/ready", "", http.StatusOK},
		{"degraded", false, "/ready", "", http.StatusServiceUnavailable},
		{"metrics", true, "/metrics", "", http.StatusOK},
		{"me_anonymous", true, "/api/v1/me/bookmarks", "", http.StatusUnauthorized},
		{"history_anonymous", true, "/api/v1/me/history", "", http.StatusUnauthorized},
		{"bad_token", true, "/api/v1/titles", "Bearer nope", http.StatusUnauthorized},
		{"unknown_route", true, "/api/v1/studios", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var databaseErr error
			if !tt.databaseOK {
				databaseErr = errors.New("connection refused")
			}

			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.token != "" {
				request.Header.Set("Authorization", tt.token)
			}
			recorder := httptest.NewRecorder()
			newTestServer(t, databaseErr).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}
}
