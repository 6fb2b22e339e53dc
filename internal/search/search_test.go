// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/internal/search"
	"github.com/hidesh/movieapp/pkg/pagination"
	"github.com/hidesh/movieapp/pkg/pointer"
)

// # Mocks

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) BestMatch(ctx context.Context, keywords []string) ([]*search.Result, error) {
	args := m.Called(ctx, keywords)
	results, _ := args.Get(0).([]*search.Result)
	return results, args.Error(1)
}

func (m *mockRepository) StructuredSearch(ctx context.Context, userID int64, keyword string) ([]*search.Result, error) {
	args := m.Called(ctx, userID, keyword)
	results, _ := args.Get(0).([]*search.Result)
	return results, args.Error(1)
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) RecordVisit(ctx context.Context, userID int64, tconst, primaryTitle string) error {
	return m.Called(ctx, userID, tconst, primaryTitle).Error(0)
}

func (m *mockHistory) ListVisits(ctx context.Context, userID int64, params pagination.Params) ([]*search.Visit, int, error) {
	args := m.Called(ctx, userID, params)
	visits, _ := args.Get(0).([]*search.Visit)
	return visits, args.Int(1), args.Error(2)
}

func (m *mockHistory) ClearVisits(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

// # Tests

/*
TestService_BestMatch splits the query on whitespace and rejects blank input.
*/
func TestService_BestMatch(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantKeywords []string
		wantErr      bool
	}{
		{name: "single", query: "inception", wantKeywords: []string{"inception"}},
		{name: "collapses_whitespace", query: "  star \t wars  ", wantKeywords: []string{"star", "wars"}},
		{name: "blank", query: "   ", wantErr: true},
		{name: "empty", query: "", wantErr: true},
		{name: "too_long", query: strings.Repeat("a", search.MaxQueryLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &mockRepository{}
			if !tt.wantErr {
				repository.On("BestMatch", mock.Anything, tt.wantKeywords).
					Return([]*search.Result{{Tconst: "tt0076759", PrimaryTitle: "Star Wars", MatchCount: pointer.To(int64(2))}}, nil)
			}

			results, err := search.NewService(repository, &mockHistory{}).BestMatch(context.Background(), tt.query)

			if tt.wantErr {
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, apperr.CodeValidation, appErr.Code)
				repository.AssertNotCalled(t, "BestMatch", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, int64(2), *results[0].MatchCount)
		})
	}
}

/*
TestService_StructuredSearch passes the trimmed keyword and the user through.
*/
func TestService_StructuredSearch(t *testing.T) {
	repository := &mockRepository{}
	repository.On("StructuredSearch", mock.Anything, int64(42), "the matrix").
		Return([]*search.Result{{Tconst: "tt0133093", PrimaryTitle: "The Matrix"}}, nil)

	results, err := search.NewService(repository, &mockHistory{}).StructuredSearch(context.Background(), 42, " the matrix ")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].MatchCount)
}

/*
TestHandler covers search and history endpoints including authentication.
*/
func TestHandler(t *testing.T) {
	repository := &mockRepository{}
	history := &mockHistory{}
	repository.On("BestMatch", mock.Anything, []string{"star", "wars"}).Return([]*search.Result{}, nil)
	repository.On("StructuredSearch", mock.Anything, int64(42), "matrix").Return([]*search.Result{}, nil)
	history.On("ListVisits", mock.Anything, int64(42), pagination.Params{Page: 1, PageSize: 20}).Return([]*search.Visit{
		{Tconst: "tt0133093", Title: "The Matrix", VisitedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
	}, 1, nil)
	history.On("ClearVisits", mock.Anything, int64(42)).Return(nil)

	handler := search.NewHandler(search.NewService(repository, history))

	serve := func(router http.Handler, method, target, userID string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, target, nil)
		if userID != "" {
			request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: userID}))
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	tests := []struct {
		name       string
		router     http.Handler
		method     string
		target     string
		userID     string
		wantStatus int
	}{
		{"best_match", handler.Routes(), http.MethodGet, "/?q=star+wars", "", http.StatusOK},
		{"best_match_blank", handler.Routes(), http.MethodGet, "/?q=+", "", http.StatusBadRequest},
		{"structured_anonymous", handler.Routes(), http.MethodGet, "/structured?q=matrix", "", http.StatusUnauthorized},
		{"structured", handler.Routes(), http.MethodGet, "/structured?q=matrix", "42", http.StatusOK},
		{"history_anonymous", handler.HistoryRoutes(), http.MethodGet, "/", "", http.StatusUnauthorized},
		{"history", handler.HistoryRoutes(), http.MethodGet, "/", "42", http.StatusOK},
		{"history_clear", handler.HistoryRoutes(), http.MethodDelete, "/", "42", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(tt.router, tt.method, tt.target, tt.userID)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}

	t.Run("history_payload", func(t *testing.T) {
		recorder := serve(handler.HistoryRoutes(), http.MethodGet, "/", "42")

		var envelope struct {
			Data []map[string]any `json:"data"`
			Meta pagination.Meta  `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "The Matrix", envelope.Data[0]["title"])
		assert.Equal(t, "2026-01-02T03:04:05Z", envelope.Data[0]["visitedAt"])
		assert.Equal(t, 1, envelope.Meta.Total)
	})
}
