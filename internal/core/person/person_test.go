// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package person_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/internal/core/person"
	"github.com/hidesh/movieapp/internal/library"
	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/pkg/pagination"
	"github.com/hidesh/movieapp/pkg/pointer"
)

// # Mocks

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, params pagination.Params) ([]*person.Person, int, error) {
	args := m.Called(ctx, params)
	people, _ := args.Get(0).([]*person.Person)
	return people, args.Int(1), args.Error(2)
}

func (m *mockRepository) FindByID(ctx context.Context, nconst string) (*person.Person, error) {
	args := m.Called(ctx, nconst)
	found, _ := args.Get(0).(*person.Person)
	return found, args.Error(1)
}

func (m *mockRepository) Exists(ctx context.Context, nconst string) (bool, error) {
	args := m.Called(ctx, nconst)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ListFilmography(ctx context.Context, nconst string) ([]*person.FilmographyEntry, error) {
	args := m.Called(ctx, nconst)
	entries, _ := args.Get(0).([]*person.FilmographyEntry)
	return entries, args.Error(1)
}

type mockMerger struct {
	mock.Mock
}

func (m *mockMerger) MergeClaim(ctx context.Context, claim string, target library.Target) *library.Overlay {
	overlay, _ := m.Called(ctx, claim, target).Get(0).(*library.Overlay)
	return overlay
}

func astaire() *person.Person {
	return &person.Person{
		Nconst:            "nm0000001",
		PrimaryName:       "Fred Astaire",
		BirthYear:         pointer.To(1899),
		DeathYear:         pointer.To(1987),
		PrimaryProfession: pointer.To("soundtrack,actor,miscellaneous"),
	}
}

// # Tests

/*
TestGroupFilmography folds roles per title and deduplicates jobs and characters.
*/
func TestGroupFilmography(t *testing.T) {
	tests := []struct {
		name  string
		roles []person.RoleRow
		want  []*person.FilmographyEntry
	}{
		{
			name:  "empty",
			roles: nil,
			want:  []*person.FilmographyEntry{},
		},
		{
			name: "grouped_in_first_seen_order",
			roles: []person.RoleRow{
				{Tconst: "tt0050419", Title: "Funny Face", StartYear: pointer.To(1957), Job: pointer.To("actor"), CharacterName: pointer.To("Dick Avery")},
				{Tconst: "tt0050419", Title: "Funny Face", StartYear: pointer.To(1957), Job: pointer.To("soundtrack")},
				{Tconst: "tt0050419", Title: "Funny Face", StartYear: pointer.To(1957), Job: pointer.To("actor"), CharacterName: pointer.To("Dick Avery")},
				{Tconst: "tt0027125", Title: "Top Hat", StartYear: pointer.To(1935), PosterURL: pointer.To("top.png"), Job: pointer.To(" "), CharacterName: pointer.To("Jerry Travers")},
			},
			want: []*person.FilmographyEntry{
				{Tconst: "tt0050419", Title: "Funny Face", StartYear: pointer.To(1957), Jobs: []string{"actor", "soundtrack"}, Characters: []string{"Dick Avery"}},
				{Tconst: "tt0027125", Title: "Top Hat", StartYear: pointer.To(1935), PosterURL: pointer.To("top.png"), Jobs: []string{}, Characters: []string{"Jerry Travers"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, person.GroupFilmography(tt.roles))
		})
	}
}

/*
TestService_GetDetails personalizes identified callers with bookmark and note only.
*/
func TestService_GetDetails(t *testing.T) {
	tests := []struct {
		name    string
		claim   string
		overlay *library.Overlay
		want    *person.Overlay
	}{
		{name: "anonymous"},
		{
			name:    "bookmarked_with_note",
			claim:   "42",
			overlay: &library.Overlay{BookmarkID: pointer.To(int64(5)), IsBookmarked: true, Note: pointer.To("Legend")},
			want:    &person.Overlay{BookmarkID: pointer.To(int64(5)), IsBookmarked: true, Note: pointer.To("Legend")},
		},
		{name: "overlay_unavailable", claim: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &mockRepository{}
			merger := &mockMerger{}
			repository.On("FindByID", mock.Anything, "nm0000001").Return(astaire(), nil)
			if tt.claim != "" {
				merger.On("MergeClaim", mock.Anything, tt.claim, library.PersonTarget("nm0000001")).Return(tt.overlay)
			}

			detail, err := person.NewService(repository, merger).GetDetails(context.Background(), "nm0000001", tt.claim)

			require.NoError(t, err)
			assert.Equal(t, "Fred Astaire", detail.PrimaryName)
			assert.Equal(t, tt.want, detail.UserBookmark)
			merger.AssertExpectations(t)
		})
	}
}

/*
TestService_GetFilmography requires the person to exist.
*/
func TestService_GetFilmography(t *testing.T) {
	repository := &mockRepository{}
	repository.On("Exists", mock.Anything, "nm404").Return(false, nil)

	_, err := person.NewService(repository, &mockMerger{}).GetFilmography(context.Background(), "nm404")

	assert.True(t, apperr.IsNotFound(err))
	repository.AssertNotCalled(t, "ListFilmography", mock.Anything, mock.Anything)
}

/*
TestHandler covers the people endpoints and the overlay JSON shape.
*/
func TestHandler(t *testing.T) {
	repository := &mockRepository{}
	merger := &mockMerger{}
	repository.On("List", mock.Anything, pagination.Params{Page: 1, PageSize: 20}).Return([]*person.Person{astaire()}, 1, nil)
	repository.On("FindByID", mock.Anything, "nm0000001").Return(astaire(), nil)
	repository.On("FindByID", mock.Anything, "nm404").Return(nil, apperr.NotFound("Person"))
	merger.On("MergeClaim", mock.Anything, "42", library.PersonTarget("nm0000001")).
		Return(&library.Overlay{IsBookmarked: false, Note: pointer.To("Legend")})

	handler := person.NewHandler(person.NewService(repository, merger))

	serve := func(target, userID string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, target, nil)
		if userID != "" {
			request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: userID}))
		}
		recorder := httptest.NewRecorder()
		handler.Routes().ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("list", func(t *testing.T) {
		recorder := serve("/?pageSize=0", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"page_size":20`)
	})

	t.Run("anonymous_detail", func(t *testing.T) {
		recorder := serve("/nm0000001", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "userBookmark")
	})

	t.Run("personalized_detail", func(t *testing.T) {
		recorder := serve("/nm0000001", "42")
		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

		overlay, ok := envelope.Data["userBookmark"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Legend", overlay["note"])
		assert.Equal(t, false, overlay["isBookmarked"])
		assert.NotContains(t, overlay, "rating")
	})

	t.Run("unknown", func(t *testing.T) {
		recorder := serve("/nm404", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
