// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

//go:build integration

package library_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/internal/library"
	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/testinfra"
)

/*
TestLibrary_Integration drives the library store and the overlay merge against PostgreSQL.
*/
func TestLibrary_Integration(t *testing.T) {
	pool := testinfra.StartPostgres(t)
	testinfra.Exec(t, pool,
		`INSERT INTO title (tconst, titletype, primarytitle) VALUES ('tt0000001', 'short', 'Carmencita')`,
		`INSERT INTO person (nconst, primaryname) VALUES ('nm0000001', 'Fred Astaire')`,
	)

	repository := library.NewRepository(pool)
	service := library.NewService(repository, repository, repository)
	merger := library.NewMerger(repository, library.DefaultBreakerSettings, discardLogger())
	ctx := context.Background()

	t.Run("bookmark_idempotent", func(t *testing.T) {
		first, err := service.AddBookmark(ctx, 42, library.TargetInput{Tconst: "tt0000001"})
		require.NoError(t, err)
		second, err := service.AddBookmark(ctx, 42, library.TargetInput{Tconst: "tt0000001"})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Carmencita", second.DisplayName)
	})

	t.Run("bookmark_unknown_title", func(t *testing.T) {
		_, err := service.AddBookmark(ctx, 42, library.TargetInput{Tconst: "tt9999999"})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("rating_upsert", func(t *testing.T) {
		_, err := service.RateTitle(ctx, 42, "tt0000001", 6)
		require.NoError(t, err)
		rating, err := service.RateTitle(ctx, 42, "tt0000001", 8)
		require.NoError(t, err)
		assert.Equal(t, 8.0, rating.Rating)

		ratings, err := service.ListRatings(ctx, 42)
		require.NoError(t, err)
		require.Len(t, ratings, 1)
		assert.Equal(t, "Carmencita", ratings[0].PrimaryTitle)
	})

	t.Run("merge_title", func(t *testing.T) {
		_, err := service.CreateNote(ctx, 42, library.NoteInput{
			TargetInput: library.TargetInput{Tconst: "tt0000001"},
			Content:     "Great",
		})
		require.NoError(t, err)

		overlay, ok := merger.Merge(ctx, 42, library.TitleTarget("tt0000001"))
		require.True(t, ok)
		assert.True(t, overlay.IsBookmarked)
		assert.Equal(t, "Great", *overlay.Note)
		assert.Equal(t, 8.0, *overlay.Rating)
	})

	t.Run("merge_person_has_no_rating", func(t *testing.T) {
		_, err := service.AddBookmark(ctx, 42, library.TargetInput{Nconst: "nm0000001"})
		require.NoError(t, err)

		overlay, ok := merger.Merge(ctx, 42, library.PersonTarget("nm0000001"))
		require.True(t, ok)
		assert.True(t, overlay.IsBookmarked)
		assert.Nil(t, overlay.Note)
		assert.Nil(t, overlay.Rating)
	})

	t.Run("merge_other_user_is_empty", func(t *testing.T) {
		_, ok := merger.Merge(ctx, 7, library.TitleTarget("tt0000001"))
		assert.False(t, ok)
	})

	t.Run("delete_rating_twice", func(t *testing.T) {
		require.NoError(t, service.DeleteRating(ctx, 42, "tt0000001"))
		assert.True(t, apperr.IsNotFound(service.DeleteRating(ctx, 42, "tt0000001")))
	})
}
