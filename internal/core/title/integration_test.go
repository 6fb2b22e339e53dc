// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

//go:build integration

package title_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/internal/core/title"
	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/testinfra"
	"github.com/hidesh/movieapp/pkg/pointer"
)

func seedCatalog(t *testing.T) title.Repository {
	t.Helper()

	pool := testinfra.StartPostgres(t)
	testinfra.Exec(t, pool,
		`INSERT INTO title (tconst, titletype, primarytitle, isadult, startyear, endyear, runtimeminutes) VALUES
			('tt0000001', 'short', 'Carmencita', FALSE, 1894, NULL, 1),
			('tt0903747', 'tvSeries', 'Breaking Bad', FALSE, 2008, 2013, 49),
			('tt0959621', 'tvEpisode', 'Pilot', FALSE, 2008, NULL, 58),
			('tt1054724', 'tvEpisode', 'Cat''s in the Bag...', FALSE, 2008, NULL, 48),
			('tt1232244', 'tvEpisode', 'Seven Thirty-Seven', FALSE, 2009, NULL, 47),
			('tt0133093', 'movie', 'The Matrix', FALSE, 1999, NULL, 136),
			('tt0111161', 'movie', 'The Shawshank Redemption', FALSE, NULL, NULL, 142)`,
		`INSERT INTO title_metadata (tconst, plot, language, released, poster) VALUES
			('tt0133093', 'A hacker learns the truth.', 'English', '31 Mar 1999', 'matrix.png'),
			('tt0959621', 'A chemistry instructor turns to crime.', 'English', '20 Jan 2008', NULL)`,
		`INSERT INTO genre (genre_name) VALUES ('Sci-Fi'), ('Action'), ('Drama')`,
		`INSERT INTO title_genre (title_id, genre_id)
			SELECT 'tt0133093', genre_id FROM genre WHERE genre_name = 'Sci-Fi'`,
		`INSERT INTO title_genre (title_id, genre_id)
			SELECT 'tt0133093', genre_id FROM genre WHERE genre_name = 'Action'`,
		`INSERT INTO title_genre (title_id, genre_id)
			SELECT 'tt0903747', genre_id FROM genre WHERE genre_name = 'Drama'`,
		`INSERT INTO person (nconst, primaryname) VALUES
			('nm0905152', 'Lilly Wachowski'), ('nm0905154', 'Lana Wachowski'), ('nm0000206', 'Keanu Reeves')`,
		`INSERT INTO role (nconst, tconst, job, character_name) VALUES
			('nm0905154', 'tt0133093', 'writer', NULL),
			('nm0905152', 'tt0133093', 'Writer', NULL),
			('nm0000206', 'tt0133093', 'actor', 'Neo'),
			('nm0905154', 'tt0133093', 'director', NULL)`,
		`INSERT INTO episode (tconst, parent_series_id, season_number, episode_number) VALUES
			('tt0959621', 'tt0903747', 1, 1),
			('tt1054724', 'tt0903747', 1, 2),
			('tt1232244', 'tt0903747', 2, 1)`,
		`INSERT INTO rating (tconst, averagerating, numvotes) VALUES
			('tt0133093', 8.7, 2000000),
			('tt0111161', 9.3, 30),
			('tt0903747', 9.5, 2100000)`,
	)

	return title.NewRepository(pool)
}

/*
TestRepository_Integration checks resolution and listing against a real store.
*/
func TestRepository_Integration(t *testing.T) {
	repository := seedCatalog(t)
	resolver := title.NewResolver(repository)
	ctx := context.Background()

	t.Run("movie_detail", func(t *testing.T) {
		detail, err := resolver.Resolve(ctx, "tt0133093")
		require.NoError(t, err)

		assert.Equal(t, []string{"Sci-Fi", "Action"}, detail.Genres)
		assert.Equal(t, "Lana Wachowski, Lilly Wachowski", detail.WriterNames)
		assert.Equal(t, "matrix.png", detail.PosterURL)
		movie := detail.Extension.(title.MovieDetails)
		assert.Equal(t, "31 Mar 1999", movie.ReleaseDate)
	})

	t.Run("series_detail", func(t *testing.T) {
		detail, err := resolver.Resolve(ctx, "tt0903747")
		require.NoError(t, err)
		assert.Equal(t, 2, detail.Extension.(title.SeriesDetails).NumberOfSeasons)
	})

	t.Run("episode_detail", func(t *testing.T) {
		detail, err := resolver.Resolve(ctx, "tt0959621")
		require.NoError(t, err)

		episode := detail.Extension.(title.EpisodeDetails)
		assert.Equal(t, "Breaking Bad", episode.ParentSeriesTitle)
		assert.Equal(t, 1, *episode.SeasonNumber)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "tt404")
		assert.True(t, apperr.IsNotFound(err))
	})

	tests := []struct {
		name      string
		query     title.ListQuery
		wantTotal int
		wantOrder []string
	}{
		{"all_by_title", title.NewListQuery(1, 20, "", "", ""), 4, []string{"tt0903747", "tt0000001", "tt0133093", "tt0111161"}},
		{"movies", title.NewListQuery(1, 20, "movie", "", ""), 3, []string{"tt0000001", "tt0133093", "tt0111161"}},
		{"series", title.NewListQuery(1, 20, "series", "", ""), 1, []string{"tt0903747"}},
		{"genre_case_insensitive", title.NewListQuery(1, 20, "", "sci-fi", ""), 1, []string{"tt0133093"}},
		{"top_rated_needs_votes", title.NewListQuery(1, 20, "", "", "top-rated"), 2, []string{"tt0903747", "tt0133093"}},
		{"newest", title.NewListQuery(1, 20, "", "", "newest"), 4, []string{"tt0903747", "tt0133093", "tt0000001", "tt0111161"}},
		{"oldest", title.NewListQuery(1, 20, "", "", "oldest"), 4, []string{"tt0000001", "tt0133093", "tt0903747", "tt0111161"}},
		{"second_page", title.NewListQuery(2, 3, "", "", ""), 4, []string{"tt0111161"}},
		{"past_the_end", title.NewListQuery(9, 3, "", "", ""), 4, []string{}},
	}

	for _, tt := range tests {
		t.Run("list_"+tt.name, func(t *testing.T) {
			items, total, err := repository.List(ctx, tt.query)
			require.NoError(t, err)

			got := make([]string, 0, len(items))
			for _, item := range items {
				got = append(got, item.Tconst)
			}
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantOrder, got)
		})
	}

	t.Run("episodes_by_season", func(t *testing.T) {
		episodes, err := repository.ListEpisodes(ctx, "tt0903747", nil)
		require.NoError(t, err)
		require.Len(t, episodes, 3)
		assert.Equal(t, "tt1232244", episodes[2].Tconst)

		second, err := repository.ListEpisodes(ctx, "tt0903747", pointer.To(2))
		require.NoError(t, err)
		require.Len(t, second, 1)
	})
}
