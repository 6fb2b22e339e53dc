// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/pkg/pagination"
)

/*
TestNewListQuery normalizes paging, type and sort without ever failing.
*/
func TestNewListQuery(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		rawType      string
		genre        string
		rawSort      string
		wantPage     int
		wantPageSize int
		wantType     TypeFilter
		wantGenre    string
		wantSort     SortKey
	}{
		{"defaults", 0, 0, "", "", "", 1, 20, TypeAny, "", SortTitle},
		{"page_size_one", 2, 1, "movie", "", "", 2, 20, TypeMovie, "", SortTitle},
		{"page_size_max", 1, 500, "Series", "", "newest", 1, 500, TypeSeries, "", SortNewest},
		{"page_size_over_max", 1, 501, "", "", "OLDEST", 1, 20, TypeAny, "", SortOldest},
		{"negative_page", -3, 10, "documentary", " Drama ", "top-rated", 1, 10, TypeAny, "Drama", SortTopRated},
		{"unknown_sort", 4, 50, "", "", "popular", 4, 50, TypeAny, "", SortTitle},
		{"huge_page", math.MaxInt, 20, "", "", "", pagination.MaxPage, 20, TypeAny, "", SortTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewListQuery(tt.page, tt.pageSize, tt.rawType, tt.genre, tt.rawSort)

			assert.Equal(t, tt.wantPage, query.Page)
			assert.Equal(t, tt.wantPageSize, query.PageSize)
			assert.Equal(t, tt.wantType, query.Type)
			assert.Equal(t, tt.wantGenre, query.Genre)
			assert.Equal(t, tt.wantSort, query.Sort)
			assert.GreaterOrEqual(t, query.Offset(), 0)
		})
	}
}

/*
TestBuildListStatements checks filters, placeholders and argument order.
*/
func TestBuildListStatements(t *testing.T) {
	t.Run("no_filters", func(t *testing.T) {
		listSQL, countSQL, countArgs, listArgs := buildListStatements(NewListQuery(3, 10, "", "", ""))

		assert.Contains(t, countSQL, "<> 'tvepisode'")
		assert.Contains(t, listSQL, "<> 'tvepisode'")
		assert.Contains(t, listSQL, "LIMIT $1 OFFSET $2")
		assert.Empty(t, countArgs)
		assert.Equal(t, []any{10, 20}, listArgs)
	})

	t.Run("series_pattern_survives_formatting", func(t *testing.T) {
		listSQL, countSQL, _, _ := buildListStatements(NewListQuery(1, 20, "series", "", ""))

		assert.Contains(t, countSQL, "ILIKE '%series%'")
		assert.Contains(t, listSQL, "ILIKE '%series%'")
		assert.NotContains(t, listSQL, "%!")
		assert.NotContains(t, countSQL, "%!")
	})

	t.Run("movie_filter", func(t *testing.T) {
		listSQL, _, _, _ := buildListStatements(NewListQuery(1, 20, "movie", "", ""))

		assert.Contains(t, listSQL, "IN ('movie', 'tvMovie', 'short')")
		assert.NotContains(t, listSQL, "ILIKE")
	})

	t.Run("genre_and_top_rated", func(t *testing.T) {
		listSQL, countSQL, countArgs, listArgs := buildListStatements(NewListQuery(2, 25, "", "drama", "top-rated"))

		assert.Contains(t, countSQL, "LOWER($1)")
		assert.Contains(t, countSQL, ">= $2")
		assert.Contains(t, listSQL, "LIMIT $3 OFFSET $4")
		assert.Equal(t, []any{"drama", TopRatedMinVotes}, countArgs)
		assert.Equal(t, []any{"drama", 50, 25, 25}, listArgs)
	})

	t.Run("count_has_no_paging", func(t *testing.T) {
		_, countSQL, _, _ := buildListStatements(NewListQuery(1, 20, "", "", "newest"))

		require.True(t, strings.HasPrefix(countSQL, "SELECT COUNT(*)"))
		assert.NotContains(t, countSQL, "LIMIT")
		assert.NotContains(t, countSQL, "ORDER BY")
	})
}

/*
TestOrderBy ends every order with the title and tconst tie-breakers.
*/
func TestOrderBy(t *testing.T) {
	tests := []struct {
		sort SortKey
		want string
	}{
		{SortTitle, "t.primarytitle ASC, t.tconst ASC"},
		{SortTopRated, "r.averagerating DESC, t.primarytitle ASC, t.tconst ASC"},
		{SortNewest, "COALESCE(t.startyear, 0) DESC, t.primarytitle ASC, t.tconst ASC"},
		{SortOldest, "COALESCE(t.startyear, 2147483647) ASC, t.primarytitle ASC, t.tconst ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.sort.label(), func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.sort))
		})
	}
}
