// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import "context"

// # Detail Data Access

// DetailRepository supplies the lookups a [Resolver] fans out to.
type DetailRepository interface {

	/*
		FindByID retrieves a title row.

		Parameters:
		  - context: context.Context
		  - tconst: string

		Returns:
		  - *Title: The title
		  - error: apperr.NotFound when no title has this identifier
	*/
	FindByID(context context.Context, tconst string) (*Title, error)

	// FindMetadata returns (nil, nil) when the title has no metadata row.
	FindMetadata(context context.Context, tconst string) (*Metadata, error)

	// ListGenreNames returns genre names in association order.
	ListGenreNames(context context.Context, tconst string) ([]string, error)

	// ListWriterNames returns the names of people credited with the writer job,
	// in credit order. Duplicates are returned as stored.
	ListWriterNames(context context.Context, tconst string) ([]string, error)

	// ListSeasonNumbers returns the non-null season number of every episode of a series.
	ListSeasonNumbers(context context.Context, seriesID string) ([]int, error)

	// FindEpisodeLink returns (nil, nil) when the title has no episode row.
	FindEpisodeLink(context context.Context, tconst string) (*EpisodeLink, error)

	// FindPrimaryTitle returns a title's display name.
	FindPrimaryTitle(context context.Context, tconst string) (string, error)
}

// # Catalog Data Access

// Repository is the full catalog read contract for titles.
type Repository interface {
	DetailRepository

	/*
		List returns one page of the catalog and the total matching count.

		Parameters:
		  - context: context.Context
		  - query: ListQuery (already normalized)

		Returns:
		  - []*ListItem: The page, episodes excluded
		  - int: Total titles matching the filters
		  - error: Database execution errors
	*/
	List(context context.Context, query ListQuery) ([]*ListItem, int, error)

	// ListEpisodes returns a series' episodes ordered by season then episode number.
	ListEpisodes(context context.Context, seriesID string, season *int) ([]*EpisodeItem, error)

	// ListCredits returns cast and crew in credit order.
	ListCredits(context context.Context, tconst string) ([]*Credit, error)

	// FindRatingSummary aggregates catalog and community ratings for a title.
	FindRatingSummary(context context.Context, tconst string) (*RatingSummary, error)

	// Exists reports whether a title row exists.
	Exists(context context.Context, tconst string) (bool, error)
}
