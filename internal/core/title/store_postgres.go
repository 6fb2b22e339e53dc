// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hidesh/movieapp/internal/platform/database/schema"
	"github.com/hidesh/movieapp/internal/platform/dberr"
)

// # PostgreSQL Repository

// titleRepository implements [Repository] using pgx.
type titleRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed title store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &titleRepository{pool: pool}
}

// qualify prefixes each column with a table alias and joins them for a SELECT list.
func qualify(alias string, columns ...string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

// titleColumns follows the scan order of [scanTitle].
var titleColumns = qualify("t", schema.CatalogTitle.Columns()...)

func scanTitle(row pgx.Row) (*Title, error) {
	title := &Title{}
	if err := row.Scan(
		&title.Tconst,
		&title.TitleType,
		&title.PrimaryTitle,
		&title.OriginalTitle,
		&title.IsAdult,
		&title.StartYear,
		&title.EndYear,
		&title.RuntimeMinutes,
	); err != nil {
		return nil, err
	}
	return title, nil
}

// # Detail Lookups

/*
FindByID retrieves a title by its tconst.

Parameters:
  - context: context.Context
  - tconst: string

Returns:
  - *Title: The title row
  - error: apperr.NotFound if missing, internal error otherwise
*/
func (repository *titleRepository) FindByID(context context.Context, tconst string) (*Title, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s t WHERE t.%s = $1`,
		titleColumns,
		schema.CatalogTitle.Table,
		schema.CatalogTitle.Tconst,
	)

	title, err := scanTitle(repository.pool.QueryRow(context, query, tconst))
	if err != nil {
		return nil, dberr.Wrap(err, "Title", "find title")
	}
	return title, nil
}

// FindMetadata loads the descriptive record of a title, if any.
func (repository *titleRepository) FindMetadata(context context.Context, tconst string) (*Metadata, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogTitleMetadata.Plot,
		schema.CatalogTitleMetadata.Rated,
		schema.CatalogTitleMetadata.Language,
		schema.CatalogTitleMetadata.Released,
		schema.CatalogTitleMetadata.Country,
		schema.CatalogTitleMetadata.Poster,
		schema.CatalogTitleMetadata.Table,
		schema.CatalogTitleMetadata.Tconst,
	)

	metadata := &Metadata{}
	err := repository.pool.QueryRow(context, query, tconst).Scan(
		&metadata.Plot,
		&metadata.Rated,
		&metadata.Language,
		&metadata.Released,
		&metadata.Country,
		&metadata.Poster,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find metadata: %w", err)
	}
	return metadata, nil
}

// ListGenreNames returns genre names in the order they were associated.
func (repository *titleRepository) ListGenreNames(context context.Context, tconst string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT g.%s
		FROM %s tg
		JOIN %s g ON g.%s = tg.%s
		WHERE tg.%s = $1
		ORDER BY tg.%s`,
		schema.CatalogGenre.Name,
		schema.CatalogTitleGenre.Table,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID, schema.CatalogTitleGenre.GenreID,
		schema.CatalogTitleGenre.TitleID,
		schema.CatalogTitleGenre.Ordinal,
	)

	return repository.queryStrings(context, query, "genres", tconst)
}

// ListWriterNames returns the names credited with the writer job, in credit order.
func (repository *titleRepository) ListWriterNames(context context.Context, tconst string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT p.%s
		FROM %s r
		JOIN %s p ON p.%s = r.%s
		WHERE r.%s = $1 AND LOWER(r.%s) = 'writer'
		ORDER BY r.%s`,
		schema.CatalogPerson.PrimaryName,
		schema.CatalogRole.Table,
		schema.CatalogPerson.Table, schema.CatalogPerson.Nconst, schema.CatalogRole.Nconst,
		schema.CatalogRole.Tconst, schema.CatalogRole.Job,
		schema.CatalogRole.ID,
	)

	return repository.queryStrings(context, query, "writers", tconst)
}

// ListSeasonNumbers returns the season number of each episode of a series.
func (repository *titleRepository) ListSeasonNumbers(context context.Context, seriesID string) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NOT NULL`,
		schema.CatalogEpisode.SeasonNumber,
		schema.CatalogEpisode.Table,
		schema.CatalogEpisode.ParentSeriesID,
		schema.CatalogEpisode.SeasonNumber,
	)

	rows, err := repository.pool.Query(context, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list seasons: %w", err)
	}

	seasons, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan seasons: %w", err)
	}
	return seasons, nil
}

// FindEpisodeLink loads the episode row of a title, if any.
func (repository *titleRepository) FindEpisodeLink(context context.Context, tconst string) (*EpisodeLink, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogEpisode.SeasonNumber,
		schema.CatalogEpisode.EpisodeNumber,
		schema.CatalogEpisode.ParentSeriesID,
		schema.CatalogEpisode.Table,
		schema.CatalogEpisode.Tconst,
	)

	link := &EpisodeLink{}
	err := repository.pool.QueryRow(context, query, tconst).Scan(
		&link.SeasonNumber,
		&link.EpisodeNumber,
		&link.ParentSeriesID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find episode: %w", err)
	}
	return link, nil
}

// FindPrimaryTitle returns the display name of a title.
func (repository *titleRepository) FindPrimaryTitle(context context.Context, tconst string) (string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.CatalogTitle.PrimaryTitle,
		schema.CatalogTitle.Table,
		schema.CatalogTitle.Tconst,
	)

	var primaryTitle string
	if err := repository.pool.QueryRow(context, query, tconst).Scan(&primaryTitle); err != nil {
		return "", dberr.Wrap(err, "Title", "find primary title")
	}
	return primaryTitle, nil
}

// Exists reports whether a title row exists.
func (repository *titleRepository) Exists(context context.Context, tconst string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogTitle.Table,
		schema.CatalogTitle.Tconst,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, tconst).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Title", "check title")
	}
	return exists, nil
}

func (repository *titleRepository) queryStrings(context context.Context, query, what string, args ...any) ([]string, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list %s: %w", what, err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan %s: %w", what, err)
	}
	return values, nil
}

// # Catalog Listing

// movieTypeFilter lists the raw types the "movie" listing filter keeps.
const movieTypeFilter = `('movie', 'tvMovie', 'short')`

// seriesTypePattern is appended verbatim; it must never pass through a format verb.
const seriesTypePattern = `'%series%'`

/*
buildListStatements assembles the page and count queries for a listing.

Description: Both statements share the same FROM and WHERE so the total always
matches the filtered set. The page statement appends ORDER BY and LIMIT/OFFSET.

Returns:
  - string: page SQL
  - string: count SQL
  - []any: arguments of the count SQL
  - []any: arguments of the page SQL (count arguments plus limit and offset)
*/
func buildListStatements(query ListQuery) (string, string, []any, []any) {
	var where strings.Builder
	var args []any
	argID := 1

	where.WriteString(fmt.Sprintf(`
		FROM %s t
		LEFT JOIN %s m ON m.%s = t.%s
		LEFT JOIN %s r ON r.%s = t.%s
		WHERE LOWER(COALESCE(t.%s, '')) <> 'tvepisode'`,
		schema.CatalogTitle.Table,
		schema.CatalogTitleMetadata.Table, schema.CatalogTitleMetadata.Tconst, schema.CatalogTitle.Tconst,
		schema.CatalogRating.Table, schema.CatalogRating.Tconst, schema.CatalogTitle.Tconst,
		schema.CatalogTitle.TitleType,
	))

	// Type family
	switch query.Type {
	case TypeMovie:
		where.WriteString(fmt.Sprintf(" AND t.%s IN %s", schema.CatalogTitle.TitleType, movieTypeFilter))
	case TypeSeries:
		where.WriteString(" AND t." + schema.CatalogTitle.TitleType + " ILIKE " + seriesTypePattern)
	}

	// Genre membership
	if query.Genre != "" {
		where.WriteString(fmt.Sprintf(`
		AND EXISTS (
			SELECT 1 FROM %s tg
			JOIN %s g ON g.%s = tg.%s
			WHERE tg.%s = t.%s AND LOWER(g.%s) = LOWER($%d)
		)`,
			schema.CatalogTitleGenre.Table,
			schema.CatalogGenre.Table, schema.CatalogGenre.ID, schema.CatalogTitleGenre.GenreID,
			schema.CatalogTitleGenre.TitleID, schema.CatalogTitle.Tconst,
			schema.CatalogGenre.Name, argID,
		))
		args = append(args, query.Genre)
		argID++
	}

	// Top-rated only considers titles with enough votes
	if query.Sort == SortTopRated {
		where.WriteString(fmt.Sprintf(" AND r.%s >= $%d", schema.CatalogRating.NumVotes, argID))
		args = append(args, TopRatedMinVotes)
		argID++
	}

	countSQL := "SELECT COUNT(*)" + where.String()

	listSQL := fmt.Sprintf(`SELECT %s, m.%s, r.%s, r.%s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		titleColumns,
		schema.CatalogTitleMetadata.Poster,
		schema.CatalogRating.AverageRating,
		schema.CatalogRating.NumVotes,
		where.String(),
		orderBy(query.Sort),
		argID, argID+1,
	)

	listArgs := append(append([]any{}, args...), query.PageSize, query.Offset())
	return listSQL, countSQL, args, listArgs
}

// orderBy returns the ORDER BY list for a sort key. Every order ends on title then tconst.
func orderBy(sort SortKey) string {
	tail := fmt.Sprintf("t.%s ASC, t.%s ASC", schema.CatalogTitle.PrimaryTitle, schema.CatalogTitle.Tconst)

	switch sort {
	case SortTopRated:
		return fmt.Sprintf("r.%s DESC, %s", schema.CatalogRating.AverageRating, tail)
	case SortNewest:
		return fmt.Sprintf("COALESCE(t.%s, 0) DESC, %s", schema.CatalogTitle.StartYear, tail)
	case SortOldest:
		return fmt.Sprintf("COALESCE(t.%s, %d) ASC, %s", schema.CatalogTitle.StartYear, math.MaxInt32, tail)
	default:
		return tail
	}
}

/*
List returns one page of the catalog and the total matching count.

Description: The total comes from a separate COUNT query so that a page past
the end still reports how many titles match.

Parameters:
  - context: context.Context
  - query: ListQuery

Returns:
  - []*ListItem: The requested page
  - int: Total matching titles
  - error: Database execution errors
*/
func (repository *titleRepository) List(context context.Context, query ListQuery) ([]*ListItem, int, error) {
	listSQL, countSQL, countArgs, listArgs := buildListStatements(query)

	// 1. Total
	var total int
	if err := repository.pool.QueryRow(context, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to count titles: %w", err)
	}

	// 2. Page
	rows, err := repository.pool.Query(context, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list titles: %w", err)
	}
	defer rows.Close()

	items := []*ListItem{}
	for rows.Next() {
		item := &ListItem{}
		if err := rows.Scan(
			&item.Tconst,
			&item.TitleType,
			&item.PrimaryTitle,
			&item.OriginalTitle,
			&item.IsAdult,
			&item.StartYear,
			&item.EndYear,
			&item.RuntimeMinutes,
			&item.PosterURL,
			&item.AverageRating,
			&item.NumVotes,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan title: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to iterate titles: %w", err)
	}

	return items, total, nil
}

// # Sub-resources

// ListEpisodes returns a series' episodes, optionally for one season.
func (repository *titleRepository) ListEpisodes(context context.Context, seriesID string, season *int) ([]*EpisodeItem, error) {
	var queryBuilder strings.Builder
	args := []any{seriesID}

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT e.%s, t.%s, e.%s, e.%s, t.%s, m.%s, m.%s
		FROM %s e
		JOIN %s t ON t.%s = e.%s
		LEFT JOIN %s m ON m.%s = e.%s
		WHERE e.%s = $1`,
		schema.CatalogEpisode.Tconst,
		schema.CatalogTitle.PrimaryTitle,
		schema.CatalogEpisode.SeasonNumber,
		schema.CatalogEpisode.EpisodeNumber,
		schema.CatalogTitle.StartYear,
		schema.CatalogTitleMetadata.Plot,
		schema.CatalogTitleMetadata.Poster,
		schema.CatalogEpisode.Table,
		schema.CatalogTitle.Table, schema.CatalogTitle.Tconst, schema.CatalogEpisode.Tconst,
		schema.CatalogTitleMetadata.Table, schema.CatalogTitleMetadata.Tconst, schema.CatalogEpisode.Tconst,
		schema.CatalogEpisode.ParentSeriesID,
	))

	// Single season
	if season != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND e.%s = $2", schema.CatalogEpisode.SeasonNumber))
		args = append(args, *season)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY e.%s ASC NULLS LAST, e.%s ASC NULLS LAST, e.%s ASC",
		schema.CatalogEpisode.SeasonNumber,
		schema.CatalogEpisode.EpisodeNumber,
		schema.CatalogEpisode.Tconst,
	))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list episodes: %w", err)
	}
	defer rows.Close()

	episodes := []*EpisodeItem{}
	for rows.Next() {
		episode := &EpisodeItem{}
		if err := rows.Scan(
			&episode.Tconst,
			&episode.EpisodeTitle,
			&episode.SeasonNumber,
			&episode.EpisodeNumber,
			&episode.StartYear,
			&episode.Plot,
			&episode.PosterURL,
		); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan episode: %w", err)
		}
		episodes = append(episodes, episode)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate episodes: %w", err)
	}
	return episodes, nil
}

// ListCredits returns cast and crew of a title in credit order.
func (repository *titleRepository) ListCredits(context context.Context, tconst string) ([]*Credit, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, r.%s, r.%s
		FROM %s r
		JOIN %s p ON p.%s = r.%s
		WHERE r.%s = $1
		ORDER BY r.%s`,
		schema.CatalogPerson.Nconst,
		schema.CatalogPerson.PrimaryName,
		schema.CatalogRole.Job,
		schema.CatalogRole.CharacterName,
		schema.CatalogRole.Table,
		schema.CatalogPerson.Table, schema.CatalogPerson.Nconst, schema.CatalogRole.Nconst,
		schema.CatalogRole.Tconst,
		schema.CatalogRole.ID,
	)

	rows, err := repository.pool.Query(context, query, tconst)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list credits: %w", err)
	}

	credits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Credit, error) {
		credit := &Credit{}
		err := row.Scan(&credit.Nconst, &credit.Name, &credit.Job, &credit.CharacterName)
		return credit, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan credits: %w", err)
	}
	return credits, nil
}

/*
FindRatingSummary aggregates the catalog rating and the community's current ratings.

Returns:
  - *RatingSummary: Aggregates; averages are nil when nobody has voted
  - error: apperr.NotFound when the title does not exist
*/
func (repository *titleRepository) FindRatingSummary(context context.Context, tconst string) (*RatingSummary, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, r.%s, r.%s,
			(SELECT COUNT(*) FROM %s h WHERE h.%s = t.%s),
			(SELECT AVG(h.%s)::float8 FROM %s h WHERE h.%s = t.%s)
		FROM %s t
		LEFT JOIN %s r ON r.%s = t.%s
		WHERE t.%s = $1`,
		schema.CatalogTitle.Tconst,
		schema.CatalogRating.AverageRating,
		schema.CatalogRating.NumVotes,
		schema.LibraryRatingHistory.Table, schema.LibraryRatingHistory.Tconst, schema.CatalogTitle.Tconst,
		schema.LibraryRatingHistory.Rating, schema.LibraryRatingHistory.Table, schema.LibraryRatingHistory.Tconst, schema.CatalogTitle.Tconst,
		schema.CatalogTitle.Table,
		schema.CatalogRating.Table, schema.CatalogRating.Tconst, schema.CatalogTitle.Tconst,
		schema.CatalogTitle.Tconst,
	)

	summary := &RatingSummary{}
	err := repository.pool.QueryRow(context, query, tconst).Scan(
		&summary.Tconst,
		&summary.AverageRating,
		&summary.NumVotes,
		&summary.CommunityCount,
		&summary.CommunityAverage,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Title", "summarize ratings")
	}
	return summary, nil
}
