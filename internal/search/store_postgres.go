// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// # PostgreSQL Repository

// searchRepository implements [Repository] on top of the stored search functions.
type searchRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed search store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &searchRepository{pool: pool}
}

/*
BestMatch calls best_match with the keywords bound as one text[] parameter.

Parameters:
  - context: context.Context
  - keywords: []string (already split and non-empty)

Returns:
  - []*Result: Titles ordered by match count as the function returns them
  - error: Database execution errors
*/
func (repository *searchRepository) BestMatch(context context.Context, keywords []string) ([]*Result, error) {
	const query = `SELECT tconst, primarytitle, match_count FROM best_match($1::text[])`

	rows, err := repository.pool.Query(context, query, keywords)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to run best match: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Result, error) {
		result := &Result{}
		err := row.Scan(&result.Tconst, &result.PrimaryTitle, &result.MatchCount)
		return result, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan best match: %w", err)
	}
	return results, nil
}

// StructuredSearch calls structured_string_search; results carry no match count.
func (repository *searchRepository) StructuredSearch(context context.Context, userID int64, keyword string) ([]*Result, error) {
	const query = `SELECT tconst, primarytitle FROM structured_string_search($1, $2)`

	rows, err := repository.pool.Query(context, query, userID, keyword)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to run structured search: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Result, error) {
		result := &Result{}
		err := row.Scan(&result.Tconst, &result.PrimaryTitle)
		return result, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan structured search: %w", err)
	}
	return results, nil
}
