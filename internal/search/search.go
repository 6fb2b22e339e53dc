// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

/*
Package search exposes keyword search over the catalog and the per-user visit history.

Matching itself runs inside the relational store (best_match and
structured_string_search). The visit history is volatile and lives in Redis as a
capped, expiring list per user.
*/
package search

import "time"

// Result is one matching title.
type Result struct {
	Tconst       string `json:"tconst"`
	PrimaryTitle string `json:"primaryTitle"`

	// MatchCount is only set by keyword best-match searches.
	MatchCount *int64 `json:"matchCount"`
}

// Visit is one entry of a user's history, newest first.
type Visit struct {
	Tconst    string    `json:"tconst"`
	Title     string    `json:"title"`
	VisitedAt time.Time `json:"visitedAt"`
}

// Mode labels a search strategy in metrics.
type Mode string

const (
	ModeBestMatch  Mode = "best_match"
	ModeStructured Mode = "structured"
)

const (
	// ParamQuery is the search text parameter.
	ParamQuery = "q"

	// FieldQuery names the query in validation errors.
	FieldQuery = "q"

	// MaxQueryLength bounds the search text in characters.
	MaxQueryLength = 200
)
