// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package search

import (
	"context"

	"github.com/hidesh/movieapp/pkg/pagination"
)

// Repository runs the catalog search functions.
type Repository interface {
	// BestMatch ranks titles by how many keywords they match.
	BestMatch(context context.Context, keywords []string) ([]*Result, error)

	// StructuredSearch runs the personalized single-keyword search.
	StructuredSearch(context context.Context, userID int64, keyword string) ([]*Result, error)
}

// HistoryRepository stores recently visited titles per user.
type HistoryRepository interface {
	RecordVisit(context context.Context, userID int64, tconst, primaryTitle string) error

	// ListVisits returns a page of visits newest first and the number kept.
	ListVisits(context context.Context, userID int64, params pagination.Params) ([]*Visit, int, error)

	ClearVisits(context context.Context, userID int64) error
}
