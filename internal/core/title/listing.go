// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"strings"

	"github.com/hidesh/movieapp/pkg/pagination"
)

// TypeFilter restricts a listing to a family of title types.
type TypeFilter string

const (
	TypeAny    TypeFilter = ""
	TypeMovie  TypeFilter = "movie"
	TypeSeries TypeFilter = "series"
)

// SortKey selects a listing order.
type SortKey string

const (
	SortTitle    SortKey = ""
	SortTopRated SortKey = "top-rated"
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
)

// TopRatedMinVotes is the vote count a title needs to appear under top-rated.
const TopRatedMinVotes = 50

// Query parameter names accepted by the listing endpoint.
const (
	ParamType   = "type"
	ParamGenre  = "genre"
	ParamSort   = "sort"
	ParamSeason = "season"
)

// ListQuery is a normalized catalog listing request.
type ListQuery struct {
	pagination.Params
	Type  TypeFilter
	Genre string
	Sort  SortKey
}

/*
NewListQuery normalizes raw listing input. It never fails.

Parameters:
  - page: int (below 1 becomes 1)
  - pageSize: int (outside (1, 500] becomes 20)
  - rawType: string ("movie", "series", anything else means no filter)
  - genre: string (matched case-insensitively, blank means no filter)
  - rawSort: string ("top-rated", "newest", "oldest", anything else sorts by title)

Returns:
  - ListQuery: The normalized query
*/
func NewListQuery(page, pageSize int, rawType, genre, rawSort string) ListQuery {
	return ListQuery{
		Params: pagination.Normalize(page, pageSize),
		Type:   ParseTypeFilter(rawType),
		Genre:  strings.TrimSpace(genre),
		Sort:   ParseSortKey(rawSort),
	}
}

// ParseTypeFilter maps free input onto a known filter, defaulting to [TypeAny].
func ParseTypeFilter(raw string) TypeFilter {
	switch TypeFilter(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeMovie:
		return TypeMovie
	case TypeSeries:
		return TypeSeries
	default:
		return TypeAny
	}
}

// ParseSortKey maps free input onto a known sort, defaulting to [SortTitle].
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortTopRated:
		return SortTopRated
	case SortNewest:
		return SortNewest
	case SortOldest:
		return SortOldest
	default:
		return SortTitle
	}
}

// label names the filter in metrics.
func (f TypeFilter) label() string {
	if f == TypeAny {
		return "any"
	}
	return string(f)
}

// label names the sort in metrics.
func (s SortKey) label() string {
	if s == SortTitle {
		return "title"
	}
	return string(s)
}
