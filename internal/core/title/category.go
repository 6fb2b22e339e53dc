// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"strings"

	"golang.org/x/text/cases"
)

// Category is the structural kind a raw title type maps to.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryMovie
	CategorySeries
	CategoryEpisode
)

// String returns the lowercase category name used in logs and metrics.
func (c Category) String() string {
	switch c {
	case CategoryMovie:
		return "movie"
	case CategorySeries:
		return "series"
	case CategoryEpisode:
		return "episode"
	default:
		return "unknown"
	}
}

// Folded raw title types.
const (
	rawEpisode = "tvepisode"
	rawSeries  = "series"
)

// movieTypes lists the folded raw types rendered with movie fields.
var movieTypes = map[string]struct{}{
	"movie":     {},
	"short":     {},
	"video":     {},
	"tvmovie":   {},
	"videogame": {},
}

/*
Classify maps a raw title type to its [Category].

Description: Matching is case-insensitive. Surrounding whitespace is not
trimmed, so " movie" is Unknown.

Parameters:
  - rawType: string (e.g. "movie", "tvSeries", "tvEpisode")

Returns:
  - Category: exactly one of the four categories; empty input is Unknown
*/
func Classify(rawType string) Category {
	// Caser values carry state and are not safe for concurrent use.
	folded := cases.Fold().String(rawType)

	if folded == rawEpisode {
		return CategoryEpisode
	}
	if _, ok := movieTypes[folded]; ok {
		return CategoryMovie
	}
	if strings.Contains(folded, rawSeries) {
		return CategorySeries
	}
	return CategoryUnknown
}

// IsMovie reports whether rawType renders with movie fields.
func IsMovie(rawType string) bool { return Classify(rawType) == CategoryMovie }

// IsSeries reports whether rawType renders with series fields.
func IsSeries(rawType string) bool { return Classify(rawType) == CategorySeries }

// IsEpisode reports whether rawType renders with episode fields.
func IsEpisode(rawType string) bool { return Classify(rawType) == CategoryEpisode }
