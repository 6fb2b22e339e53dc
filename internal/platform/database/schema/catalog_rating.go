// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// CatalogRatingTable represents the 'rating' aggregate table
type CatalogRatingTable struct {
	Table         string
	Tconst        string
	AverageRating string
	NumVotes      string
}

// CatalogRating is the schema definition for rating
var CatalogRating = CatalogRatingTable{
	Table:         "rating",
	Tconst:        "tconst",
	AverageRating: "averagerating",
	NumVotes:      "numvotes",
}
