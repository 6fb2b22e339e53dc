// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// LibraryRatingHistoryTable represents the 'ratinghistory' table.
// One row per (user, title); writes are upserts.
type LibraryRatingHistoryTable struct {
	Table   string
	ID      string
	UserID  string
	Tconst  string
	Rating  string
	RatedAt string
}

// LibraryRatingHistory is the schema definition for ratinghistory
var LibraryRatingHistory = LibraryRatingHistoryTable{
	Table:   "ratinghistory",
	ID:      "rating_id",
	UserID:  "user_id",
	Tconst:  "tconst",
	Rating:  "rating",
	RatedAt: "rated_at",
}
