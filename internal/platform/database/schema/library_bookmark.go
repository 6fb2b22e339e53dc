// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// LibraryBookmarkTable represents the 'bookmark' table
type LibraryBookmarkTable struct {
	Table        string
	ID           string
	UserID       string
	Tconst       string
	Nconst       string
	BookmarkedAt string
}

// LibraryBookmark is the schema definition for bookmark
var LibraryBookmark = LibraryBookmarkTable{
	Table:        "bookmark",
	ID:           "bookmark_id",
	UserID:       "user_id",
	Tconst:       "tconst",
	Nconst:       "nconst",
	BookmarkedAt: "bookmarked_at",
}
