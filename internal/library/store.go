// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package library

import "context"

// # Overlay Data Access

// OverlayReader resolves the latest personal records for one (user, target) pair.
// Each method returns (nil, nil) when the user has no matching record.
type OverlayReader interface {

	/*
		LatestBookmark returns the most recently created bookmark.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - target: Target (title or person)

		Returns:
		  - *Bookmark: newest by bookmarked_at, ties broken by highest id
		  - error: storage failures
	*/
	LatestBookmark(context context.Context, userID int64, target Target) (*Bookmark, error)

	/*
		LatestNote returns the note whose latest timestamp (updated or created) is newest.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - target: Target (title or person)

		Returns:
		  - *Note: newest by GREATEST(noted_at, updated_at), ties broken by highest id
		  - error: storage failures
	*/
	LatestNote(context context.Context, userID int64, target Target) (*Note, error)

	// LatestRating returns the newest rating of a title by rated_at.
	LatestRating(context context.Context, userID int64, tconst string) (*Rating, error)
}

// # Library Data Access

// BookmarkRepository manages a user's bookmarks.
type BookmarkRepository interface {
	// ListBookmarks returns a page of bookmarks, newest first, with the total count.
	ListBookmarks(context context.Context, userID int64, limit, offset int) ([]*Bookmark, int, error)

	// AddBookmark is idempotent per (user, target) and returns the stored bookmark.
	AddBookmark(context context.Context, userID int64, target Target) (*Bookmark, error)

	// DeleteBookmark removes a bookmark owned by the user. Missing rows yield NOT_FOUND.
	DeleteBookmark(context context.Context, userID, bookmarkID int64) error
}

// NoteRepository manages a user's notes.
type NoteRepository interface {
	// ListNotes returns notes newest first, optionally restricted to one target.
	ListNotes(context context.Context, userID int64, target *Target) ([]*Note, error)

	CreateNote(context context.Context, userID int64, target Target, content string) (*Note, error)

	// UpdateNote replaces the content and stamps updated_at.
	UpdateNote(context context.Context, userID, noteID int64, content string) (*Note, error)

	DeleteNote(context context.Context, userID, noteID int64) error
}

// RatingRepository manages a user's title ratings.
type RatingRepository interface {
	ListRatings(context context.Context, userID int64) ([]*Rating, error)

	// UpsertRating inserts or replaces the single rating a user holds for a title.
	UpsertRating(context context.Context, userID int64, tconst string, score float64) (*Rating, error)

	DeleteRating(context context.Context, userID int64, tconst string) error
}
