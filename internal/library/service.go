// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package library

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/validate"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// # Service Layer

// Service manages the write side of a user's library and the listing of their records.
type Service struct {
	bookmarks BookmarkRepository
	notes     NoteRepository
	ratings   RatingRepository
}

// NewService constructs a new [Service]. A single [Repository] satisfies all three stores.
func NewService(bookmarks BookmarkRepository, notes NoteRepository, ratings RatingRepository) *Service {
	return &Service{
		bookmarks: bookmarks,
		notes:     notes,
		ratings:   ratings,
	}
}

/*
ParseTarget validates a target reference from a request payload.

Parameters:
  - input: TargetInput (exactly one of tconst and nconst)

Returns:
  - Target: The referenced title or person
  - error: VALIDATION_ERROR when neither or both are set, or the identifier is malformed
*/
func ParseTarget(input TargetInput) (Target, error) {
	tconst := strings.TrimSpace(input.Tconst)
	nconst := strings.TrimSpace(input.Nconst)

	validator := &validate.Validator{}
	validator.Custom(FieldTarget, (tconst == "") == (nconst == ""), "Exactly one of tconst or nconst is required")
	if err := validator.Err(); err != nil {
		return Target{}, err
	}

	if tconst != "" {
		if err := validator.TitleID(FieldTconst, tconst).Err(); err != nil {
			return Target{}, err
		}
		return TitleTarget(tconst), nil
	}

	if err := validator.PersonID(FieldNconst, nconst).Err(); err != nil {
		return Target{}, err
	}
	return PersonTarget(nconst), nil
}

// # Bookmarks

/*
ListBookmarks returns a page of the user's bookmarks, newest first.

Parameters:
  - context: context.Context
  - userID: int64
  - params: pagination.Params

Returns:
  - []*Bookmark: Page of bookmarks
  - int: Total bookmarks
  - error: Storage failures
*/
func (service *Service) ListBookmarks(context context.Context, userID int64, params pagination.Params) ([]*Bookmark, int, error) {
	return service.bookmarks.ListBookmarks(context, userID, params.PageSize, params.Offset())
}

/*
AddBookmark bookmarks a title or person.

Description: Adding the same target twice returns the existing bookmark.

Returns:
  - *Bookmark: The stored bookmark
  - error: VALIDATION_ERROR on a bad target, NOT_FOUND if it does not exist
*/
func (service *Service) AddBookmark(context context.Context, userID int64, input TargetInput) (*Bookmark, error) {
	target, err := ParseTarget(input)
	if err != nil {
		return nil, err
	}

	bookmark, err := service.bookmarks.AddBookmark(context, userID, target)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("bookmark_added",
		slog.Int64("bookmark_id", bookmark.ID),
		slog.String("target", target.String()),
	)
	return bookmark, nil
}

// RemoveBookmark deletes one of the user's bookmarks.
func (service *Service) RemoveBookmark(context context.Context, userID, bookmarkID int64) error {
	if err := service.bookmarks.DeleteBookmark(context, userID, bookmarkID); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("bookmark_removed", slog.Int64("bookmark_id", bookmarkID))
	return nil
}

// # Notes

// ListNotes returns the user's notes. A zero input lists every note.
func (service *Service) ListNotes(context context.Context, userID int64, input TargetInput) ([]*Note, error) {
	if strings.TrimSpace(input.Tconst) == "" && strings.TrimSpace(input.Nconst) == "" {
		return service.notes.ListNotes(context, userID, nil)
	}

	target, err := ParseTarget(input)
	if err != nil {
		return nil, err
	}
	return service.notes.ListNotes(context, userID, &target)
}

/*
CreateNote attaches a note to a title or person.

Parameters:
  - context: context.Context
  - userID: int64
  - input: NoteInput

Returns:
  - *Note: The stored note
  - error: VALIDATION_ERROR for empty or oversized content or a bad target
*/
func (service *Service) CreateNote(context context.Context, userID int64, input NoteInput) (*Note, error) {
	target, err := ParseTarget(input.TargetInput)
	if err != nil {
		return nil, err
	}

	content, err := validateNoteContent(input.Content)
	if err != nil {
		return nil, err
	}

	note, err := service.notes.CreateNote(context, userID, target, content)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("note_created",
		slog.Int64("note_id", note.ID),
		slog.String("target", target.String()),
	)
	return note, nil
}

// UpdateNote replaces the content of one of the user's notes.
func (service *Service) UpdateNote(context context.Context, userID, noteID int64, content string) (*Note, error) {
	content, err := validateNoteContent(content)
	if err != nil {
		return nil, err
	}

	note, err := service.notes.UpdateNote(context, userID, noteID, content)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("note_updated", slog.Int64("note_id", noteID))
	return note, nil
}

// DeleteNote removes one of the user's notes.
func (service *Service) DeleteNote(context context.Context, userID, noteID int64) error {
	if err := service.notes.DeleteNote(context, userID, noteID); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("note_deleted", slog.Int64("note_id", noteID))
	return nil
}

func validateNoteContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)

	validator := &validate.Validator{}
	validator.Required(FieldContent, content).MaxLen(FieldContent, content, MaxNoteLength)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return content, nil
}

// # Ratings

// ListRatings returns every title the user has rated.
func (service *Service) ListRatings(context context.Context, userID int64) ([]*Rating, error) {
	return service.ratings.ListRatings(context, userID)
}

/*
RateTitle stores the user's score for a title, replacing any previous score.

Parameters:
  - context: context.Context
  - userID: int64
  - tconst: string
  - score: float64 (0 to 10 inclusive)

Returns:
  - *Rating: The stored rating
  - error: VALIDATION_ERROR when out of range, NOT_FOUND for an unknown title
*/
func (service *Service) RateTitle(context context.Context, userID int64, tconst string, score float64) (*Rating, error) {
	validator := &validate.Validator{}
	validator.TitleID(FieldTconst, tconst).FloatRange(FieldRating, score, MinRating, MaxRating)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	rating, err := service.ratings.UpsertRating(context, userID, tconst, score)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("title_rated",
		slog.String("tconst", tconst),
		slog.Float64("rating", score),
	)
	return rating, nil
}

// DeleteRating withdraws the user's score for a title.
func (service *Service) DeleteRating(context context.Context, userID int64, tconst string) error {
	if err := (&validate.Validator{}).TitleID(FieldTconst, tconst).Err(); err != nil {
		return err
	}
	return service.ratings.DeleteRating(context, userID, tconst)
}
