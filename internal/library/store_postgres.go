// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/database/schema"
	"github.com/hidesh/movieapp/internal/platform/dberr"
)

// Repository groups every personal-library data access contract.
type Repository interface {
	OverlayReader
	BookmarkRepository
	NoteRepository
	RatingRepository
}

// # PostgreSQL Repository

// libraryRepository implements [Repository] using pgx.
type libraryRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed personal library store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &libraryRepository{pool: pool}
}

// targetColumn picks the column a target is stored in.
func targetColumn(target Target, tconstColumn, nconstColumn string) string {
	if target.Kind() == TargetTitle {
		return tconstColumn
	}
	return nconstColumn
}

// # Bookmarks

// bookmarkSelect joins the catalog to resolve a display name for either side of the target.
var bookmarkSelect = fmt.Sprintf(`
	SELECT b.%s, b.%s, b.%s, COALESCE(t.%s, p.%s, ''), b.%s
	FROM %s b
	LEFT JOIN %s t ON t.%s = b.%s
	LEFT JOIN %s p ON p.%s = b.%s
	WHERE b.%s = $1`,
	schema.LibraryBookmark.ID,
	schema.LibraryBookmark.Tconst,
	schema.LibraryBookmark.Nconst,
	schema.CatalogTitle.PrimaryTitle,
	schema.CatalogPerson.PrimaryName,
	schema.LibraryBookmark.BookmarkedAt,
	schema.LibraryBookmark.Table,
	schema.CatalogTitle.Table, schema.CatalogTitle.Tconst, schema.LibraryBookmark.Tconst,
	schema.CatalogPerson.Table, schema.CatalogPerson.Nconst, schema.LibraryBookmark.Nconst,
	schema.LibraryBookmark.UserID,
)

func scanBookmark(row pgx.Row) (*Bookmark, error) {
	bookmark := &Bookmark{}
	if err := row.Scan(
		&bookmark.ID,
		&bookmark.Tconst,
		&bookmark.Nconst,
		&bookmark.DisplayName,
		&bookmark.BookmarkedAt,
	); err != nil {
		return nil, err
	}
	return bookmark, nil
}

/*
LatestBookmark returns the newest bookmark a user holds for a target.

Parameters:
  - context: context.Context
  - userID: int64
  - target: Target

Returns:
  - *Bookmark: nil when the user has not bookmarked the target
  - error: Database execution errors
*/
func (repository *libraryRepository) LatestBookmark(context context.Context, userID int64, target Target) (*Bookmark, error) {
	query := bookmarkSelect + fmt.Sprintf(` AND b.%s = $2 ORDER BY b.%s DESC, b.%s DESC LIMIT 1`,
		targetColumn(target, schema.LibraryBookmark.Tconst, schema.LibraryBookmark.Nconst),
		schema.LibraryBookmark.BookmarkedAt,
		schema.LibraryBookmark.ID,
	)

	bookmark, err := scanBookmark(repository.pool.QueryRow(context, query, userID, target.ID()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find bookmark: %w", err)
	}
	return bookmark, nil
}

/*
ListBookmarks returns a page of bookmarks newest first.

Description: The total is computed with COUNT(*) OVER() in the same round trip.

Returns:
  - []*Bookmark: Page of bookmarks with resolved display names
  - int: Total bookmarks owned by the user
  - error: Database execution errors
*/
func (repository *libraryRepository) ListBookmarks(context context.Context, userID int64, limit, offset int) ([]*Bookmark, int, error) {
	query := strings.Replace(bookmarkSelect, "SELECT", "SELECT COUNT(*) OVER() AS total_count,", 1)
	query += fmt.Sprintf(` ORDER BY b.%s DESC, b.%s DESC LIMIT $2 OFFSET $3`,
		schema.LibraryBookmark.BookmarkedAt,
		schema.LibraryBookmark.ID,
	)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Bookmark", "list bookmarks")
	}
	defer rows.Close()

	bookmarks := []*Bookmark{}
	var total int
	for rows.Next() {
		bookmark := &Bookmark{}
		if err := rows.Scan(
			&total,
			&bookmark.ID,
			&bookmark.Tconst,
			&bookmark.Nconst,
			&bookmark.DisplayName,
			&bookmark.BookmarkedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Bookmark", "iterate bookmarks")
	}

	return bookmarks, total, nil
}

/*
AddBookmark stores a bookmark for a target, or returns the existing one.

Description: Duplicate inserts are swallowed by ON CONFLICT DO NOTHING against
the partial unique indexes, then the stored row is read back.

Returns:
  - *Bookmark: The stored bookmark
  - error: NOT_FOUND when the title or person does not exist
*/
func (repository *libraryRepository) AddBookmark(context context.Context, userID int64, target Target) (*Bookmark, error) {
	tconst, nconst := target.columns()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.UserID,
		schema.LibraryBookmark.Tconst,
		schema.LibraryBookmark.Nconst,
	)

	if _, err := repository.pool.Exec(context, query, userID, tconst, nconst); err != nil {
		return nil, dberr.Wrap(err, "Bookmark", "insert bookmark")
	}

	bookmark, err := repository.LatestBookmark(context, userID, target)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperr.NotFound("Bookmark")
	}
	return bookmark, nil
}

// DeleteBookmark removes a bookmark owned by the user.
func (repository *libraryRepository) DeleteBookmark(context context.Context, userID, bookmarkID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.ID,
		schema.LibraryBookmark.UserID,
	)

	tag, err := repository.pool.Exec(context, query, bookmarkID, userID)
	if err != nil {
		return dberr.Wrap(err, "Bookmark", "delete bookmark")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Bookmark")
	}
	return nil
}

// # Notes

var noteColumns = fmt.Sprintf(`%s, %s, %s, %s, %s, %s`,
	schema.LibraryNote.ID,
	schema.LibraryNote.Tconst,
	schema.LibraryNote.Nconst,
	schema.LibraryNote.Content,
	schema.LibraryNote.NotedAt,
	schema.LibraryNote.UpdatedAt,
)

// noteRecency orders notes by their latest edit. GREATEST skips a NULL updated_at.
var noteRecency = fmt.Sprintf(`GREATEST(%s, %s) DESC, %s DESC`,
	schema.LibraryNote.NotedAt,
	schema.LibraryNote.UpdatedAt,
	schema.LibraryNote.ID,
)

func scanNote(row pgx.Row) (*Note, error) {
	note := &Note{}
	if err := row.Scan(
		&note.ID,
		&note.Tconst,
		&note.Nconst,
		&note.Content,
		&note.NotedAt,
		&note.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return note, nil
}

/*
LatestNote returns the most recently written or edited note for a target.

Parameters:
  - context: context.Context
  - userID: int64
  - target: Target

Returns:
  - *Note: nil when the user has no note on the target
  - error: Database execution errors
*/
func (repository *libraryRepository) LatestNote(context context.Context, userID int64, target Target) (*Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 ORDER BY %s LIMIT 1`,
		noteColumns,
		schema.LibraryNote.Table,
		schema.LibraryNote.UserID,
		targetColumn(target, schema.LibraryNote.Tconst, schema.LibraryNote.Nconst),
		noteRecency,
	)

	note, err := scanNote(repository.pool.QueryRow(context, query, userID, target.ID()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find note: %w", err)
	}
	return note, nil
}

// ListNotes returns the user's notes newest first, optionally for a single target.
func (repository *libraryRepository) ListNotes(context context.Context, userID int64, target *Target) ([]*Note, error) {
	var queryBuilder strings.Builder
	args := []any{userID}

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		noteColumns,
		schema.LibraryNote.Table,
		schema.LibraryNote.UserID,
	))

	// Optional target restriction
	if target != nil && !target.IsZero() {
		queryBuilder.WriteString(fmt.Sprintf(` AND %s = $2`,
			targetColumn(*target, schema.LibraryNote.Tconst, schema.LibraryNote.Nconst)))
		args = append(args, target.ID())
	}

	queryBuilder.WriteString(" ORDER BY " + noteRecency)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Note", "list notes")
	}
	defer rows.Close()

	notes := []*Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Note", "iterate notes")
	}
	return notes, nil
}

// CreateNote inserts a note for a target.
func (repository *libraryRepository) CreateNote(context context.Context, userID int64, target Target, content string) (*Note, error) {
	tconst, nconst := target.columns()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		schema.LibraryNote.Table,
		schema.LibraryNote.UserID,
		schema.LibraryNote.Tconst,
		schema.LibraryNote.Nconst,
		schema.LibraryNote.Content,
		noteColumns,
	)

	note, err := scanNote(repository.pool.QueryRow(context, query, userID, tconst, nconst, content))
	if err != nil {
		return nil, dberr.Wrap(err, "Note", "insert note")
	}
	return note, nil
}

// UpdateNote replaces a note's content and stamps updated_at.
func (repository *libraryRepository) UpdateNote(context context.Context, userID, noteID int64, content string) (*Note, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = NOW()
		WHERE %s = $2 AND %s = $3
		RETURNING %s`,
		schema.LibraryNote.Table,
		schema.LibraryNote.Content,
		schema.LibraryNote.UpdatedAt,
		schema.LibraryNote.ID,
		schema.LibraryNote.UserID,
		noteColumns,
	)

	note, err := scanNote(repository.pool.QueryRow(context, query, content, noteID, userID))
	if err != nil {
		return nil, dberr.Wrap(err, "Note", "update note")
	}
	return note, nil
}

// DeleteNote removes a note owned by the user.
func (repository *libraryRepository) DeleteNote(context context.Context, userID, noteID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryNote.Table,
		schema.LibraryNote.ID,
		schema.LibraryNote.UserID,
	)

	tag, err := repository.pool.Exec(context, query, noteID, userID)
	if err != nil {
		return dberr.Wrap(err, "Note", "delete note")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Note")
	}
	return nil
}

// # Ratings

var ratingColumns = fmt.Sprintf(`r.%s, r.%s, COALESCE(t.%s, ''), r.%s, r.%s`,
	schema.LibraryRatingHistory.ID,
	schema.LibraryRatingHistory.Tconst,
	schema.CatalogTitle.PrimaryTitle,
	schema.LibraryRatingHistory.Rating,
	schema.LibraryRatingHistory.RatedAt,
)

var ratingFrom = fmt.Sprintf(`%s r LEFT JOIN %s t ON t.%s = r.%s`,
	schema.LibraryRatingHistory.Table,
	schema.CatalogTitle.Table,
	schema.CatalogTitle.Tconst,
	schema.LibraryRatingHistory.Tconst,
)

func scanRating(row pgx.Row) (*Rating, error) {
	rating := &Rating{}
	if err := row.Scan(
		&rating.ID,
		&rating.Tconst,
		&rating.PrimaryTitle,
		&rating.Rating,
		&rating.RatedAt,
	); err != nil {
		return nil, err
	}
	return rating, nil
}

/*
LatestRating returns the user's newest rating of a title.

Parameters:
  - context: context.Context
  - userID: int64
  - tconst: string

Returns:
  - *Rating: nil when the user has not rated the title
  - error: Database execution errors
*/
func (repository *libraryRepository) LatestRating(context context.Context, userID int64, tconst string) (*Rating, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE r.%s = $1 AND r.%s = $2 ORDER BY r.%s DESC, r.%s DESC LIMIT 1`,
		ratingColumns,
		ratingFrom,
		schema.LibraryRatingHistory.UserID,
		schema.LibraryRatingHistory.Tconst,
		schema.LibraryRatingHistory.RatedAt,
		schema.LibraryRatingHistory.ID,
	)

	rating, err := scanRating(repository.pool.QueryRow(context, query, userID, tconst))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find rating: %w", err)
	}
	return rating, nil
}

// ListRatings returns every title the user has rated, newest first.
func (repository *libraryRepository) ListRatings(context context.Context, userID int64) ([]*Rating, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE r.%s = $1 ORDER BY r.%s DESC, r.%s DESC`,
		ratingColumns,
		ratingFrom,
		schema.LibraryRatingHistory.UserID,
		schema.LibraryRatingHistory.RatedAt,
		schema.LibraryRatingHistory.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "Rating", "list ratings")
	}
	defer rows.Close()

	ratings := []*Rating{}
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Rating", "iterate ratings")
	}
	return ratings, nil
}

/*
UpsertRating records the user's score for a title.

Description: A user holds one rating per title. A second write replaces the
score and refreshes rated_at.

Returns:
  - *Rating: The stored rating
  - error: NOT_FOUND when the title does not exist
*/
func (repository *libraryRepository) UpsertRating(context context.Context, userID int64, tconst string, score float64) (*Rating, error) {
	query := fmt.Sprintf(`
		WITH upserted AS (
			INSERT INTO %s (%s, %s, %s)
			VALUES ($1, $2, $3)
			ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
			RETURNING *
		)
		SELECT %s FROM upserted r LEFT JOIN %s t ON t.%s = r.%s`,
		schema.LibraryRatingHistory.Table,
		schema.LibraryRatingHistory.UserID,
		schema.LibraryRatingHistory.Tconst,
		schema.LibraryRatingHistory.Rating,
		schema.LibraryRatingHistory.UserID,
		schema.LibraryRatingHistory.Tconst,
		schema.LibraryRatingHistory.Rating,
		schema.LibraryRatingHistory.Rating,
		schema.LibraryRatingHistory.RatedAt,
		ratingColumns,
		schema.CatalogTitle.Table,
		schema.CatalogTitle.Tconst,
		schema.LibraryRatingHistory.Tconst,
	)

	rating, err := scanRating(repository.pool.QueryRow(context, query, userID, tconst, score))
	if err != nil {
		return nil, dberr.Wrap(err, "Rating", "upsert rating")
	}
	return rating, nil
}

// DeleteRating removes the user's rating of a title.
func (repository *libraryRepository) DeleteRating(context context.Context, userID int64, tconst string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryRatingHistory.Table,
		schema.LibraryRatingHistory.UserID,
		schema.LibraryRatingHistory.Tconst,
	)

	tag, err := repository.pool.Exec(context, query, userID, tconst)
	if err != nil {
		return dberr.Wrap(err, "Rating", "delete rating")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Rating")
	}
	return nil
}
