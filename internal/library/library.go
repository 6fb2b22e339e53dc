// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

/*
Package library owns a user's private records about the catalog: bookmarks,
notes and ratings, and the overlay merged into title and person details.

# Privacy

Every read and write is keyed by the authenticated user id. Nothing in this
package returns records belonging to another user.
*/
package library

import (
	"fmt"
	"time"
)

// # Targets

// TargetKind discriminates what a bookmark or note points at.
type TargetKind string

const (
	TargetTitle  TargetKind = "title"
	TargetPerson TargetKind = "person"
)

// Target references exactly one title or one person.
// The zero value references nothing and is rejected by every operation.
type Target struct {
	kind TargetKind
	id   string
}

// TitleTarget references a title by its tconst.
func TitleTarget(tconst string) Target {
	return Target{kind: TargetTitle, id: tconst}
}

// PersonTarget references a person by their nconst.
func PersonTarget(nconst string) Target {
	return Target{kind: TargetPerson, id: nconst}
}

// Kind reports which side of the union is set.
func (t Target) Kind() TargetKind { return t.kind }

// ID returns the referenced identifier.
func (t Target) ID() string { return t.id }

// IsZero reports whether the target references nothing.
func (t Target) IsZero() bool { return t.kind == "" || t.id == "" }

// String renders the target for logs, e.g. "title:tt0000001".
func (t Target) String() string { return fmt.Sprintf("%s:%s", t.kind, t.id) }

// columns splits the target into the nullable tconst and nconst column values.
func (t Target) columns() (tconst, nconst *string) {
	id := t.id
	if t.kind == TargetTitle {
		return &id, nil
	}
	return nil, &id
}

// targetFromColumns rebuilds a target from a row where exactly one column is set.
func targetFromColumns(tconst, nconst *string) Target {
	if tconst != nil {
		return TitleTarget(*tconst)
	}
	if nconst != nil {
		return PersonTarget(*nconst)
	}
	return Target{}
}

// # Overlay

// Overlay is the requesting user's private view of a title or person.
type Overlay struct {
	BookmarkID   *int64   `json:"bookmarkId"`
	IsBookmarked bool     `json:"isBookmarked"`
	Note         *string  `json:"note"`
	Rating       *float64 `json:"rating"`
}

// # Records

// Bookmark marks a title or person for later.
type Bookmark struct {
	ID           int64     `json:"bookmarkId"`
	Tconst       *string   `json:"tconst"`
	Nconst       *string   `json:"nconst"`
	DisplayName  string    `json:"displayName"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

// Target returns the bookmarked title or person.
func (b *Bookmark) Target() Target { return targetFromColumns(b.Tconst, b.Nconst) }

// Note is free text a user attaches to a title or person.
type Note struct {
	ID        int64      `json:"noteId"`
	Tconst    *string    `json:"tconst"`
	Nconst    *string    `json:"nconst"`
	Content   string     `json:"content"`
	NotedAt   time.Time  `json:"notedAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Target returns the annotated title or person.
func (n *Note) Target() Target { return targetFromColumns(n.Tconst, n.Nconst) }

// Rating is a user's current score for a title.
type Rating struct {
	ID           int64     `json:"ratingId"`
	Tconst       string    `json:"tconst"`
	PrimaryTitle string    `json:"primaryTitle,omitempty"`
	Rating       float64   `json:"rating"`
	RatedAt      time.Time `json:"ratedAt"`
}

// # Inputs

// TargetInput is the JSON shape used to reference a target in write requests.
type TargetInput struct {
	Tconst string `json:"tconst"`
	Nconst string `json:"nconst"`
}

// NoteInput creates a note.
type NoteInput struct {
	TargetInput
	Content string `json:"content"`
}

// # Field Names

const (
	FieldTconst  = "tconst"
	FieldNconst  = "nconst"
	FieldTarget  = "target"
	FieldContent = "content"
	FieldRating  = "rating"

	// MaxNoteLength bounds note content in characters.
	MaxNoteLength = 2000
	MinRating     = 0.0
	MaxRating     = 10.0
)
