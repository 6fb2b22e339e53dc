// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package person serves the public people catalog: browsing, detail with the
// caller's personal overlay, and filmography grouped by title.
package person

import "github.com/hidesh/movieapp/internal/library"

// # Domain Models

// Person is a catalog person row.
type Person struct {
	Nconst            string  `json:"nconst"`
	PrimaryName       string  `json:"primaryName"`
	BirthYear         *int    `json:"birthYear"`
	DeathYear         *int    `json:"deathYear"`
	PrimaryProfession *string `json:"primaryProfession"`
}

// Overlay is the personal view of a person. People cannot be rated.
type Overlay struct {
	BookmarkID   *int64  `json:"bookmarkId"`
	IsBookmarked bool    `json:"isBookmarked"`
	Note         *string `json:"note"`
}

// Detail is a person with the caller's overlay when personalized.
type Detail struct {
	Person
	UserBookmark *Overlay `json:"userBookmark,omitempty"`
}

// FilmographyEntry groups every role a person held on one title.
type FilmographyEntry struct {
	Tconst     string   `json:"tconst"`
	Title      string   `json:"title"`
	Jobs       []string `json:"jobs"`
	Characters []string `json:"characters"`
	StartYear  *int     `json:"startYear"`
	PosterURL  *string  `json:"posterUrl"`
}

// overlayFromLibrary drops the rating, which never applies to people.
func overlayFromLibrary(overlay *library.Overlay) *Overlay {
	if overlay == nil {
		return nil
	}
	return &Overlay{
		BookmarkID:   overlay.BookmarkID,
		IsBookmarked: overlay.IsBookmarked,
		Note:         overlay.Note,
	}
}
