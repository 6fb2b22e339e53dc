// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// LibraryNoteTable represents the 'note' table
type LibraryNoteTable struct {
	Table     string
	ID        string
	UserID    string
	Tconst    string
	Nconst    string
	Content   string
	NotedAt   string
	UpdatedAt string
}

// LibraryNote is the schema definition for note
var LibraryNote = LibraryNoteTable{
	Table:     "note",
	ID:        "note_id",
	UserID:    "user_id",
	Tconst:    "tconst",
	Nconst:    "nconst",
	Content:   "content",
	NotedAt:   "noted_at",
	UpdatedAt: "updated_at",
}
