// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// CatalogGenreTable represents the 'genre' table
type CatalogGenreTable struct {
	Table string
	ID    string
	Name  string
}

// CatalogGenre is the schema definition for genre
var CatalogGenre = CatalogGenreTable{
	Table: "genre",
	ID:    "genre_id",
	Name:  "genre_name",
}

// CatalogTitleGenreTable represents the 'title_genre' join table.
// Ordinal preserves the insertion order of a title's genres.
type CatalogTitleGenreTable struct {
	Table   string
	TitleID string
	GenreID string
	Ordinal string
}

// CatalogTitleGenre is the schema definition for title_genre
var CatalogTitleGenre = CatalogTitleGenreTable{
	Table:   "title_genre",
	TitleID: "title_id",
	GenreID: "genre_id",
	Ordinal: "ordinal",
}
