// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// CatalogTitleMetadataTable represents the 'title_metadata' table
type CatalogTitleMetadataTable struct {
	Table    string
	Tconst   string
	Plot     string
	Rated    string
	Language string
	Released string
	Writer   string
	Country  string
	Poster   string
}

// CatalogTitleMetadata is the schema definition for title_metadata
var CatalogTitleMetadata = CatalogTitleMetadataTable{
	Table:    "title_metadata",
	Tconst:   "tconst",
	Plot:     "plot",
	Rated:    "rated",
	Language: "language",
	Released: "released",
	Writer:   "writer",
	Country:  "country",
	Poster:   "poster",
}
