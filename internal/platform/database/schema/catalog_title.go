// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package schema holds the table and column names of the relational store so
// that queries are assembled from a single source of truth.
package schema

// CatalogTitleTable represents the 'title' table
type CatalogTitleTable struct {
	Table          string
	Tconst         string
	TitleType      string
	PrimaryTitle   string
	OriginalTitle  string
	IsAdult        string
	StartYear      string
	EndYear        string
	RuntimeMinutes string
}

// CatalogTitle is the schema definition for title
var CatalogTitle = CatalogTitleTable{
	Table:          "title",
	Tconst:         "tconst",
	TitleType:      "titletype",
	PrimaryTitle:   "primarytitle",
	OriginalTitle:  "originaltitle",
	IsAdult:        "isadult",
	StartYear:      "startyear",
	EndYear:        "endyear",
	RuntimeMinutes: "runtimeminutes",
}

func (t CatalogTitleTable) Columns() []string {
	return []string{t.Tconst, t.TitleType, t.PrimaryTitle, t.OriginalTitle, t.IsAdult, t.StartYear, t.EndYear, t.RuntimeMinutes}
}
