// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// CatalogEpisodeTable represents the 'episode' table
type CatalogEpisodeTable struct {
	Table          string
	ID             string
	Tconst         string
	ParentSeriesID string
	SeasonNumber   string
	EpisodeNumber  string
}

// CatalogEpisode is the schema definition for episode
var CatalogEpisode = CatalogEpisodeTable{
	Table:          "episode",
	ID:             "episode_id",
	Tconst:         "tconst",
	ParentSeriesID: "parent_series_id",
	SeasonNumber:   "season_number",
	EpisodeNumber:  "episode_number",
}
