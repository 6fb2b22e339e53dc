// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

/*
Package title resolves catalog titles into category-specific detail records,
lists the catalog with filters and sort policies, and exposes a series'
episodes, credits and rating aggregates.

# Categories

A title's raw type selects exactly one detail family through [Classify]:
movies (including shorts, videos and TV movies), series and episodes. Other
types resolve to the base fields only.
*/
package title

import (
	"github.com/goccy/go-json"

	"github.com/hidesh/movieapp/internal/library"
)

// # Catalog Records

// Title is a row of the title table.
type Title struct {
	Tconst         string  `json:"tconst"`
	TitleType      *string `json:"titleType"`
	PrimaryTitle   string  `json:"primaryTitle"`
	OriginalTitle  *string `json:"originalTitle"`
	IsAdult        bool    `json:"isAdult"`
	StartYear      *int    `json:"startYear"`
	EndYear        *int    `json:"endYear"`
	RuntimeMinutes *int    `json:"runtimeMinutes"`
}

// Category classifies the title's raw type.
func (t *Title) Category() Category {
	if t.TitleType == nil {
		return CategoryUnknown
	}
	return Classify(*t.TitleType)
}

// Metadata is the optional 1:1 descriptive record of a title.
type Metadata struct {
	Plot     *string
	Rated    *string
	Language *string
	Released *string
	Country  *string
	Poster   *string
}

// EpisodeLink places an episode inside its parent series.
type EpisodeLink struct {
	SeasonNumber      *int
	EpisodeNumber     *int
	ParentSeriesID    string
	ParentSeriesTitle *string
}

// # Detail Record

// Base holds the fields every detail record carries. Text fields are never null.
type Base struct {
	Tconst        string   `json:"tconst"`
	TitleType     string   `json:"titleType"`
	OriginalTitle string   `json:"originalTitle"`
	IsAdult       bool     `json:"isAdult"`
	Language      string   `json:"language"`
	Country       string   `json:"country"`
	RatedAge      string   `json:"ratedAge"`
	Plot          string   `json:"plot"`
	PosterURL     string   `json:"posterUrl"`
	Genres        []string `json:"genres"`
	WriterNames   string   `json:"writerNames"`
}

// Extension is the category-specific part of a [Detail].
// It is implemented by [MovieDetails], [SeriesDetails] and [EpisodeDetails] only.
type Extension interface {
	Category() Category
	isExtension()
}

// MovieDetails carries the fields of movie-like titles.
type MovieDetails struct {
	MovieTitle     string `json:"movieTitle"`
	ReleaseDate    string `json:"releaseDate"`
	RuntimeMinutes *int   `json:"runtimeMinutes"`
}

// SeriesDetails carries the fields of series.
type SeriesDetails struct {
	SeriesTitle     string `json:"seriesTitle"`
	StartYear       *int   `json:"startYear"`
	EndYear         *int   `json:"endYear"`
	NumberOfSeasons int    `json:"numberOfSeasons"`
}

// EpisodeDetails carries the fields of a single episode.
type EpisodeDetails struct {
	EpisodeTitle      string `json:"episodeTitle"`
	ReleaseDate       string `json:"releaseDate"`
	SeasonNumber      *int   `json:"seasonNumber"`
	EpisodeNumber     *int   `json:"episodeNumber"`
	ParentSeriesID    string `json:"parentSeriesId"`
	ParentSeriesTitle string `json:"parentSeriesTitle"`
}

func (MovieDetails) Category() Category   { return CategoryMovie }
func (SeriesDetails) Category() Category  { return CategorySeries }
func (EpisodeDetails) Category() Category { return CategoryEpisode }

func (MovieDetails) isExtension()   {}
func (SeriesDetails) isExtension()  {}
func (EpisodeDetails) isExtension() {}

// Detail is a resolved title. Extension is nil for unknown categories and
// UserBookmark is nil for anonymous callers or users with no records.
type Detail struct {
	Base
	Extension    Extension
	UserBookmark *library.Overlay
}

// Category reports which extension the detail carries.
func (d *Detail) Category() Category {
	if d.Extension == nil {
		return CategoryUnknown
	}
	return d.Extension.Category()
}

// MarshalJSON flattens the base, the extension and the overlay into one object.
func (d Detail) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}

	if err := mergeFields(fields, d.Base); err != nil {
		return nil, err
	}

	if d.Extension != nil {
		if err := mergeFields(fields, d.Extension); err != nil {
			return nil, err
		}
	}

	if d.UserBookmark != nil {
		fields["userBookmark"] = d.UserBookmark
	}

	return json.Marshal(fields)
}

func mergeFields(fields map[string]any, part any) error {
	encoded, err := json.Marshal(part)
	if err != nil {
		return err
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return err
	}

	for key, value := range decoded {
		fields[key] = value
	}
	return nil
}

// # Listing And Sub-resources

// ListItem is one row of the catalog listing.
type ListItem struct {
	Tconst         string   `json:"tconst"`
	PrimaryTitle   string   `json:"primaryTitle"`
	OriginalTitle  *string  `json:"originalTitle"`
	TitleType      *string  `json:"titleType"`
	IsAdult        bool     `json:"isAdult"`
	StartYear      *int     `json:"startYear"`
	EndYear        *int     `json:"endYear"`
	RuntimeMinutes *int     `json:"runtimeMinutes"`
	PosterURL      *string  `json:"posterUrl"`
	AverageRating  *float64 `json:"averageRating"`
	NumVotes       *int     `json:"numVotes"`
}

// EpisodeItem is one episode in a series' episode listing.
type EpisodeItem struct {
	Tconst        string  `json:"tconst"`
	EpisodeTitle  string  `json:"episodeTitle"`
	SeasonNumber  *int    `json:"seasonNumber"`
	EpisodeNumber *int    `json:"episodeNumber"`
	StartYear     *int    `json:"startYear"`
	Plot          *string `json:"plot"`
	PosterURL     *string `json:"posterUrl"`
}

// Credit is one cast or crew entry of a title.
type Credit struct {
	Nconst        string  `json:"nconst"`
	Name          string  `json:"name"`
	Job           *string `json:"job"`
	CharacterName *string `json:"characterName"`
}

// RatingSummary combines the catalog aggregate with the community's current ratings.
// Individual user ratings are never part of it.
type RatingSummary struct {
	Tconst           string   `json:"tconst"`
	AverageRating    *float64 `json:"averageRating"`
	NumVotes         *int     `json:"numVotes"`
	CommunityCount   int      `json:"communityCount"`
	CommunityAverage *float64 `json:"communityAverage"`
}
