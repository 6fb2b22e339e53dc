// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/pkg/pointer"
)

// WriterSeparator joins distinct writer names.
const WriterSeparator = ", "

// # Resolver

// Resolver assembles category-specific detail records from catalog lookups.
// It never applies the adult gate and never attaches an overlay.
type Resolver struct {
	repository DetailRepository
}

// NewResolver constructs a [Resolver].
func NewResolver(repository DetailRepository) *Resolver {
	return &Resolver{repository: repository}
}

/*
Resolve loads a title and resolves its detail record.

Parameters:
  - context: context.Context
  - tconst: string

Returns:
  - *Detail: The resolved record without an overlay
  - error: apperr.NotFound when the title does not exist
*/
func (resolver *Resolver) Resolve(context context.Context, tconst string) (*Detail, error) {
	title, err := resolver.repository.FindByID(context, tconst)
	if err != nil {
		return nil, err
	}
	return resolver.ResolveTitle(context, title)
}

/*
ResolveTitle builds the detail record of an already loaded title.

Description: Metadata, genres, writers and the category-specific lookups run
concurrently. Results are assembled only after every lookup has returned.

Parameters:
  - context: context.Context
  - title: *Title

Returns:
  - *Detail: Base fields plus the extension selected by the title's category
  - error: The first storage failure of any required lookup
*/
func (resolver *Resolver) ResolveTitle(context context.Context, title *Title) (*Detail, error) {
	category := title.Category()

	var (
		metadata *Metadata
		genres   []string
		writers  []string
		seasons  []int
		episode  episodeParts
	)

	group, groupCtx := errgroup.WithContext(context)

	group.Go(func() error {
		var err error
		metadata, err = resolver.repository.FindMetadata(groupCtx, title.Tconst)
		return err
	})

	group.Go(func() error {
		var err error
		genres, err = resolver.repository.ListGenreNames(groupCtx, title.Tconst)
		return err
	})

	group.Go(func() error {
		var err error
		writers, err = resolver.repository.ListWriterNames(groupCtx, title.Tconst)
		return err
	})

	switch category {
	case CategorySeries:
		group.Go(func() error {
			var err error
			seasons, err = resolver.repository.ListSeasonNumbers(groupCtx, title.Tconst)
			return err
		})
	case CategoryEpisode:
		group.Go(func() error {
			var err error
			episode, err = resolver.loadEpisode(groupCtx, title.Tconst)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	detail := &Detail{Base: newBase(title, metadata, genres, writers)}

	switch category {
	case CategoryMovie:
		detail.Extension = MovieDetails{
			MovieTitle:     title.PrimaryTitle,
			ReleaseDate:    metadataText(metadata, func(m *Metadata) *string { return m.Released }),
			RuntimeMinutes: title.RuntimeMinutes,
		}
	case CategorySeries:
		detail.Extension = SeriesDetails{
			SeriesTitle:     title.PrimaryTitle,
			StartYear:       title.StartYear,
			EndYear:         title.EndYear,
			NumberOfSeasons: CountSeasons(seasons),
		}
	case CategoryEpisode:
		detail.Extension = EpisodeDetails{
			EpisodeTitle:      title.PrimaryTitle,
			ReleaseDate:       metadataText(metadata, func(m *Metadata) *string { return m.Released }),
			SeasonNumber:      episode.seasonNumber,
			EpisodeNumber:     episode.episodeNumber,
			ParentSeriesID:    episode.parentID,
			ParentSeriesTitle: episode.parentTitle,
		}
	}

	return detail, nil
}

// episodeParts holds the resolved placement of an episode.
type episodeParts struct {
	seasonNumber  *int
	episodeNumber *int
	parentID      string
	parentTitle   string
}

// loadEpisode reads the episode row and its parent. A failed parent lookup
// leaves both parent fields empty instead of failing the detail.
func (resolver *Resolver) loadEpisode(context context.Context, tconst string) (episodeParts, error) {
	link, err := resolver.repository.FindEpisodeLink(context, tconst)
	if err != nil {
		return episodeParts{}, err
	}
	if link == nil {
		return episodeParts{}, nil
	}

	parts := episodeParts{
		seasonNumber:  link.SeasonNumber,
		episodeNumber: link.EpisodeNumber,
	}

	parentTitle, err := resolver.repository.FindPrimaryTitle(context, link.ParentSeriesID)
	if err != nil {
		ctxutil.GetLogger(context).Warn("episode_parent_lookup_failed",
			slog.String("tconst", tconst),
			slog.String("parent_series_id", link.ParentSeriesID),
			slog.Any("error", err),
		)
		return parts, nil
	}

	parts.parentID = link.ParentSeriesID
	parts.parentTitle = parentTitle
	return parts, nil
}

// # Field Derivation

func newBase(title *Title, metadata *Metadata, genres, writers []string) Base {
	if genres == nil {
		genres = []string{}
	}

	return Base{
		Tconst:        title.Tconst,
		TitleType:     pointer.Val(title.TitleType),
		OriginalTitle: pointer.Val(title.OriginalTitle),
		IsAdult:       title.IsAdult,
		Language:      metadataText(metadata, func(m *Metadata) *string { return m.Language }),
		Country:       metadataText(metadata, func(m *Metadata) *string { return m.Country }),
		RatedAge:      metadataText(metadata, func(m *Metadata) *string { return m.Rated }),
		Plot:          metadataText(metadata, func(m *Metadata) *string { return m.Plot }),
		PosterURL:     metadataText(metadata, func(m *Metadata) *string { return m.Poster }),
		Genres:        genres,
		WriterNames:   JoinDistinct(writers),
	}
}

// metadataText reads an optional metadata field, defaulting to "".
func metadataText(metadata *Metadata, field func(*Metadata) *string) string {
	if metadata == nil {
		return ""
	}
	return pointer.Val(field(metadata))
}

// CountSeasons counts distinct season numbers above zero. Season 0 holds specials.
func CountSeasons(seasons []int) int {
	distinct := make(map[int]struct{}, len(seasons))
	for _, season := range seasons {
		if season > 0 {
			distinct[season] = struct{}{}
		}
	}
	return len(distinct)
}

// JoinDistinct joins names with [WriterSeparator], keeping the first occurrence
// of each exact (case-sensitive) name.
func JoinDistinct(names []string) string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	return strings.Join(distinct, WriterSeparator)
}
