// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hidesh/movieapp/internal/library"
	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/metrics"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/internal/platform/tracing"
)

// # Collaborators

// OverlayMerger attaches a user's private overlay to a detail record.
// Implementations absorb every failure and return nil instead.
type OverlayMerger interface {
	MergeClaim(context context.Context, claim string, target library.Target) *library.Overlay
}

// VisitRecorder remembers which titles a user opened.
type VisitRecorder interface {
	RecordVisit(context context.Context, userID int64, tconst, primaryTitle string) error
}

// # Service Layer

// Service is the entry point for title reads.
type Service struct {
	repository Repository
	resolver   *Resolver
	overlays   OverlayMerger
	visits     VisitRecorder
}

// NewService constructs a new [Service]. visits may be nil.
func NewService(repository Repository, overlays OverlayMerger, visits VisitRecorder) *Service {
	return &Service{
		repository: repository,
		resolver:   NewResolver(repository),
		overlays:   overlays,
		visits:     visits,
	}
}

/*
GetDetails resolves a title for a caller.

Description: Adult titles require an identity. Authenticated callers get their
overlay merged in and the visit recorded; neither can fail the request.

Parameters:
  - context: context.Context
  - tconst: string
  - identityClaim: string ("" for anonymous callers)

Returns:
  - *Detail: The resolved detail
  - error: NOT_FOUND for unknown titles, UNAUTHORIZED for anonymous adult requests
*/
func (service *Service) GetDetails(context context.Context, tconst, identityClaim string) (*Detail, error) {
	defer metrics.ObserveSince("get_details", time.Now())

	context, span := tracing.Tracer().Start(context, "title.GetDetails")
	defer span.End()
	span.SetAttributes(
		attribute.String("title.tconst", tconst),
		attribute.Bool("caller.authenticated", identityClaim != ""),
	)

	// 1. Existence
	title, err := service.repository.FindByID(context, tconst)
	if err != nil {
		return nil, err
	}

	// 2. Adult gate
	if title.IsAdult && identityClaim == "" {
		ctxutil.GetLogger(context).Info("adult_title_gated", slog.String("tconst", tconst))
		return nil, apperr.Unauthorized("Authentication required to view adult content")
	}

	// 3. Category-specific resolution
	detail, err := service.resolver.ResolveTitle(context, title)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("title.category", detail.Category().String()))

	// 4. Personal overlay
	if identityClaim != "" {
		detail.UserBookmark = service.overlays.MergeClaim(context, identityClaim, library.TitleTarget(tconst))
		service.recordVisit(context, identityClaim, title)
	}

	return detail, nil
}

// recordVisit logs failures and never surfaces them.
func (service *Service) recordVisit(context context.Context, identityClaim string, title *Title) {
	if service.visits == nil {
		return
	}

	userID, err := sec.ParseUserID(identityClaim)
	if err != nil {
		return
	}

	if err := service.visits.RecordVisit(context, userID, title.Tconst, title.PrimaryTitle); err != nil {
		ctxutil.GetLogger(context).Warn("visit_record_failed",
			slog.String("tconst", title.Tconst),
			slog.Any("error", err),
		)
	}
}

/*
ListCatalog returns one page of the catalog.

Parameters:
  - context: context.Context
  - query: ListQuery (see [NewListQuery])

Returns:
  - []*ListItem: The page; never contains episodes
  - int: Total matching titles
  - error: Storage failures
*/
func (service *Service) ListCatalog(context context.Context, query ListQuery) ([]*ListItem, int, error) {
	defer metrics.ObserveSince("list_catalog", time.Now())
	metrics.ListingRequests.WithLabelValues(query.Type.label(), query.Sort.label()).Inc()

	context, span := tracing.Tracer().Start(context, "title.ListCatalog")
	defer span.End()
	span.SetAttributes(
		attribute.String("listing.type", query.Type.label()),
		attribute.String("listing.sort", query.Sort.label()),
		attribute.Int("listing.page", query.Page),
	)

	return service.repository.List(context, query)
}

/*
GetSeasonEpisodes lists a series' episodes by season then episode number.

Parameters:
  - context: context.Context
  - seriesID: string
  - season: *int (nil for every season)

Returns:
  - []*EpisodeItem: Ordered episodes
  - error: NOT_FOUND when the series does not exist
*/
func (service *Service) GetSeasonEpisodes(context context.Context, seriesID string, season *int) ([]*EpisodeItem, error) {
	defer metrics.ObserveSince("season_episodes", time.Now())

	if err := service.requireTitle(context, seriesID); err != nil {
		return nil, err
	}
	return service.repository.ListEpisodes(context, seriesID, season)
}

// ListCredits returns the cast and crew of a title.
func (service *Service) ListCredits(context context.Context, tconst string) ([]*Credit, error) {
	if err := service.requireTitle(context, tconst); err != nil {
		return nil, err
	}
	return service.repository.ListCredits(context, tconst)
}

// GetRatingSummary returns the public rating aggregates of a title.
func (service *Service) GetRatingSummary(context context.Context, tconst string) (*RatingSummary, error) {
	return service.repository.FindRatingSummary(context, tconst)
}

func (service *Service) requireTitle(context context.Context, tconst string) error {
	exists, err := service.repository.Exists(context, tconst)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Title")
	}
	return nil
}
