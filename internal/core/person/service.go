// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package person

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hidesh/movieapp/internal/library"
	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/metrics"
	"github.com/hidesh/movieapp/internal/platform/tracing"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// OverlayMerger attaches a user's private overlay to a person.
type OverlayMerger interface {
	MergeClaim(context context.Context, claim string, target library.Target) *library.Overlay
}

// # Service Layer

// Service is the entry point for people reads.
type Service struct {
	repository Repository
	overlays   OverlayMerger
}

// NewService constructs a new [Service].
func NewService(repository Repository, overlays OverlayMerger) *Service {
	return &Service{repository: repository, overlays: overlays}
}

// List returns one page of people ordered by name.
func (service *Service) List(context context.Context, params pagination.Params) ([]*Person, int, error) {
	defer metrics.ObserveSince("list_people", time.Now())
	return service.repository.List(context, params)
}

/*
GetDetails returns a person, personalized when the caller is identified.

Parameters:
  - context: context.Context
  - nconst: string
  - identityClaim: string ("" for anonymous callers)

Returns:
  - *Detail: The person; UserBookmark is set only for identified callers
  - error: NOT_FOUND for unknown people
*/
func (service *Service) GetDetails(context context.Context, nconst, identityClaim string) (*Detail, error) {
	defer metrics.ObserveSince("get_person", time.Now())

	context, span := tracing.Tracer().Start(context, "person.GetDetails")
	defer span.End()
	span.SetAttributes(attribute.String("person.nconst", nconst))

	person, err := service.repository.FindByID(context, nconst)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Person: *person}
	if identityClaim != "" {
		detail.UserBookmark = overlayFromLibrary(
			service.overlays.MergeClaim(context, identityClaim, library.PersonTarget(nconst)),
		)
	}
	return detail, nil
}

// GetFilmography returns a person's titles with their grouped roles.
func (service *Service) GetFilmography(context context.Context, nconst string) ([]*FilmographyEntry, error) {
	exists, err := service.repository.Exists(context, nconst)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Person")
	}
	return service.repository.ListFilmography(context, nconst)
}
