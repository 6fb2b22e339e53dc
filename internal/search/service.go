// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/metrics"
	"github.com/hidesh/movieapp/internal/platform/tracing"
	"github.com/hidesh/movieapp/internal/platform/validate"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// # Service Layer

// Service validates search input and owns the visit history.
type Service struct {
	repository Repository
	history    HistoryRepository
}

// NewService constructs a new [Service].
func NewService(repository Repository, history HistoryRepository) *Service {
	return &Service{repository: repository, history: history}
}

func validateQuery(query string) (string, error) {
	query = strings.TrimSpace(query)

	validator := &validate.Validator{}
	validator.Required(FieldQuery, query).MaxLen(FieldQuery, query, MaxQueryLength)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return query, nil
}

/*
BestMatch searches titles by keywords.

Description: The query is split on whitespace; every word is one keyword.

Parameters:
  - context: context.Context
  - query: string

Returns:
  - []*Result: Matching titles with match counts
  - error: VALIDATION_ERROR for a blank or oversized query
*/
func (service *Service) BestMatch(context context.Context, query string) ([]*Result, error) {
	defer metrics.ObserveSince("search_best_match", time.Now())

	query, err := validateQuery(query)
	if err != nil {
		return nil, err
	}
	keywords := strings.Fields(query)

	metrics.SearchRequests.WithLabelValues(string(ModeBestMatch)).Inc()
	context, span := tracing.Tracer().Start(context, "search.BestMatch")
	defer span.End()
	span.SetAttributes(attribute.Int("search.keywords", len(keywords)))

	return service.repository.BestMatch(context, keywords)
}

// StructuredSearch runs the personalized search for an authenticated user.
func (service *Service) StructuredSearch(context context.Context, userID int64, query string) ([]*Result, error) {
	defer metrics.ObserveSince("search_structured", time.Now())

	query, err := validateQuery(query)
	if err != nil {
		return nil, err
	}

	metrics.SearchRequests.WithLabelValues(string(ModeStructured)).Inc()
	context, span := tracing.Tracer().Start(context, "search.StructuredSearch")
	defer span.End()

	return service.repository.StructuredSearch(context, userID, query)
}

// # Visit History

// RecordVisit appends a visited title to the user's history.
func (service *Service) RecordVisit(context context.Context, userID int64, tconst, primaryTitle string) error {
	return service.history.RecordVisit(context, userID, tconst, primaryTitle)
}

// History returns a page of the user's visits, newest first.
func (service *Service) History(context context.Context, userID int64, params pagination.Params) ([]*Visit, int, error) {
	return service.history.ListVisits(context, userID, params)
}

// ClearHistory forgets every visit of the user.
func (service *Service) ClearHistory(context context.Context, userID int64) error {
	if err := service.history.ClearVisits(context, userID); err != nil {
		return err
	}

	ctxutil.GetLogger(context).Info("history_cleared", slog.Int64("user_id", userID))
	return nil
}
