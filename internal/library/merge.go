// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package library

import (
	stdctx "context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/metrics"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/internal/platform/tracing"
)

// BreakerName labels the overlay circuit breaker in logs and metrics.
const BreakerName = "library_overlay"

// Overlay lookup outcomes recorded in [metrics.OverlayLookups].
const (
	OutcomeFound    = "found"
	OutcomeAbsent   = "absent"
	OutcomeAbsorbed = "absorbed"
	OutcomeRejected = "rejected"
)

// BreakerSettings tunes when the overlay breaker opens.
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerSettings opens after 60% of at least 10 lookups fail and probes again after 30s.
var DefaultBreakerSettings = BreakerSettings{
	MaxRequests:  3,
	Interval:     time.Minute,
	Timeout:      30 * time.Second,
	MinRequests:  10,
	FailureRatio: 0.6,
}

// lookup is the raw result of one overlay read.
type lookup struct {
	bookmark *Bookmark
	note     *Note
	rating   *Rating
}

func (l lookup) empty() bool {
	return l.bookmark == nil && l.note == nil && l.rating == nil
}

// Merger builds a user's overlay for a title or person.
//
// Merge never fails: storage errors, an open breaker and malformed identities
// all degrade to an absent overlay so that catalog reads keep working.
type Merger struct {
	reader  OverlayReader
	breaker *gobreaker.CircuitBreaker[lookup]
	logger  *slog.Logger
}

// NewMerger wires an overlay reader behind a circuit breaker.
func NewMerger(reader OverlayReader, settings BreakerSettings, logger *slog.Logger) *Merger {
	merger := &Merger{reader: reader, logger: logger}

	merger.breaker = gobreaker.NewCircuitBreaker[lookup](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			logger.Warn("circuit_breaker_state_changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// A caller hanging up says nothing about the health of the store.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, stdctx.Canceled)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(float64(gobreaker.StateClosed))

	return merger
}

/*
MergeClaim resolves the overlay for a raw identity claim.

Description: A claim that does not parse to a user id is logged and counted as
rejected; the caller still receives the public detail.

Parameters:
  - context: context.Context
  - claim: string (identity claim from the access token)
  - target: Target

Returns:
  - *Overlay: nil when the overlay is absent
*/
func (merger *Merger) MergeClaim(context stdctx.Context, claim string, target Target) *Overlay {
	userID, err := sec.ParseUserID(claim)
	if err != nil {
		ctxutil.GetLogger(context).Warn("overlay_identity_rejected",
			slog.String("target", target.String()),
			slog.Any("error", err),
		)
		metrics.OverlayLookups.WithLabelValues(string(target.Kind()), OutcomeRejected).Inc()
		return nil
	}

	overlay, ok := merger.Merge(context, userID, target)
	if !ok {
		return nil
	}
	return &overlay
}

/*
Merge combines the user's latest bookmark, note and rating for a target.

Description: The three lookups run concurrently. Ratings only exist for
titles, so person targets skip that lookup.

Parameters:
  - context: context.Context
  - userID: int64
  - target: Target

Returns:
  - Overlay: The merged personal view
  - bool: false when no record exists or the lookup failed
*/
func (merger *Merger) Merge(context stdctx.Context, userID int64, target Target) (Overlay, bool) {
	context, span := tracing.Tracer().Start(context, "library.Merge")
	defer span.End()
	span.SetAttributes(
		attribute.String("target.kind", string(target.Kind())),
		attribute.String("target.id", target.ID()),
	)

	kind := string(target.Kind())
	logger := ctxutil.GetLogger(context)

	if target.IsZero() {
		metrics.OverlayLookups.WithLabelValues(kind, OutcomeAbsent).Inc()
		return Overlay{}, false
	}

	result, err := merger.breaker.Execute(func() (lookup, error) {
		return merger.fetch(context, userID, target)
	})

	// 1. Breaker refused the call
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logger.Warn("overlay_lookup_rejected",
			slog.String("target", target.String()),
			slog.String("breaker", merger.breaker.State().String()),
		)
		metrics.OverlayLookups.WithLabelValues(kind, OutcomeRejected).Inc()
		span.SetStatus(codes.Error, "circuit open")
		return Overlay{}, false
	}

	// 2. Store failed
	if err != nil {
		logger.Warn("overlay_lookup_failed",
			slog.String("target", target.String()),
			slog.Any("error", err),
		)
		metrics.OverlayLookups.WithLabelValues(kind, OutcomeAbsorbed).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return Overlay{}, false
	}

	// 3. Nothing on record
	if result.empty() {
		metrics.OverlayLookups.WithLabelValues(kind, OutcomeAbsent).Inc()
		return Overlay{}, false
	}

	metrics.OverlayLookups.WithLabelValues(kind, OutcomeFound).Inc()
	return result.overlay(), true
}

// fetch runs the lookups concurrently and collects them once all have returned.
func (merger *Merger) fetch(context stdctx.Context, userID int64, target Target) (lookup, error) {
	var (
		bookmark *Bookmark
		note     *Note
		rating   *Rating
	)

	group, groupCtx := errgroup.WithContext(context)

	group.Go(func() error {
		var err error
		bookmark, err = merger.reader.LatestBookmark(groupCtx, userID, target)
		return err
	})

	group.Go(func() error {
		var err error
		note, err = merger.reader.LatestNote(groupCtx, userID, target)
		return err
	})

	if target.Kind() == TargetTitle {
		group.Go(func() error {
			var err error
			rating, err = merger.reader.LatestRating(groupCtx, userID, target.ID())
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return lookup{}, err
	}

	return lookup{bookmark: bookmark, note: note, rating: rating}, nil
}

func (l lookup) overlay() Overlay {
	var overlay Overlay

	if l.bookmark != nil {
		id := l.bookmark.ID
		overlay.BookmarkID = &id
		overlay.IsBookmarked = true
	}

	if l.note != nil {
		content := l.note.Content
		overlay.Note = &content
	}

	if l.rating != nil {
		score := l.rating.Rating
		overlay.Rating = &score
	}

	return overlay
}
