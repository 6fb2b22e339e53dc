// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hidesh/movieapp/internal/core/title"
	"github.com/hidesh/movieapp/internal/library"
)

// mockRepository implements title.Repository with testify/mock.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByID(ctx context.Context, tconst string) (*title.Title, error) {
	args := m.Called(ctx, tconst)
	found, _ := args.Get(0).(*title.Title)
	return found, args.Error(1)
}

func (m *mockRepository) FindMetadata(ctx context.Context, tconst string) (*title.Metadata, error) {
	args := m.Called(ctx, tconst)
	metadata, _ := args.Get(0).(*title.Metadata)
	return metadata, args.Error(1)
}

func (m *mockRepository) ListGenreNames(ctx context.Context, tconst string) ([]string, error) {
	args := m.Called(ctx, tconst)
	genres, _ := args.Get(0).([]string)
	return genres, args.Error(1)
}

func (m *mockRepository) ListWriterNames(ctx context.Context, tconst string) ([]string, error) {
	args := m.Called(ctx, tconst)
	writers, _ := args.Get(0).([]string)
	return writers, args.Error(1)
}

func (m *mockRepository) ListSeasonNumbers(ctx context.Context, seriesID string) ([]int, error) {
	args := m.Called(ctx, seriesID)
	seasons, _ := args.Get(0).([]int)
	return seasons, args.Error(1)
}

func (m *mockRepository) FindEpisodeLink(ctx context.Context, tconst string) (*title.EpisodeLink, error) {
	args := m.Called(ctx, tconst)
	link, _ := args.Get(0).(*title.EpisodeLink)
	return link, args.Error(1)
}

func (m *mockRepository) FindPrimaryTitle(ctx context.Context, tconst string) (string, error) {
	args := m.Called(ctx, tconst)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, query title.ListQuery) ([]*title.ListItem, int, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]*title.ListItem)
	return items, args.Int(1), args.Error(2)
}

func (m *mockRepository) ListEpisodes(ctx context.Context, seriesID string, season *int) ([]*title.EpisodeItem, error) {
	args := m.Called(ctx, seriesID, season)
	episodes, _ := args.Get(0).([]*title.EpisodeItem)
	return episodes, args.Error(1)
}

func (m *mockRepository) ListCredits(ctx context.Context, tconst string) ([]*title.Credit, error) {
	args := m.Called(ctx, tconst)
	credits, _ := args.Get(0).([]*title.Credit)
	return credits, args.Error(1)
}

func (m *mockRepository) FindRatingSummary(ctx context.Context, tconst string) (*title.RatingSummary, error) {
	args := m.Called(ctx, tconst)
	summary, _ := args.Get(0).(*title.RatingSummary)
	return summary, args.Error(1)
}

func (m *mockRepository) Exists(ctx context.Context, tconst string) (bool, error) {
	args := m.Called(ctx, tconst)
	return args.Bool(0), args.Error(1)
}

// onBase registers the lookups every resolution performs.
func (m *mockRepository) onBase(tconst string, metadata *title.Metadata, genres, writers []string) {
	m.On("FindMetadata", mock.Anything, tconst).Return(metadata, nil)
	m.On("ListGenreNames", mock.Anything, tconst).Return(genres, nil)
	m.On("ListWriterNames", mock.Anything, tconst).Return(writers, nil)
}

// mockMerger implements title.OverlayMerger.
type mockMerger struct {
	mock.Mock
}

func (m *mockMerger) MergeClaim(ctx context.Context, claim string, target library.Target) *library.Overlay {
	args := m.Called(ctx, claim, target)
	overlay, _ := args.Get(0).(*library.Overlay)
	return overlay
}

// mockVisits implements title.VisitRecorder.
type mockVisits struct {
	mock.Mock
}

func (m *mockVisits) RecordVisit(ctx context.Context, userID int64, tconst, primaryTitle string) error {
	return m.Called(ctx, userID, tconst, primaryTitle).Error(0)
}
