// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package pagination_test

import (
	"math"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/pkg/pagination"
)

/*
TestNormalize covers page and page size clamping.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"zero_size", 1, 0, 1, 20},
		{"negative_size", 1, -5, 1, 20},
		{"oversized", 1, 1000, 1, 20},
		{"kept", 1, 50, 1, 50},
		{"upper_bound", 2, 500, 2, 500},
		{"lower_bound_excluded", 1, 1, 1, 20},
		{"two_is_valid", 1, 2, 1, 2},
		{"zero_page", 0, 50, 1, 50},
		{"negative_page", -3, 50, 1, 50},
		{"huge_page", math.MaxInt, 20, pagination.MaxPage, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.Normalize(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

/*
TestParams_Offset checks the SQL offset arithmetic.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, math.MaxInt, pagination.Params{Page: math.MaxInt, PageSize: 20}.Offset())
	assert.Equal(t, (pagination.MaxPage-1)*pagination.MaxPageSize,
		pagination.Params{Page: pagination.MaxPage, PageSize: pagination.MaxPageSize}.Offset())
}

/*
TestFromRequest parses the query string and ignores garbage.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/titles?page=abc&pageSize=30", nil)
	params := pagination.FromRequest(request)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 30, params.PageSize)

	// Extreme pages are capped so the offset stays non-negative.
	huge := httptest.NewRequest("GET", "/titles?page=9223372036854775807&pageSize=20", nil)
	params = pagination.FromRequest(huge)

	assert.Equal(t, pagination.MaxPage, params.Page)
	assert.Equal(t, (pagination.MaxPage-1)*20, params.Offset())

	// Values beyond int range fall back to the defaults.
	overflow := httptest.NewRequest("GET", "/titles?page=99999999999999999999&pageSize=%2030%20", nil)
	params = pagination.FromRequest(overflow)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 30, params.PageSize)
}

/*
TestMeta_WithLinks builds prev/next links and omits them at the edges.
*/
func TestMeta_WithLinks(t *testing.T) {
	base, err := url.Parse("/api/v1/titles?genre=drama&page=2&pageSize=10")
	require.NoError(t, err)

	// 1. Middle page has both links
	meta := pagination.NewMeta(pagination.Params{Page: 2, PageSize: 10}, 35).WithLinks(base)
	assert.Equal(t, 4, meta.TotalPages)
	require.NotNil(t, meta.Prev)
	require.NotNil(t, meta.Next)
	assert.Equal(t, "/api/v1/titles?genre=drama&page=1&pageSize=10", *meta.Prev)
	assert.Equal(t, "/api/v1/titles?genre=drama&page=3&pageSize=10", *meta.Next)

	// 2. First page has no prev
	first := pagination.NewMeta(pagination.Params{Page: 1, PageSize: 10}, 35).WithLinks(base)
	assert.Nil(t, first.Prev)
	assert.NotNil(t, first.Next)

	// 3. Past the end has no next
	beyond := pagination.NewMeta(pagination.Params{Page: 9, PageSize: 10}, 35).WithLinks(base)
	assert.NotNil(t, beyond.Prev)
	assert.Nil(t, beyond.Next)

	// 4. Last reachable page links back without overflowing
	last := pagination.NewMeta(pagination.Params{Page: pagination.MaxPage, PageSize: 20}, 40).WithLinks(base)
	assert.NotNil(t, last.Prev)
	assert.Nil(t, last.Next)
}
