// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// List inputs are never rejected. Out-of-range values are normalized to
// defaults, and responses carry prev/next links derived from the request URL.
package pagination

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hidesh/movieapp/pkg/convert"
)

const (
	// DefaultPageSize is the number of items per page if not specified or out of range.
	DefaultPageSize = 20
	// MaxPageSize is the largest accepted page size.
	MaxPageSize = 500
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPage keeps the SQL offset of any normalized page within int range.
	MaxPage = math.MaxInt / MaxPageSize

	// Query parameter names.
	ParamPage     = "page"
	ParamPageSize = "pageSize"
)

// Params holds the normalized page and page size.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps raw values. A page below 1 becomes 1, a page above MaxPage
// becomes MaxPage, and a page size outside the half-open range (1, MaxPageSize]
// becomes DefaultPageSize.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	if pageSize <= 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the SQL OFFSET value derived from [Page] and [PageSize].
// It saturates at math.MaxInt instead of wrapping negative.
func (p Params) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Prev       *string `json:"prev"`
	Next       *string `json:"next"`
}

// NewMeta constructs pagination metadata without links.
func NewMeta(params Params, total int) Meta {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}

	return Meta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// WithLinks fills Prev and Next from the request URL. Prev is nil on the first
// page and Next is nil on or past the last page. Other query parameters are kept.
func (m Meta) WithLinks(base *url.URL) Meta {
	if base == nil {
		return m
	}

	if m.Page > 1 {
		prev := pageLink(base, m.Page-1, m.PageSize)
		m.Prev = &prev
	}

	if m.Page < m.TotalPages && m.Page < math.MaxInt {
		next := pageLink(base, m.Page+1, m.PageSize)
		m.Next = &next
	}

	return m
}

func pageLink(base *url.URL, page, pageSize int) string {
	link := *base
	query := link.Query()
	query.Set(ParamPage, strconv.Itoa(page))
	query.Set(ParamPageSize, strconv.Itoa(pageSize))
	link.RawQuery = query.Encode()
	return link.RequestURI()
}

// FromRequest parses "page" and "pageSize" query parameters and normalizes them.
func FromRequest(r *http.Request) Params {
	return Normalize(
		convert.ToIntD(r.URL.Query().Get(ParamPage), DefaultPage),
		convert.ToIntD(r.URL.Query().Get(ParamPageSize), DefaultPageSize),
	)
}
