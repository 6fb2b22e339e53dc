// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hidesh/movieapp/internal/platform/request"
	"github.com/hidesh/movieapp/internal/platform/respond"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// Handler implements the HTTP layer for search and visit history.
type Handler struct {
	service *Service
}

// NewHandler constructs a new search [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public search endpoints. The structured search checks
// the caller itself.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.bestMatch)
	router.Get("/structured", handler.structuredSearch)

	return router
}

// HistoryRoutes returns the visit history endpoints, mounted under /me/history.
func (handler *Handler) HistoryRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listHistory)
	router.Delete("/", handler.clearHistory)

	return router
}

/*
GET /api/v1/search.

Request:
  - q: string (required; whitespace separated keywords)

Response:
  - 200: []Result: Titles with match counts
  - 400: ErrValidation: Blank query
*/
func (handler *Handler) bestMatch(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.BestMatch(request.Context(), requestutil.Query(request, ParamQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, results)
}

/*
GET /api/v1/search/structured.

Response:
  - 200: []Result: Personalized matches
  - 400: ErrValidation: Blank query
  - 401: ErrUnauthorized: Missing or malformed identity
*/
func (handler *Handler) structuredSearch(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	results, err := handler.service.StructuredSearch(request.Context(), userID, requestutil.Query(request, ParamQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, results)
}

// GET /api/v1/me/history.
func (handler *Handler) listHistory(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	visits, total, err := handler.service.History(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, visits, pagination.NewMeta(params, total).WithLinks(request.URL))
}

// DELETE /api/v1/me/history.
func (handler *Handler) clearHistory(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ClearHistory(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
