// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package person

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	requestutil "github.com/hidesh/movieapp/internal/platform/request"
	"github.com/hidesh/movieapp/internal/platform/respond"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// Handler implements the HTTP layer for the people catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new person [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the people endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPeople)
	router.Get("/{nconst}", handler.getPerson)
	router.Get("/{nconst}/filmography", handler.getFilmography)

	return router
}

/*
GET /api/v1/people.

Request:
  - page: int (default 1)
  - pageSize: int (default 20, max 500)

Response:
  - 200: []Person: Paginated people ordered by name
*/
func (handler *Handler) listPeople(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	people, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, people, pagination.NewMeta(params, total).WithLinks(request.URL))
}

/*
GET /api/v1/people/{nconst}.

Response:
  - 200: Detail: Person, with userBookmark (bookmark and note) when personalized
  - 404: ErrNotFound: Person not found
*/
func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetails(
		request.Context(),
		requestutil.Param(request, "nconst"),
		ctxutil.IdentityClaim(request.Context()),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

// GET /api/v1/people/{nconst}/filmography.
func (handler *Handler) getFilmography(writer http.ResponseWriter, request *http.Request) {
	filmography, err := handler.service.GetFilmography(request.Context(), requestutil.Param(request, "nconst"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, filmography)
}
