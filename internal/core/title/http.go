// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package title

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	requestutil "github.com/hidesh/movieapp/internal/platform/request"
	"github.com/hidesh/movieapp/internal/platform/respond"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for title discovery.
// Every endpoint is public; an optional bearer token personalizes details.
type Handler struct {
	service *Service
}

// NewHandler constructs a new title [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the title endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTitles)
	router.Get("/{tconst}", handler.getTitle)
	router.Get("/{tconst}/episodes", handler.listEpisodes)
	router.Get("/{tconst}/credits", handler.listCredits)
	router.Get("/{tconst}/ratings", handler.getRatings)

	return router
}

/*
GET /api/v1/titles.

Description: Lists the catalog. Invalid paging, type and sort values are
normalized rather than rejected. Episodes are never listed.

Request:
  - page: int (default 1)
  - pageSize: int (default 20, max 500)
  - type: string (movie, series)
  - genre: string
  - sort: string (top-rated, newest, oldest)

Response:
  - 200: []ListItem: Paginated titles with prev/next links
*/
func (handler *Handler) listTitles(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := NewListQuery(
		params.Page,
		params.PageSize,
		requestutil.Query(request, ParamType),
		requestutil.Query(request, ParamGenre),
		requestutil.Query(request, ParamSort),
	)

	items, total, err := handler.service.ListCatalog(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(query.Params, total).WithLinks(request.URL))
}

/*
GET /api/v1/titles/{tconst}.

Response:
  - 200: Detail: Category-specific record, with userBookmark when personalized
  - 401: ErrUnauthorized: Adult title requested anonymously
  - 404: ErrNotFound: Title not found
*/
func (handler *Handler) getTitle(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetails(
		request.Context(),
		requestutil.Param(request, "tconst"),
		ctxutil.IdentityClaim(request.Context()),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

/*
GET /api/v1/titles/{tconst}/episodes.

Request:
  - season: int (optional)

Response:
  - 200: []EpisodeItem: Episodes ordered by season then episode number
  - 404: ErrNotFound: Series not found
*/
func (handler *Handler) listEpisodes(writer http.ResponseWriter, request *http.Request) {
	episodes, err := handler.service.GetSeasonEpisodes(
		request.Context(),
		requestutil.Param(request, "tconst"),
		requestutil.QueryIntPtr(request, ParamSeason),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, episodes)
}

// GET /api/v1/titles/{tconst}/credits.
func (handler *Handler) listCredits(writer http.ResponseWriter, request *http.Request) {
	credits, err := handler.service.ListCredits(request.Context(), requestutil.Param(request, "tconst"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, credits)
}

// GET /api/v1/titles/{tconst}/ratings.
func (handler *Handler) getRatings(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.GetRatingSummary(request.Context(), requestutil.Param(request, "tconst"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
