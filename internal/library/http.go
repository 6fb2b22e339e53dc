// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package library

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hidesh/movieapp/internal/platform/request"
	"github.com/hidesh/movieapp/internal/platform/respond"
	"github.com/hidesh/movieapp/internal/platform/validate"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// # Handler Implementation

// Handler exposes the authenticated user's library. It is mounted behind
// middleware.RequireAuth, so every endpoint resolves the caller's id first.
type Handler struct {
	service *Service
}

// NewHandler constructs a new library [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the bookmark, note and rating endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Bookmarks
	router.Get("/bookmarks", handler.listBookmarks)
	router.Post("/bookmarks", handler.addBookmark)
	router.Delete("/bookmarks/{bookmarkID}", handler.removeBookmark)

	// ## Notes
	router.Get("/notes", handler.listNotes)
	router.Post("/notes", handler.createNote)
	router.Patch("/notes/{noteID}", handler.updateNote)
	router.Delete("/notes/{noteID}", handler.deleteNote)

	// ## Ratings
	router.Get("/ratings", handler.listRatings)
	router.Put("/ratings/{tconst}", handler.rateTitle)
	router.Delete("/ratings/{tconst}", handler.deleteRating)

	return router
}

// # Request Payloads

type updateNoteRequest struct {
	Content string `json:"content"`
}

type rateTitleRequest struct {
	Rating *float64 `json:"rating"`
}

// # Bookmark Endpoints

/*
GET /api/v1/me/bookmarks.

Request:
  - page: int
  - pageSize: int

Response:
  - 200: []Bookmark: Paginated bookmarks, newest first
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) listBookmarks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	bookmarks, total, err := handler.service.ListBookmarks(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookmarks, pagination.NewMeta(params, total).WithLinks(request.URL))
}

/*
POST /api/v1/me/bookmarks.

Request (Body):
  - TargetInput: {"tconst": "tt..."} or {"nconst": "nm..."}

Response:
  - 201: Bookmark: Stored bookmark (existing one when already bookmarked)
  - 400: Validation: Neither or both targets set
  - 404: ErrNotFound: Title or person does not exist
*/
func (handler *Handler) addBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input TargetInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmark, err := handler.service.AddBookmark(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, bookmark)
}

// DELETE /api/v1/me/bookmarks/{bookmarkID}.
func (handler *Handler) removeBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID, err := requestutil.Int64Param(request, "bookmarkID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveBookmark(request.Context(), userID, bookmarkID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Note Endpoints

/*
GET /api/v1/me/notes.

Request:
  - tconst: string (optional)
  - nconst: string (optional)

Response:
  - 200: []Note: Notes newest first
*/
func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := TargetInput{
		Tconst: requestutil.Query(request, FieldTconst),
		Nconst: requestutil.Query(request, FieldNconst),
	}

	notes, err := handler.service.ListNotes(request.Context(), userID, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, notes)
}

/*
POST /api/v1/me/notes.

Request (Body):
  - NoteInput: {"tconst" | "nconst", "content"}

Response:
  - 201: Note: Created note
  - 400: Validation: Empty content, content over 2000 characters or bad target
*/
func (handler *Handler) createNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input NoteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.CreateNote(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, note)
}

// PATCH /api/v1/me/notes/{noteID}.
func (handler *Handler) updateNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := requestutil.Int64Param(request, "noteID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateNoteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.UpdateNote(request.Context(), userID, noteID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

// DELETE /api/v1/me/notes/{noteID}.
func (handler *Handler) deleteNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := requestutil.Int64Param(request, "noteID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteNote(request.Context(), userID, noteID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Rating Endpoints

// GET /api/v1/me/ratings.
func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	ratings, err := handler.service.ListRatings(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, ratings)
}

/*
PUT /api/v1/me/ratings/{tconst}.

Request (Body):
  - rating: float (0 to 10)

Response:
  - 200: Rating: Stored rating
  - 400: Validation: Missing or out of range rating
  - 404: ErrNotFound: Title does not exist
*/
func (handler *Handler) rateTitle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input rateTitleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Rating == nil {
		respond.Error(writer, request, validate.RequiredError(FieldRating, "This field is required"))
		return
	}

	rating, err := handler.service.RateTitle(request.Context(), userID, requestutil.Param(request, FieldTconst), *input.Rating)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rating)
}

// DELETE /api/v1/me/ratings/{tconst}.
func (handler *Handler) deleteRating(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRating(request.Context(), userID, requestutil.Param(request, FieldTconst)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
