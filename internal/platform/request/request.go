// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and common body decoding
patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/ctxutil"
	"github.com/hidesh/movieapp/internal/platform/sec"
	"github.com/hidesh/movieapp/internal/platform/validate"
	"github.com/hidesh/movieapp/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a trimmed named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(request, name))
}

// Query retrieves a trimmed query string value.
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

// QueryIntPtr returns nil when the parameter is absent or not an integer.
func QueryIntPtr(request *http.Request, name string) *int {
	return convert.ToIntPtr(request.URL.Query().Get(name))
}

/*
Int64Param parses a numeric URL parameter.

Returns:
  - int64: The parsed identifier
  - error: apperr.ValidationError if the value is not a positive integer
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	value := convert.ToInt64(Param(request, name))
	if value <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return value, nil
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredUserID returns the numeric id of the currently logged-in user.

Returns:
  - int64: User id
  - error: apperr.Unauthorized if not authenticated or the claim is malformed
*/
func RequiredUserID(request *http.Request) (int64, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return 0, err
	}

	userID, err := sec.ParseUserID(claims.UserID)
	if err != nil {
		return 0, apperr.Unauthorized("Invalid identity claim")
	}

	return userID, nil
}
