// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hidesh/movieapp/internal/platform/apperr"
)

// Wrap inspects a database error and converts it into an [apperr.AppError].
//
// # Mapping
//
//   - pgx.ErrNoRows              -> NOT_FOUND for the named resource
//   - 23505 unique_violation     -> CONFLICT
//   - 23503 foreign_key_violation -> NOT_FOUND of the referenced row
//   - 23514 check_violation      -> VALIDATION_ERROR
//   - anything else              -> INTERNAL_ERROR (action kept in the cause)
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// 1. Missing rows
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violations reported by the server
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.NotFound("Referenced record")
		case pgerrcode.CheckViolation:
			return apperr.ValidationError(resource + " violates a data constraint")
		}
	}

	// 3. Everything else is an internal failure
	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}
