// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package person

import (
	"context"

	"github.com/hidesh/movieapp/pkg/pagination"
)

// Repository defines the data access contract for the people catalog.
type Repository interface {
	// List returns one page of people ordered by name, and the total count.
	List(context context.Context, params pagination.Params) ([]*Person, int, error)

	// FindByID returns NOT_FOUND when the person does not exist.
	FindByID(context context.Context, nconst string) (*Person, error)

	Exists(context context.Context, nconst string) (bool, error)

	// ListFilmography returns one entry per title, newest first.
	ListFilmography(context context.Context, nconst string) ([]*FilmographyEntry, error)
}
