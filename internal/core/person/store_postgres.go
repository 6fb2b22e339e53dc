// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package person

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hidesh/movieapp/internal/platform/database/schema"
	"github.com/hidesh/movieapp/internal/platform/dberr"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// # PostgreSQL Repository

// personRepository implements [Repository] using pgx.
type personRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed people store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &personRepository{pool: pool}
}

var personColumns = fmt.Sprintf("p.%s, p.%s, p.%s, p.%s, p.%s",
	schema.CatalogPerson.Nconst,
	schema.CatalogPerson.PrimaryName,
	schema.CatalogPerson.BirthYear,
	schema.CatalogPerson.DeathYear,
	schema.CatalogPerson.PrimaryProfession,
)

func scanPerson(row pgx.Row, extra ...any) (*Person, error) {
	person := &Person{}
	dest := append(extra,
		&person.Nconst,
		&person.PrimaryName,
		&person.BirthYear,
		&person.DeathYear,
		&person.PrimaryProfession,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return person, nil
}

/*
List returns one page of people ordered by name.

Description: The total comes from COUNT(*) OVER(). A page past the end carries
no rows and therefore no window total, so the count is then queried separately.
*/
func (repository *personRepository) List(context context.Context, params pagination.Params) ([]*Person, int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) OVER() AS total_count, %s
		FROM %s p
		ORDER BY p.%s ASC, p.%s ASC
		LIMIT $1 OFFSET $2`,
		personColumns,
		schema.CatalogPerson.Table,
		schema.CatalogPerson.PrimaryName,
		schema.CatalogPerson.Nconst,
	)

	rows, err := repository.pool.Query(context, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Person", "list people")
	}
	defer rows.Close()

	people := []*Person{}
	var total int
	for rows.Next() {
		person, err := scanPerson(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list people: %w", err)
	}

	if len(people) == 0 && params.Offset() > 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogPerson.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to count people: %w", err)
		}
	}

	return people, total, nil
}

/*
FindByID retrieves a person by nconst.

Returns:
  - *Person: The person row
  - error: apperr.NotFound if missing, internal error otherwise
*/
func (repository *personRepository) FindByID(context context.Context, nconst string) (*Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1`,
		personColumns,
		schema.CatalogPerson.Table,
		schema.CatalogPerson.Nconst,
	)

	person, err := scanPerson(repository.pool.QueryRow(context, query, nconst))
	if err != nil {
		return nil, dberr.Wrap(err, "Person", "find person")
	}
	return person, nil
}

// Exists reports whether a person row is present.
func (repository *personRepository) Exists(context context.Context, nconst string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogPerson.Table,
		schema.CatalogPerson.Nconst,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, nconst).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check person: %w", err)
	}
	return exists, nil
}

// # Filmography

/*
ListFilmography loads every role of a person and folds it into one entry per title.

Description: Rows arrive ordered by release year (newest first, unknown last),
then title, then role insertion order, which fixes the order of jobs and
characters inside each entry.
*/
func (repository *personRepository) ListFilmography(context context.Context, nconst string) ([]*FilmographyEntry, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, m.%s, r.%s, r.%s
		FROM %s r
		JOIN %s t ON t.%s = r.%s
		LEFT JOIN %s m ON m.%s = t.%s
		WHERE r.%s = $1
		ORDER BY t.%s DESC NULLS LAST, t.%s ASC, t.%s ASC, r.%s ASC`,
		schema.CatalogTitle.Tconst,
		schema.CatalogTitle.PrimaryTitle,
		schema.CatalogTitle.StartYear,
		schema.CatalogTitleMetadata.Poster,
		schema.CatalogRole.Job,
		schema.CatalogRole.CharacterName,
		schema.CatalogRole.Table,
		schema.CatalogTitle.Table, schema.CatalogTitle.Tconst, schema.CatalogRole.Tconst,
		schema.CatalogTitleMetadata.Table, schema.CatalogTitleMetadata.Tconst, schema.CatalogTitle.Tconst,
		schema.CatalogRole.Nconst,
		schema.CatalogTitle.StartYear,
		schema.CatalogTitle.PrimaryTitle,
		schema.CatalogTitle.Tconst,
		schema.CatalogRole.ID,
	)

	rows, err := repository.pool.Query(context, query, nconst)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list filmography: %w", err)
	}

	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RoleRow, error) {
		var role RoleRow
		err := row.Scan(&role.Tconst, &role.Title, &role.StartYear, &role.PosterURL, &role.Job, &role.CharacterName)
		return role, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan filmography: %w", err)
	}

	return GroupFilmography(roles), nil
}
