// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package person

import "strings"

// RoleRow is one role of a person on a title, as stored.
type RoleRow struct {
	Tconst        string
	Title         string
	StartYear     *int
	PosterURL     *string
	Job           *string
	CharacterName *string
}

/*
GroupFilmography folds role rows into one entry per title.

Description: Entries keep the order in which their title first appears. Jobs and
characters are deduplicated in first-seen order; blank values are skipped.
Both lists are empty rather than nil.

Parameters:
  - roles: []RoleRow

Returns:
  - []*FilmographyEntry: One entry per distinct tconst
*/
func GroupFilmography(roles []RoleRow) []*FilmographyEntry {
	entries := []*FilmographyEntry{}
	byTitle := make(map[string]*FilmographyEntry, len(roles))

	for _, role := range roles {
		entry, ok := byTitle[role.Tconst]
		if !ok {
			entry = &FilmographyEntry{
				Tconst:     role.Tconst,
				Title:      role.Title,
				Jobs:       []string{},
				Characters: []string{},
				StartYear:  role.StartYear,
				PosterURL:  role.PosterURL,
			}
			byTitle[role.Tconst] = entry
			entries = append(entries, entry)
		}

		entry.Jobs = appendDistinct(entry.Jobs, role.Job)
		entry.Characters = appendDistinct(entry.Characters, role.CharacterName)
	}

	return entries
}

func appendDistinct(values []string, value *string) []string {
	if value == nil {
		return values
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return values
	}
	for _, existing := range values {
		if existing == trimmed {
			return values
		}
	}
	return append(values, trimmed)
}
