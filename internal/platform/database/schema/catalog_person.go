// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package schema

// CatalogPersonTable represents the 'person' table
type CatalogPersonTable struct {
	Table             string
	Nconst            string
	PrimaryName       string
	BirthYear         string
	DeathYear         string
	PrimaryProfession string
}

// CatalogPerson is the schema definition for person
var CatalogPerson = CatalogPersonTable{
	Table:             "person",
	Nconst:            "nconst",
	PrimaryName:       "primaryname",
	BirthYear:         "birthyear",
	DeathYear:         "deathyear",
	PrimaryProfession: "primaryprofession",
}

// CatalogRoleTable represents the 'role' table linking people to titles.
type CatalogRoleTable struct {
	Table         string
	ID            string
	Nconst        string
	Tconst        string
	Job           string
	CharacterName string
}

// CatalogRole is the schema definition for role
var CatalogRole = CatalogRoleTable{
	Table:         "role",
	ID:            "role_id",
	Nconst:        "nconst",
	Tconst:        "tconst",
	Job:           "job",
	CharacterName: "character_name",
}
