// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/movies":   "pgx5://u:p@db:5432/movies",
		"postgresql://u:p@db:5432/movies": "pgx5://u:p@db:5432/movies",
		"pgx5://u:p@db:5432/movies":       "pgx5://u:p@db:5432/movies",
		"host=db user=u":                  "host=db user=u",
	}

	for input, want := range tests {
		assert.Equal(t, want, toPgx5DSN(input), input)
	}
}
