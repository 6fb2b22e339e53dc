// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

//go:build integration

/*
Package testinfra starts throwaway PostgreSQL and Redis containers for
integration tests.

Tests using it carry the integration build tag and are skipped when Docker is
not reachable:

	go test -tags integration ./...
*/
package testinfra
