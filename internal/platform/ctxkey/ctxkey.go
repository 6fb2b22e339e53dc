// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package ctxkey holds the context keys shared by middleware and ctxutil.
// Values are only read back through ctxutil accessors.
package ctxkey

type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser is the context key for the verified token claims ([sec.AuthClaims]).
	KeyUser key = "user"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
