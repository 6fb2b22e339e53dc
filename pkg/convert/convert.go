// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

/*
Package convert provides fault-tolerant conversions for query and path parameters.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToIntPtr returns nil for empty or unparsable input.
func ToIntPtr(str string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return nil
	}
	return &v
}

// ToInt64 converts a string to an int64, returning 0 on failure.
func ToInt64(str string) int64 {
	v, _ := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
	return v
}
