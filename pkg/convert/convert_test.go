// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 5, convert.ToIntD("5", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("x", 1))
	assert.Equal(t, -2, convert.ToIntD(" -2 ", 1))
}

func TestToIntPtr(t *testing.T) {
	assert.Nil(t, convert.ToIntPtr(""))
	assert.Nil(t, convert.ToIntPtr("two"))

	got := convert.ToIntPtr("2")
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(9000000000), convert.ToInt64("9000000000"))
	assert.Zero(t, convert.ToInt64("nope"))
}
