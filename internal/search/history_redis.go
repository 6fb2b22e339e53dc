// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package search

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/hidesh/movieapp/internal/platform/constants"
	"github.com/hidesh/movieapp/internal/platform/metrics"
	"github.com/hidesh/movieapp/pkg/pagination"
)

// # Redis History

// RedisHistoryRepository implements [HistoryRepository] with one capped list per user.
type RedisHistoryRepository struct {
	client redis.UniversalClient
	limit  int
	ttl    time.Duration
	now    func() time.Time
}

// NewHistoryRepository keeps at most limit visits per user, expiring ttl after the last visit.
func NewHistoryRepository(client redis.UniversalClient, limit int, ttl time.Duration) *RedisHistoryRepository {
	return &RedisHistoryRepository{client: client, limit: limit, ttl: ttl, now: time.Now}
}

// HistoryKey returns the list key holding a user's visits.
func HistoryKey(userID int64) string {
	return constants.RedisPrefixHistory + strconv.FormatInt(userID, 10)
}

/*
RecordVisit pushes a visit to the head of the user's list.

Description: The push, the trim to the configured limit and the TTL refresh run
in one MULTI/EXEC transaction.

Parameters:
  - context: context.Context
  - userID: int64
  - tconst: string
  - primaryTitle: string

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisHistoryRepository) RecordVisit(context context.Context, userID int64, tconst, primaryTitle string) error {
	payload, err := json.Marshal(Visit{Tconst: tconst, Title: primaryTitle, VisitedAt: repository.now().UTC()})
	if err != nil {
		return fmt.Errorf("redis_history_encode_failed: %w", err)
	}

	key := HistoryKey(userID)
	_, err = repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.LPush(context, key, payload)
		pipe.LTrim(context, key, 0, int64(repository.limit-1))
		pipe.Expire(context, key, repository.ttl)
		return nil
	})
	if err != nil {
		metrics.HistoryWrites.WithLabelValues("failed").Inc()
		return fmt.Errorf("redis_history_push_failed: %w", err)
	}

	metrics.HistoryWrites.WithLabelValues("stored").Inc()
	return nil
}

/*
ListVisits returns one page of the user's visits, newest first.

Returns:
  - []*Visit: The page; entries that fail to decode are skipped
  - int: Number of visits currently kept
  - error: Connectivity errors
*/
func (repository *RedisHistoryRepository) ListVisits(context context.Context, userID int64, params pagination.Params) ([]*Visit, int, error) {
	key := HistoryKey(userID)
	start := int64(params.Offset())
	stop := start + int64(params.PageSize) - 1

	var lengthCmd *redis.IntCmd
	var rangeCmd *redis.StringSliceCmd
	_, err := repository.client.Pipelined(context, func(pipe redis.Pipeliner) error {
		lengthCmd = pipe.LLen(context, key)
		rangeCmd = pipe.LRange(context, key, start, stop)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("redis_history_range_failed: %w", err)
	}

	visits := make([]*Visit, 0, len(rangeCmd.Val()))
	for _, raw := range rangeCmd.Val() {
		visit := &Visit{}
		if err := json.Unmarshal([]byte(raw), visit); err != nil {
			continue
		}
		visits = append(visits, visit)
	}

	return visits, int(lengthCmd.Val()), nil
}

// ClearVisits deletes the user's history.
func (repository *RedisHistoryRepository) ClearVisits(context context.Context, userID int64) error {
	if err := repository.client.Del(context, HistoryKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis_history_delete_failed: %w", err)
	}
	return nil
}
