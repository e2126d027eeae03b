package queue

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisScheduler keeps jobs in a sorted set scored by their publish time.
// Claiming uses ZREM as the claim token, so concurrent claimers never
// deliver the same job twice.
type RedisScheduler struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisScheduler creates a Scheduler on the given sorted-set key.
func NewRedisScheduler(client *redis.Client, key string, logger *zap.Logger) *RedisScheduler {
	return &RedisScheduler{client: client, key: key, logger: logger}
}

var _ Scheduler = (*RedisScheduler)(nil)

func (s *RedisScheduler) Enqueue(ctx context.Context, job Job, at time.Time) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.client.ZAdd(ctx, s.key, &redis.Z{
		Score:  float64(at.Unix()),
		Member: payload,
	}).Err()
}

func (s *RedisScheduler) Claim(ctx context.Context, now time.Time, limit int) ([]Job, error) {
	members, err := s.client.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(members))
	for _, member := range members {
		removed, err := s.client.ZRem(ctx, s.key, member).Result()
		if err != nil {
			return jobs, err
		}
		if removed == 0 {
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(member), &job); err != nil {
			s.logger.Warn("dropping malformed queue member", zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
