package postinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/redis/go-redis/v9"
)

const DefaultCacheTTL = 15 * time.Minute

// RedisCache implements the posting Cache interface using Redis. Search
// results are short-lived so a stale list of postings is never served for
// long.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-based search cache
func NewRedisCache(client *redis.Client, ttl time.Duration) posting.Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached jobs for a query, or ok=false on a miss
func (c *RedisCache) Get(ctx context.Context, query posting.SearchQuery) ([]posting.Job, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, posting.ErrRegistry.NewWithCause(posting.CodeCacheFailed, err).
			WithDetail("operation", "get")
	}

	var jobs []posting.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, false, posting.ErrRegistry.NewWithCause(posting.CodeCacheFailed, err).
			WithDetail("operation", "decode")
	}
	return jobs, true, nil
}

// Set caches the jobs for a query
func (c *RedisCache) Set(ctx context.Context, query posting.SearchQuery, jobs []posting.Job) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return posting.ErrRegistry.NewWithCause(posting.CodeCacheFailed, err).
			WithDetail("operation", "encode")
	}

	if err := c.client.Set(ctx, cacheKey(query), data, c.ttl).Err(); err != nil {
		return posting.ErrRegistry.NewWithCause(posting.CodeCacheFailed, err).
			WithDetail("operation", "set")
	}
	return nil
}

func cacheKey(query posting.SearchQuery) string {
	q := query.Normalize()
	return fmt.Sprintf("jobsearch:%s:%s:%d:%d",
		strings.ToLower(strings.TrimSpace(q.JobTitle)),
		strings.ToLower(strings.TrimSpace(q.Location)),
		q.RadiusMiles,
		q.MaxResults,
	)
}
