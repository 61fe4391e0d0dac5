package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sitefeed/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore holds the merged post timeline that the site renderer reads.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

const (
	timelineKey  = "posts:timeline"
	refreshedKey = "posts:refreshed_at"
)

func itemKey(platform, id string) string {
	return fmt.Sprintf("posts:item:%s:%s", platform, id)
}

// SavePosts replaces the timeline with posts. Each post is stored as JSON and
// indexed by its publish time; posts with an unparsable timestamp score 0.
// Items expire after ttl (0 keeps them forever). Items of posts that dropped
// out of the timeline are removed in the same transaction.
func (s *RedisStore) SavePosts(ctx context.Context, posts []model.Post, ttl time.Duration) error {
	prev, err := s.rdb.ZRange(ctx, timelineKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("read previous timeline: %w", err)
	}
	current := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		current[p.Key()] = struct{}{}
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, timelineKey)
	for _, m := range prev {
		if _, ok := current[m]; ok {
			continue
		}
		if platform, id, ok := strings.Cut(m, ":"); ok {
			pipe.Del(ctx, itemKey(platform, id))
		}
	}
	for _, p := range posts {
		b, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.Set(ctx, itemKey(p.Platform, p.ID), b, ttl)
		var score float64
		if t, ok := p.PublishedTime(); ok {
			score = float64(t.Unix())
		}
		pipe.ZAdd(ctx, timelineKey, redis.Z{Score: score, Member: p.Key()})
	}
	pipe.Set(ctx, refreshedKey, time.Now().UTC().Format(time.RFC3339), 0)
	if ttl > 0 {
		pipe.Expire(ctx, timelineKey, ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// RecentPosts returns up to n posts from the timeline, newest first.
// n <= 0 returns all of them. Entries whose item has expired are skipped.
func (s *RedisStore) RecentPosts(ctx context.Context, n int) ([]model.Post, error) {
	stop := int64(-1)
	if n > 0 {
		stop = int64(n - 1)
	}
	members, err := s.rdb.ZRevRange(ctx, timelineKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(members))
	for _, m := range members {
		platform, id, ok := strings.Cut(m, ":")
		if !ok {
			continue
		}
		b, err := s.rdb.Get(ctx, itemKey(platform, id)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var p model.Post
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", m, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// RefreshedAt returns when the timeline was last written. ok is false if never.
func (s *RedisStore) RefreshedAt(ctx context.Context) (t time.Time, ok bool, err error) {
	v, err := s.rdb.Get(ctx, refreshedKey).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err = time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// Clear removes the timeline index. Items are left to expire.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, timelineKey, refreshedKey).Err()
}
