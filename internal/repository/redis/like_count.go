package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naufalhakm/forum-api/domain"
)

const (
	KeyCommentLikes = "comment:likes:%d"

	likeCountTTL = 10 * time.Minute
)

// likeCountCache keeps per-comment like counts in redis. MySQL stays
// the source of truth; a miss here just means a recount.
type likeCountCache struct {
	client *redis.Client
}

var _ domain.LikeCountCache = (*likeCountCache)(nil)

func NewLikeCountCache(client *redis.Client) *likeCountCache {
	return &likeCountCache{
		client,
	}
}

func (c *likeCountCache) Get(ctx context.Context, commentID int64) (int64, error) {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	} else if err != nil {
		return 0, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MGet returns counts for the hit keys only; absent ids are simply
// missing from the result map.
func (c *likeCountCache) MGet(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(commentIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = fmt.Sprintf(KeyCommentLikes, id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, val := range vals {
		if val == nil {
			continue
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		count, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			continue
		}
		counts[commentIDs[i]] = count
	}
	return counts, nil
}

func (c *likeCountCache) Set(ctx context.Context, commentID, count int64) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	return c.client.Set(ctx, key, count, likeCountTTL).Err()
}

func (c *likeCountCache) MSet(ctx context.Context, counts map[int64]int64) error {
	if len(counts) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for id, count := range counts {
		pipe.Set(ctx, fmt.Sprintf(KeyCommentLikes, id), count, likeCountTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *likeCountCache) Del(ctx context.Context, commentID int64) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	return c.client.Del(ctx, key).Err()
}
