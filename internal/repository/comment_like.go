package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/naufalhakm/forum-api/domain"
)

// commentLikeRepository coordinates the authoritative MySQL like store
// with the redis count cache. Every state change goes to the database
// first; the cache only ever serves counts and is rebuilt on demand.
type commentLikeRepository struct {
	db           domain.CommentLikeRepository
	cache        domain.LikeCountCache
	refresher    domain.LikeCountRefresher
	rebuildGroup singleflight.Group
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db domain.CommentLikeRepository, cache domain.LikeCountCache, refresher domain.LikeCountRefresher) *commentLikeRepository {
	return &commentLikeRepository{
		db:        db,
		cache:     cache,
		refresher: refresher,
	}
}

// IsLiked is a correctness read and always goes to the database.
func (r *commentLikeRepository) IsLiked(ctx context.Context, commentID, owner int64) (bool, error) {
	return r.db.IsLiked(ctx, commentID, owner)
}

func (r *commentLikeRepository) Add(ctx context.Context, commentID, owner int64) error {
	if err := r.db.Add(ctx, commentID, owner); err != nil {
		return err
	}
	r.invalidate(ctx, commentID)
	return nil
}

func (r *commentLikeRepository) Remove(ctx context.Context, commentID, owner int64) error {
	if err := r.db.Remove(ctx, commentID, owner); err != nil {
		return err
	}
	r.invalidate(ctx, commentID)
	return nil
}

// invalidate drops the stale cached count and queues a read-repair.
// Cache failures are logged, never surfaced: the database already
// holds the truth.
func (r *commentLikeRepository) invalidate(ctx context.Context, commentID int64) {
	if err := r.cache.Del(ctx, commentID); err != nil {
		logrus.Warnf("failed to drop cached like count for comment %d: %v", commentID, err)
	}
	r.refresher.Send(commentID)
}

func (r *commentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	count, err := r.cache.Get(ctx, commentID)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("like count cache get error: %v", err)
	}

	// Cold key: rebuild once even under concurrent detail reads.
	key := "likes:" + strconv.FormatInt(commentID, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		fresh, err := r.db.CountByComment(ctx, commentID)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(ctx, commentID, fresh); err != nil {
			logrus.Warnf("failed to cache like count for comment %d: %v", commentID, err)
		}
		return fresh, nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

func (r *commentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(commentIDs) == 0 {
		return counts, nil
	}

	cached, err := r.cache.MGet(ctx, commentIDs)
	if err != nil {
		logrus.Warnf("like count cache mget error: %v", err)
		return r.db.CountByComments(ctx, commentIDs)
	}

	missed := make([]int64, 0, len(commentIDs))
	for _, id := range commentIDs {
		if count, ok := cached[id]; ok {
			counts[id] = count
		} else {
			missed = append(missed, id)
		}
	}
	if len(missed) == 0 {
		return counts, nil
	}

	fresh, err := r.db.CountByComments(ctx, missed)
	if err != nil {
		return nil, err
	}

	// Comments with no like rows are absent from the db result; cache
	// their zero too so they stop missing.
	toCache := make(map[int64]int64, len(missed))
	for _, id := range missed {
		counts[id] = fresh[id]
		toCache[id] = fresh[id]
	}
	if err := r.cache.MSet(ctx, toCache); err != nil {
		logrus.Warnf("failed to cache like counts: %v", err)
	}

	return counts, nil
}
