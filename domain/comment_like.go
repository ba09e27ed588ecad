package domain

import (
	"context"
	"time"
)

// CommentLike is a like record with composite identity
// (CommentID, Owner). At most one exists per pair; toggling creates
// and destroys rows, never updates them.
type CommentLike struct {
	CommentID int64
	Owner     int64
	CreatedAt time.Time
}

// CommentLikeRepository defines the contract for like persistence.
// The storage-level unique constraint on (owner, comment_id) is the
// authoritative guard against double likes; the IsLiked read is an
// optimization only.
type CommentLikeRepository interface {
	// IsLiked reports whether the owner currently likes the comment.
	IsLiked(ctx context.Context, commentID, owner int64) (bool, error)

	// Add inserts a like row. A duplicate insert (lost race between
	// two toggles) is treated as "already liked" and is not an error.
	Add(ctx context.Context, commentID, owner int64) error

	// Remove deletes the like row if present.
	Remove(ctx context.Context, commentID, owner int64) error

	// CountByComment returns the like count of a single comment.
	CountByComment(ctx context.Context, commentID int64) (int64, error)

	// CountByComments returns a commentID -> likeCount mapping for the
	// given ids. An empty input yields an empty mapping without
	// touching storage.
	CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
}

// LikeCountCache caches per-comment like counts. Misses surface as
// ErrCacheMiss (single get) or absent keys (batched get); callers fall
// back to the repository.
type LikeCountCache interface {
	Get(ctx context.Context, commentID int64) (int64, error)
	MGet(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
	Set(ctx context.Context, commentID, count int64) error
	MSet(ctx context.Context, counts map[int64]int64) error
	Del(ctx context.Context, commentID int64) error
}

// LikeCountRefresher re-derives cached like counts from storage after
// toggles. Sends are lossy; a dropped id only delays convergence of
// the cache, never of storage.
type LikeCountRefresher interface {
	Start(ctx context.Context)
	Send(commentID int64)
}
