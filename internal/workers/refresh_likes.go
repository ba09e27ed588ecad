package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/naufalhakm/forum-api/domain"
)

// refreshLikesWorker read-repairs the like count cache after toggles:
// comment ids queued by Send are batched and their counts recounted
// from the database, then written back over whatever the cache holds.
// The channel is lossy on purpose; a dropped id only delays cache
// convergence, the database is already correct.
type refreshLikesWorker struct {
	likeRepo domain.CommentLikeRepository
	cache    domain.LikeCountCache
	ch       chan int64
}

var _ domain.LikeCountRefresher = (*refreshLikesWorker)(nil)

func NewRefreshLikesWorker(likeRepo domain.CommentLikeRepository, cache domain.LikeCountCache) *refreshLikesWorker {
	return &refreshLikesWorker{
		likeRepo: likeRepo,
		cache:    cache,
		ch:       make(chan int64, 1024),
	}
}

func (w *refreshLikesWorker) Send(commentID int64) {
	select {
	case w.ch <- commentID:
	default:
		logrus.Info("RefreshLikesWorker's channel is full, task dropped")
	}
}

func (w *refreshLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]int64, 0, batchSize)
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down RefreshLikesWorker, flushing remaining tasks...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w *refreshLikesWorker) flush(ctx context.Context, batch []int64) {
	if len(batch) == 0 {
		return
	}

	unique := make([]int64, 0, len(batch))
	seen := make(map[int64]bool, len(batch))
	for _, id := range batch {
		if !seen[id] {
			unique = append(unique, id)
			seen[id] = true
		}
	}

	counts, err := w.likeRepo.CountByComments(ctx, unique)
	if err != nil {
		logrus.Errorf("failed to recount likes for %d comments: %v", len(unique), err)
		return
	}

	// Ids with zero likes are absent from counts; write the zero back
	// anyway so the cache doesn't keep a stale positive.
	toCache := make(map[int64]int64, len(unique))
	for _, id := range unique {
		toCache[id] = counts[id]
	}
	if err := w.cache.MSet(ctx, toCache); err != nil {
		logrus.Errorf("failed to write refreshed like counts: %v", err)
	}
}
