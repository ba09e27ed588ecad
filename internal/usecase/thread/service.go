package thread

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/naufalhakm/forum-api/domain"
)

const bloomWarmupPageSize = 1000

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

func NewService(
	threadRepo domain.ThreadRepository,
	commentRepo domain.CommentRepository,
	replyRepo domain.ReplyRepository,
	likeRepo domain.CommentLikeRepository,
	bloomRepo domain.BloomRepository,
) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
		bloomRepo:   bloomRepo,
	}
}

// mustExist consults the bloom filter: a definite miss means the
// thread cannot exist and the database round-trip is skipped. Filter
// errors fall through to the authoritative check.
func (s *service) mustExist(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %d does not exist", id)
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) Add(ctx context.Context, payload map[string]any, owner int64) (domain.AddedThread, error) {
	t, err := domain.NewThread(payload, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := s.threadRepo.Store(ctx, &t); err != nil {
		return domain.AddedThread{}, err
	}

	if err := s.bloomRepo.Add(ctx, t.ID); err != nil {
		logrus.Warnf("failed to add thread %d to bloom filter: %v", t.ID, err)
	}

	return domain.AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.User.ID,
	}, nil
}

// GetDetail assembles the full thread read model. The three child
// collections are not read in one snapshot; comments and replies are
// fetched concurrently and like counts afterwards. Each fetch is
// atomic on its own, which is enough: concurrent writes only append
// rows or flip a soft-delete flag.
func (s *service) GetDetail(ctx context.Context, threadID int64) (domain.DetailThread, error) {
	if err := s.mustExist(ctx, threadID); err != nil {
		return domain.DetailThread{}, err
	}

	// A missing thread is terminal; there is no partial response.
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	var (
		comments []domain.Comment
		replies  []domain.Reply
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.commentRepo.FetchByThread(gctx, threadID)
		return err
	})
	g.Go(func() error {
		var err error
		replies, err = s.replyRepo.FetchByThread(gctx, threadID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DetailThread{}, err
	}

	// Replies arrive date ASC across the whole thread; appending while
	// grouping keeps that order inside every group.
	replyMap := make(map[int64][]domain.DetailReply)
	for _, r := range replies {
		replyMap[r.CommentID] = append(replyMap[r.CommentID], domain.NewDetailReply(r))
	}

	commentIDs := make([]int64, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
	}

	likeCounts, err := s.likeRepo.CountByComments(ctx, commentIDs)
	if err != nil {
		return domain.DetailThread{}, err
	}

	detailComments := make([]domain.DetailComment, len(comments))
	for i, c := range comments {
		detailComments[i] = domain.NewDetailComment(c, likeCounts[c.ID], replyMap[c.ID])
	}

	return domain.DetailThread{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.CreatedAt,
		Username: thread.User.Username,
		Comments: detailComments,
	}, nil
}

// InitBloomFilter loads every existing thread id into the filter.
// Called once on startup.
func (s *service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.threadRepo.FetchIDs(ctx, cursor, bloomWarmupPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
