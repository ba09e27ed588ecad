package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/naufalhakm/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.CommentLikeRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	threadRepo domain.ThreadRepository,
	commentRepo domain.CommentRepository,
	likeRepo domain.CommentLikeRepository,
	bloomRepo domain.BloomRepository,
) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) mustExist(ctx context.Context, threadID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %d does not exist", threadID)
		return domain.ErrNotFound
	}
	return nil
}

// Add verifies the parent thread before validating the payload, so a
// missing thread wins over a malformed body.
func (s *service) Add(ctx context.Context, payload map[string]any, threadID, owner int64) (domain.AddedComment, error) {
	if err := s.mustExist(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threadRepo.VerifyExists(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	c, err := domain.NewComment(payload, threadID, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.AddedComment{}, err
	}

	return domain.AddedComment{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.User.ID,
	}, nil
}

func (s *service) Delete(ctx context.Context, threadID, commentID, owner int64) error {
	if err := s.threadRepo.VerifyExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyOwner(ctx, commentID, owner); err != nil {
		return err
	}
	return s.commentRepo.SoftDelete(ctx, commentID)
}

// ToggleLike flips the caller's like state: not liked -> liked,
// liked -> not liked. The IsLiked read is only an optimization; a
// racing duplicate insert is absorbed by the repository.
func (s *service) ToggleLike(ctx context.Context, threadID, commentID, owner int64) error {
	if err := s.commentRepo.VerifyExists(ctx, commentID, threadID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, commentID, owner)
	if err != nil {
		return err
	}

	if liked {
		return s.likeRepo.Remove(ctx, commentID, owner)
	}
	return s.likeRepo.Add(ctx, commentID, owner)
}
