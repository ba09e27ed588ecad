package reply

import (
	"context"

	"github.com/naufalhakm/forum-api/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, replyRepo domain.ReplyRepository) *service {
	return &service{
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

// Add verifies the parent comment lives under the given thread before
// validating the payload. A comment that exists under another thread
// is treated as missing.
func (s *service) Add(ctx context.Context, payload map[string]any, threadID, commentID, owner int64) (domain.AddedReply, error) {
	if err := s.commentRepo.VerifyExists(ctx, commentID, threadID); err != nil {
		return domain.AddedReply{}, err
	}

	r, err := domain.NewReply(payload, commentID, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.replyRepo.Store(ctx, &r); err != nil {
		return domain.AddedReply{}, err
	}

	return domain.AddedReply{
		ID:      r.ID,
		Content: r.Content,
		Owner:   r.User.ID,
	}, nil
}

func (s *service) Delete(ctx context.Context, threadID, commentID, replyID, owner int64) error {
	if err := s.commentRepo.VerifyExists(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyOwner(ctx, replyID, owner); err != nil {
		return err
	}
	return s.replyRepo.SoftDelete(ctx, replyID)
}
