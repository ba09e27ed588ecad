// Package mocks provides hand-written testify mocks for the domain
// ports, shared by the usecase and coordinator tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/naufalhakm/forum-api/domain"
)

type ThreadRepository struct{ mock.Mock }

var _ domain.ThreadRepository = (*ThreadRepository)(nil)

func (m *ThreadRepository) Store(ctx context.Context, t *domain.Thread) error {
	return m.Called(ctx, t).Error(0)
}

func (m *ThreadRepository) GetByID(ctx context.Context, id int64) (domain.Thread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadRepository) VerifyExists(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ThreadRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type CommentRepository struct{ mock.Mock }

var _ domain.CommentRepository = (*CommentRepository)(nil)

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CommentRepository) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CommentRepository) VerifyOwner(ctx context.Context, id, owner int64) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *CommentRepository) VerifyExists(ctx context.Context, id, threadID int64) error {
	return m.Called(ctx, id, threadID).Error(0)
}

func (m *CommentRepository) FetchByThread(ctx context.Context, threadID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type ReplyRepository struct{ mock.Mock }

var _ domain.ReplyRepository = (*ReplyRepository)(nil)

func (m *ReplyRepository) Store(ctx context.Context, r *domain.Reply) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReplyRepository) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ReplyRepository) VerifyOwner(ctx context.Context, id, owner int64) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *ReplyRepository) FetchByThread(ctx context.Context, threadID int64) ([]domain.Reply, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reply), args.Error(1)
}

type CommentLikeRepository struct{ mock.Mock }

var _ domain.CommentLikeRepository = (*CommentLikeRepository)(nil)

func (m *CommentLikeRepository) IsLiked(ctx context.Context, commentID, owner int64) (bool, error) {
	args := m.Called(ctx, commentID, owner)
	return args.Bool(0), args.Error(1)
}

func (m *CommentLikeRepository) Add(ctx context.Context, commentID, owner int64) error {
	return m.Called(ctx, commentID, owner).Error(0)
}

func (m *CommentLikeRepository) Remove(ctx context.Context, commentID, owner int64) error {
	return m.Called(ctx, commentID, owner).Error(0)
}

func (m *CommentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

type UserRepository struct{ mock.Mock }

var _ domain.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type BloomRepository struct{ mock.Mock }

var _ domain.BloomRepository = (*BloomRepository)(nil)

func (m *BloomRepository) Add(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type LikeCountCache struct{ mock.Mock }

var _ domain.LikeCountCache = (*LikeCountCache)(nil)

func (m *LikeCountCache) Get(ctx context.Context, commentID int64) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeCountCache) MGet(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *LikeCountCache) Set(ctx context.Context, commentID, count int64) error {
	return m.Called(ctx, commentID, count).Error(0)
}

func (m *LikeCountCache) MSet(ctx context.Context, counts map[int64]int64) error {
	return m.Called(ctx, counts).Error(0)
}

func (m *LikeCountCache) Del(ctx context.Context, commentID int64) error {
	return m.Called(ctx, commentID).Error(0)
}

type LikeCountRefresher struct{ mock.Mock }

var _ domain.LikeCountRefresher = (*LikeCountRefresher)(nil)

func (m *LikeCountRefresher) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *LikeCountRefresher) Send(commentID int64) {
	m.Called(commentID)
}

type ThreadUsecase struct{ mock.Mock }

var _ domain.ThreadUsecase = (*ThreadUsecase)(nil)

func (m *ThreadUsecase) Add(ctx context.Context, payload map[string]any, owner int64) (domain.AddedThread, error) {
	args := m.Called(ctx, payload, owner)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadUsecase) GetDetail(ctx context.Context, threadID int64) (domain.DetailThread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.DetailThread), args.Error(1)
}

type CommentUsecase struct{ mock.Mock }

var _ domain.CommentUsecase = (*CommentUsecase)(nil)

func (m *CommentUsecase) Add(ctx context.Context, payload map[string]any, threadID, owner int64) (domain.AddedComment, error) {
	args := m.Called(ctx, payload, threadID, owner)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, threadID, commentID, owner int64) error {
	return m.Called(ctx, threadID, commentID, owner).Error(0)
}

func (m *CommentUsecase) ToggleLike(ctx context.Context, threadID, commentID, owner int64) error {
	return m.Called(ctx, threadID, commentID, owner).Error(0)
}
