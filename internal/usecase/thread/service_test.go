package thread

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/domain/mocks"
)

type threadFixture struct {
	threadRepo  *mocks.ThreadRepository
	commentRepo *mocks.CommentRepository
	replyRepo   *mocks.ReplyRepository
	likeRepo    *mocks.CommentLikeRepository
	bloomRepo   *mocks.BloomRepository
	svc         *service
}

func newFixture() *threadFixture {
	f := &threadFixture{
		threadRepo:  new(mocks.ThreadRepository),
		commentRepo: new(mocks.CommentRepository),
		replyRepo:   new(mocks.ReplyRepository),
		likeRepo:    new(mocks.CommentLikeRepository),
		bloomRepo:   new(mocks.BloomRepository),
	}
	f.svc = NewService(f.threadRepo, f.commentRepo, f.replyRepo, f.likeRepo, f.bloomRepo)
	return f
}

func TestAdd(t *testing.T) {
	t.Run("stores a valid thread and reports it to the bloom filter", func(t *testing.T) {
		f := newFixture()
		f.threadRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Thread")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Thread).ID = 99
			}).Return(nil).Once()
		f.bloomRepo.On("Add", mock.Anything, int64(99)).Return(nil).Once()

		added, err := f.svc.Add(context.Background(), map[string]any{
			"title": "sebuah thread",
			"body":  "sebuah body thread",
		}, 42)

		require.NoError(t, err)
		assert.Equal(t, domain.AddedThread{ID: 99, Title: "sebuah thread", Owner: 42}, added)
		f.threadRepo.AssertExpectations(t)
		f.bloomRepo.AssertExpectations(t)
	})

	t.Run("rejects an invalid payload before touching storage", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Add(context.Background(), map[string]any{"title": "no body"}, 42)

		assert.True(t, domain.IsValidation(err))
		f.threadRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})
}

func TestGetDetail(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	comments := []domain.Comment{
		{ID: 1, ThreadID: 10, Content: "komentar pertama", User: domain.User{ID: 1, Username: "johndoe"}, CreatedAt: base},
		{ID: 2, ThreadID: 10, Content: "komentar rahasia", User: domain.User{ID: 2, Username: "dicoding"}, CreatedAt: base.Add(time.Minute), IsDeleted: true},
	}
	replies := []domain.Reply{
		{ID: 31, CommentID: 1, Content: "balasan pertama", User: domain.User{Username: "dicoding"}, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 32, CommentID: 2, Content: "balasan rahasia", User: domain.User{Username: "johndoe"}, CreatedAt: base.Add(3 * time.Minute), IsDeleted: true},
	}

	t.Run("aggregates comments, replies and like counts in storage order", func(t *testing.T) {
		f := newFixture()
		f.bloomRepo.On("Exists", mock.Anything, int64(10)).Return(true, nil).Once()
		f.threadRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Thread{
			ID:        10,
			Title:     "sebuah thread",
			Body:      "sebuah body thread",
			User:      domain.User{ID: 1, Username: "johndoe"},
			CreatedAt: base,
		}, nil).Once()
		f.commentRepo.On("FetchByThread", mock.Anything, int64(10)).Return(comments, nil).Once()
		f.replyRepo.On("FetchByThread", mock.Anything, int64(10)).Return(replies, nil).Once()
		f.likeRepo.On("CountByComments", mock.Anything, []int64{1, 2}).
			Return(map[int64]int64{1: 2, 2: 1}, nil).Once()

		detail, err := f.svc.GetDetail(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, int64(10), detail.ID)
		assert.Equal(t, "johndoe", detail.Username)
		require.Len(t, detail.Comments, 2)

		first, second := detail.Comments[0], detail.Comments[1]
		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, "komentar pertama", first.Content)
		assert.Equal(t, int64(2), first.LikeCount)
		require.Len(t, first.Replies, 1)
		assert.Equal(t, int64(31), first.Replies[0].ID)
		assert.Equal(t, "balasan pertama", first.Replies[0].Content)

		assert.Equal(t, int64(2), second.ID)
		assert.Equal(t, domain.DeletedCommentPlaceholder, second.Content)
		assert.Equal(t, int64(1), second.LikeCount)
		require.Len(t, second.Replies, 1)
		assert.Equal(t, domain.DeletedReplyPlaceholder, second.Replies[0].Content)
	})

	t.Run("preserves reply order inside a group", func(t *testing.T) {
		f := newFixture()
		f.bloomRepo.On("Exists", mock.Anything, int64(10)).Return(true, nil).Once()
		f.threadRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Thread{ID: 10, User: domain.User{Username: "johndoe"}}, nil).Once()
		f.commentRepo.On("FetchByThread", mock.Anything, int64(10)).Return(comments[:1], nil).Once()
		f.replyRepo.On("FetchByThread", mock.Anything, int64(10)).Return([]domain.Reply{
			{ID: 51, CommentID: 1, Content: "balasan 1", CreatedAt: base},
			{ID: 52, CommentID: 1, Content: "balasan 2", CreatedAt: base.Add(time.Second)},
		}, nil).Once()
		f.likeRepo.On("CountByComments", mock.Anything, []int64{1}).Return(map[int64]int64{}, nil).Once()

		detail, err := f.svc.GetDetail(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, detail.Comments, 1)
		require.Len(t, detail.Comments[0].Replies, 2)
		assert.Equal(t, int64(51), detail.Comments[0].Replies[0].ID)
		assert.Equal(t, int64(52), detail.Comments[0].Replies[1].ID)
		assert.Equal(t, int64(0), detail.Comments[0].LikeCount)
	})

	t.Run("missing thread is terminal", func(t *testing.T) {
		f := newFixture()
		f.bloomRepo.On("Exists", mock.Anything, int64(404)).Return(true, nil).Once()
		f.threadRepo.On("GetByID", mock.Anything, int64(404)).Return(domain.Thread{}, domain.ErrNotFound).Once()

		_, err := f.svc.GetDetail(context.Background(), 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.commentRepo.AssertNotCalled(t, "FetchByThread", mock.Anything, mock.Anything)
	})

	t.Run("bloom definite miss skips the database entirely", func(t *testing.T) {
		f := newFixture()
		f.bloomRepo.On("Exists", mock.Anything, int64(404)).Return(false, nil).Once()

		_, err := f.svc.GetDetail(context.Background(), 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.threadRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("thread without comments yields an empty comment list", func(t *testing.T) {
		f := newFixture()
		f.bloomRepo.On("Exists", mock.Anything, int64(10)).Return(true, nil).Once()
		f.threadRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Thread{ID: 10}, nil).Once()
		f.commentRepo.On("FetchByThread", mock.Anything, int64(10)).Return([]domain.Comment{}, nil).Once()
		f.replyRepo.On("FetchByThread", mock.Anything, int64(10)).Return([]domain.Reply{}, nil).Once()
		f.likeRepo.On("CountByComments", mock.Anything, []int64{}).Return(map[int64]int64{}, nil).Once()

		detail, err := f.svc.GetDetail(context.Background(), 10)

		require.NoError(t, err)
		assert.Empty(t, detail.Comments)
	})
}

func TestInitBloomFilter(t *testing.T) {
	f := newFixture()
	f.threadRepo.On("FetchIDs", mock.Anything, int64(0), int64(bloomWarmupPageSize)).
		Return([]int64{1, 2, 3}, nil).Once()
	f.threadRepo.On("FetchIDs", mock.Anything, int64(3), int64(bloomWarmupPageSize)).
		Return([]int64{}, nil).Once()
	f.bloomRepo.On("BulkAdd", mock.Anything, []int64{1, 2, 3}).Return(nil).Once()

	err := f.svc.InitBloomFilter(context.Background())

	require.NoError(t, err)
	f.threadRepo.AssertExpectations(t)
	f.bloomRepo.AssertExpectations(t)
}
