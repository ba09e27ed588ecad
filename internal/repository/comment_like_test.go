package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/domain/mocks"
)

type likeFixture struct {
	db        *mocks.CommentLikeRepository
	cache     *mocks.LikeCountCache
	refresher *mocks.LikeCountRefresher
	repo      *commentLikeRepository
}

func newFixture() *likeFixture {
	f := &likeFixture{
		db:        new(mocks.CommentLikeRepository),
		cache:     new(mocks.LikeCountCache),
		refresher: new(mocks.LikeCountRefresher),
	}
	f.repo = NewCommentLikeRepository(f.db, f.cache, f.refresher)
	return f
}

func TestAdd(t *testing.T) {
	t.Run("writes the database then invalidates the cache", func(t *testing.T) {
		f := newFixture()
		f.db.On("Add", mock.Anything, int64(7), int64(42)).Return(nil).Once()
		f.cache.On("Del", mock.Anything, int64(7)).Return(nil).Once()
		f.refresher.On("Send", int64(7)).Once()

		err := f.repo.Add(context.Background(), 7, 42)

		require.NoError(t, err)
		f.cache.AssertExpectations(t)
		f.refresher.AssertExpectations(t)
	})

	t.Run("database failure leaves the cache untouched", func(t *testing.T) {
		f := newFixture()
		f.db.On("Add", mock.Anything, int64(7), int64(42)).Return(assert.AnError).Once()

		err := f.repo.Add(context.Background(), 7, 42)

		assert.ErrorIs(t, err, assert.AnError)
		f.cache.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
	})

	t.Run("cache failure is swallowed, the write already landed", func(t *testing.T) {
		f := newFixture()
		f.db.On("Add", mock.Anything, int64(7), int64(42)).Return(nil).Once()
		f.cache.On("Del", mock.Anything, int64(7)).Return(assert.AnError).Once()
		f.refresher.On("Send", int64(7)).Once()

		err := f.repo.Add(context.Background(), 7, 42)

		require.NoError(t, err)
	})
}

func TestCountByComment(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", mock.Anything, int64(7)).Return(int64(3), nil).Once()

		count, err := f.repo.CountByComment(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		f.db.AssertNotCalled(t, "CountByComment", mock.Anything, mock.Anything)
	})

	t.Run("cold key recounts and backfills the cache", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", mock.Anything, int64(7)).Return(int64(0), domain.ErrCacheMiss).Once()
		f.db.On("CountByComment", mock.Anything, int64(7)).Return(int64(5), nil).Once()
		f.cache.On("Set", mock.Anything, int64(7), int64(5)).Return(nil).Once()

		count, err := f.repo.CountByComment(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
		f.cache.AssertExpectations(t)
	})
}

func TestCountByComments(t *testing.T) {
	t.Run("merges cache hits with recounted misses and caches zeros", func(t *testing.T) {
		f := newFixture()
		f.cache.On("MGet", mock.Anything, []int64{1, 2, 3}).
			Return(map[int64]int64{1: 4}, nil).Once()
		f.db.On("CountByComments", mock.Anything, []int64{2, 3}).
			Return(map[int64]int64{2: 1}, nil).Once()
		f.cache.On("MSet", mock.Anything, map[int64]int64{2: 1, 3: 0}).Return(nil).Once()

		counts, err := f.repo.CountByComments(context.Background(), []int64{1, 2, 3})

		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{1: 4, 2: 1, 3: 0}, counts)
		f.cache.AssertExpectations(t)
	})

	t.Run("cache outage falls back to the database alone", func(t *testing.T) {
		f := newFixture()
		f.cache.On("MGet", mock.Anything, []int64{1, 2}).Return(nil, assert.AnError).Once()
		f.db.On("CountByComments", mock.Anything, []int64{1, 2}).
			Return(map[int64]int64{1: 4, 2: 1}, nil).Once()

		counts, err := f.repo.CountByComments(context.Background(), []int64{1, 2})

		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{1: 4, 2: 1}, counts)
		f.cache.AssertNotCalled(t, "MSet", mock.Anything, mock.Anything)
	})

	t.Run("empty input returns immediately", func(t *testing.T) {
		f := newFixture()

		counts, err := f.repo.CountByComments(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, counts)
		f.cache.AssertNotCalled(t, "MGet", mock.Anything, mock.Anything)
	})
}
