package mysql

import (
	"context"
	"regexp"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestCommentLikeRepository_IsLiked(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentLikeRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comment_likes` WHERE comment_id = ? AND owner = ?")).
		WithArgs(int64(7), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	liked, err := repo.IsLiked(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestCommentLikeRepository_Add(t *testing.T) {
	t.Run("inserts a like row", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewCommentLikeRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment_likes`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Add(context.Background(), 7, 42)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("racing duplicate insert is already liked", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewCommentLikeRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment_likes`")).
			WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		err := repo.Add(context.Background(), 7, 42)

		require.NoError(t, err)
	})
}

func TestCommentLikeRepository_Remove(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentLikeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comment_likes` WHERE comment_id = ? AND owner = ?")).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Remove(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentLikeRepository_CountByComments(t *testing.T) {
	t.Run("groups counts per comment", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewCommentLikeRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT comment_id, COUNT(*) AS total FROM `comment_likes` WHERE comment_id IN (?,?) GROUP BY `comment_id`")).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"comment_id", "total"}).
				AddRow(1, 2).
				AddRow(2, 1))

		counts, err := repo.CountByComments(context.Background(), []int64{1, 2})

		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{1: 2, 2: 1}, counts)
	})

	t.Run("empty input never touches the database", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewCommentLikeRepository(gdb)

		counts, err := repo.CountByComments(context.Background(), []int64{})

		require.NoError(t, err)
		assert.Empty(t, counts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
