package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/repository/mysql/model"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

func (r *commentLikeRepository) IsLiked(ctx context.Context, commentID, owner int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add relies on the (owner, comment_id) unique index as the
// authoritative guard: two racing toggles may both observe "not
// liked", but only one insert lands. The loser's duplicate-key error
// means "already liked" and is swallowed.
func (r *commentLikeRepository) Add(ctx context.Context, commentID, owner int64) error {
	like := &model.CommentLike{
		CommentID: commentID,
		Owner:     owner,
	}
	err := r.DB.WithContext(ctx).Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *commentLikeRepository) Remove(ctx context.Context, commentID, owner int64) error {
	return r.DB.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Delete(&model.CommentLike{}).Error
}

func (r *commentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (r *commentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CommentID int64
		Total     int64
	}
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS total").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CommentID] = row.Total
	}
	return counts, nil
}
