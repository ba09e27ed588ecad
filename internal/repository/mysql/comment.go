package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(c)
	result := r.DB.WithContext(ctx).Create(commentModel)
	if result.Error != nil {
		return result.Error
	}
	c.ID = commentModel.ID
	c.CreatedAt = commentModel.CreatedAt
	return nil
}

// SoftDelete flips is_delete and leaves the content column untouched;
// masking happens at read time.
func (r *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *commentRepository) VerifyOwner(ctx context.Context, id, owner int64) error {
	var commentOwner int64
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("owner").
		Where("id = ?", id).
		Take(&commentOwner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if commentOwner != owner {
		return domain.ErrForbidden
	}
	return nil
}

func (r *commentRepository) VerifyExists(ctx context.Context, id, threadID int64) error {
	var commentID int64
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id").
		Where("id = ? AND thread_id = ?", id, threadID).
		Take(&commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

type commentRow struct {
	ID       int64
	ThreadID int64
	Content  string
	Owner    int64
	Date     time.Time
	IsDelete bool
	Username string
}

// FetchByThread keeps the storage order (date ASC) verbatim; the
// aggregation layer relies on it and never re-sorts.
func (r *commentRepository) FetchByThread(ctx context.Context, threadID int64) ([]domain.Comment, error) {
	var rows []commentRow
	err := r.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.thread_id, comments.content, comments.owner, comments.date, comments.is_delete, users.username").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i, row := range rows {
		res[i] = domain.Comment{
			ID:        row.ID,
			ThreadID:  row.ThreadID,
			Content:   row.Content,
			User:      domain.User{ID: row.Owner, Username: row.Username},
			CreatedAt: row.Date,
			IsDeleted: row.IsDelete,
		}
	}
	return res, nil
}
