package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB *gorm.DB
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{
		DB: db,
	}
}

func (r *threadRepository) Store(ctx context.Context, t *domain.Thread) error {
	threadModel := model.NewThreadFromDomain(t)
	result := r.DB.WithContext(ctx).Create(threadModel)
	if result.Error != nil {
		return result.Error
	}
	t.ID = threadModel.ID
	t.CreatedAt = threadModel.CreatedAt
	return nil
}

type threadRow struct {
	ID       int64
	Title    string
	Body     string
	Owner    int64
	Date     time.Time
	Username string
}

func (r *threadRepository) GetByID(ctx context.Context, id int64) (domain.Thread, error) {
	var row threadRow
	err := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.owner, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Thread{}, domain.ErrNotFound
		}
		return domain.Thread{}, err
	}

	return domain.Thread{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		User:      domain.User{ID: row.Owner, Username: row.Username},
		CreatedAt: row.Date,
	}, nil
}

func (r *threadRepository) VerifyExists(ctx context.Context, id int64) error {
	var threadID int64
	err := r.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Select("id").
		Where("id = ?", id).
		Take(&threadID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *threadRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = r.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
