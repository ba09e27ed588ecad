package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) Store(ctx context.Context, reply *domain.Reply) error {
	replyModel := model.NewReplyFromDomain(reply)
	result := r.DB.WithContext(ctx).Create(replyModel)
	if result.Error != nil {
		return result.Error
	}
	reply.ID = replyModel.ID
	reply.CreatedAt = replyModel.CreatedAt
	return nil
}

func (r *replyRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
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

func (r *replyRepository) VerifyOwner(ctx context.Context, id, owner int64) error {
	var replyOwner int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Select("owner").
		Where("id = ?", id).
		Take(&replyOwner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if replyOwner != owner {
		return domain.ErrForbidden
	}
	return nil
}

type replyRow struct {
	ID        int64
	CommentID int64
	Content   string
	Owner     int64
	Date      time.Time
	IsDelete  bool
	Username  string
}

// FetchByThread collects every reply under the thread in one query,
// joined through comments, ordered by date ASC across the whole
// thread. Grouping by comment id happens in the aggregation layer and
// must not reorder within a group.
func (r *replyRepository) FetchByThread(ctx context.Context, threadID int64) ([]domain.Reply, error) {
	var rows []replyRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, replies.content, replies.owner, replies.date, replies.is_delete, users.username").
		Joins("JOIN comments ON comments.id = replies.comment_id").
		Joins("JOIN users ON users.id = replies.owner").
		Where("comments.thread_id = ?", threadID).
		Order("replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i, row := range rows {
		res[i] = domain.Reply{
			ID:        row.ID,
			CommentID: row.CommentID,
			Content:   row.Content,
			User:      domain.User{ID: row.Owner, Username: row.Username},
			CreatedAt: row.Date,
			IsDeleted: row.IsDelete,
		}
	}
	return res, nil
}
